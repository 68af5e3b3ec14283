package output

// HostLocaleProvider reports the language tag of the host environment,
// e.g. "zh", "en-US". It returns "" when the host does not report one.
type HostLocaleProvider interface {
	HostLocale() string
}
