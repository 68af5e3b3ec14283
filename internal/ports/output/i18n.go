package output

// T renders the demo's user-facing strings from per-locale message tables.
//
// locale is a locale code as produced by the locale resolver: "cn", "en",
// or a stored value passed through unchecked. This port is where such
// values are validated: a code without a message table renders the
// fallback locale's table instead of failing.
type T interface {
	// T renders the message identified by the dotted key (e.g.
	// "options.sideBySide"). data fills template placeholders and may be
	// nil. A key missing from every table is returned unchanged.
	T(locale, key string, data map[string]any) string
}
