package entities

// Locale is a short code selecting a message table ("cn", "en", or any
// value a user stored).
type Locale string

const (
	LocaleChinese Locale = "cn"
	LocaleEnglish Locale = "en"
)

// PreferenceKeyLang is the preference store key holding the chosen language.
const PreferenceKeyLang = "lang"

var supportedLocales = [...]Locale{LocaleChinese, LocaleEnglish}

// SupportedLocales returns the codes that have a message table. The slice
// is a fresh copy on every call.
func SupportedLocales() []Locale {
	out := make([]Locale, len(supportedLocales))
	copy(out, supportedLocales[:])
	return out
}

// IsSupported reports whether l is one of SupportedLocales.
func (l Locale) IsSupported() bool {
	for _, s := range supportedLocales {
		if l == s {
			return true
		}
	}
	return false
}

func (l Locale) String() string {
	return string(l)
}
