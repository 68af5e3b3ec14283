package hostlocale

import (
	"os"
	"strings"

	"golang.org/x/text/language"

	"codediffdemo/internal/ports/output"
)

var _ output.HostLocaleProvider = (*EnvProvider)(nil)

// envVars are consulted in POSIX precedence order.
var envVars = []string{"LC_ALL", "LC_MESSAGES", "LANG"}

// EnvProvider reports the host language from the POSIX locale environment.
type EnvProvider struct {
	lookup func(string) (string, bool)
}

func NewEnvProvider() *EnvProvider {
	return &EnvProvider{lookup: os.LookupEnv}
}

// HostLocale returns the first set locale variable as a BCP 47 tag,
// e.g. "zh_CN.UTF-8" becomes "zh-CN". "C" and "POSIX" count as unset.
func (p *EnvProvider) HostLocale() string {
	for _, name := range envVars {
		v, ok := p.lookup(name)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		return Normalize(v)
	}
	return ""
}

// Normalize converts a POSIX locale name to a BCP 47 language tag.
// Values x/text cannot parse are returned lower-cased.
func Normalize(raw string) string {
	v := strings.TrimSpace(raw)
	if i := strings.IndexByte(v, '@'); i >= 0 {
		v = v[:i]
	}
	if i := strings.IndexByte(v, '.'); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "C" || v == "POSIX" {
		return ""
	}
	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil {
		return strings.ToLower(v)
	}
	return tag.String()
}
