package application

import (
	"context"
	"fmt"
	"log"

	"codediffdemo/internal/domain"
	"codediffdemo/internal/domain/entities"
	"codediffdemo/internal/ports/input"
	"codediffdemo/internal/ports/output"
)

var _ input.LocaleUseCase = (*LocaleService)(nil)

// LocaleService resolves and changes the display language. A nil store
// reads as empty; writes then fail with domain.ErrNoPreferenceStore.
type LocaleService struct {
	store output.PreferenceStore
	host  output.HostLocaleProvider
}

func NewLocaleService(store output.PreferenceStore, host output.HostLocaleProvider) *LocaleService {
	return &LocaleService{
		store: store,
		host:  host,
	}
}

// Resolve picks the locale to activate at startup.
//
// A stored "lang" preference is returned verbatim, even when it names a
// locale without a message table; callers that need a supported code must
// check Locale.IsSupported themselves. Without a preference the host locale
// decides: "zh" maps to "cn", everything else to "en". An empty result falls
// back to "cn".
func (s *LocaleService) Resolve(ctx context.Context) entities.Locale {
	if l := s.defaultLocale(ctx); l != "" {
		return l
	}
	return entities.LocaleChinese
}

func (s *LocaleService) defaultLocale(ctx context.Context) entities.Locale {
	if stored, ok := s.storedLocale(ctx); ok {
		return stored
	}
	switch s.hostLocale() {
	case "zh":
		return entities.LocaleChinese
	case "en":
		return entities.LocaleEnglish
	default:
		return entities.LocaleEnglish
	}
}

// storedLocale treats a failing store like an empty one.
func (s *LocaleService) storedLocale(ctx context.Context) (entities.Locale, bool) {
	if s.store == nil {
		return "", false
	}
	v, ok, err := s.store.Get(ctx, entities.PreferenceKeyLang)
	if err != nil {
		log.Printf("locale: read preference %q: %v", entities.PreferenceKeyLang, err)
		return "", false
	}
	return entities.Locale(v), ok
}

func (s *LocaleService) hostLocale() string {
	if s.host == nil {
		return ""
	}
	return s.host.HostLocale()
}

// SetLanguage persists code as the user's language. Only supported codes
// are accepted.
func (s *LocaleService) SetLanguage(ctx context.Context, code string) error {
	l := entities.Locale(code)
	if !l.IsSupported() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedLocale, code)
	}
	if s.store == nil {
		return domain.ErrNoPreferenceStore
	}
	return s.store.Set(ctx, entities.PreferenceKeyLang, l.String())
}

// ToggleLanguage switches between the two message tables and persists the
// result. Anything other than "cn" switches to "cn".
func (s *LocaleService) ToggleLanguage(ctx context.Context) (entities.Locale, error) {
	if s.store == nil {
		return "", domain.ErrNoPreferenceStore
	}
	next := entities.LocaleChinese
	if s.Resolve(ctx) == entities.LocaleChinese {
		next = entities.LocaleEnglish
	}
	if err := s.store.Set(ctx, entities.PreferenceKeyLang, next.String()); err != nil {
		return "", err
	}
	return next, nil
}

// ClearLanguage forgets the stored preference.
func (s *LocaleService) ClearLanguage(ctx context.Context) error {
	if s.store == nil {
		return domain.ErrNoPreferenceStore
	}
	return s.store.Delete(ctx, entities.PreferenceKeyLang)
}
