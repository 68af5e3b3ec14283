package input

import (
	"context"

	"codediffdemo/internal/domain/entities"
)

type LocaleUseCase interface {
	Resolve(ctx context.Context) entities.Locale
	SetLanguage(ctx context.Context, code string) error
	ToggleLanguage(ctx context.Context) (entities.Locale, error)
	ClearLanguage(ctx context.Context) error
}
