package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codediffdemo/internal/domain"
	"codediffdemo/internal/domain/entities"
)

type memStore struct {
	values map[string]string
	getErr error
}

func newMemStore() *memStore {
	return &memStore{values: map[string]string{}}
}

func (m *memStore) Get(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memStore) Set(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

type hostLocale string

func (h hostLocale) HostLocale() string { return string(h) }

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		stored *string
		host   string
		want   entities.Locale
	}{
		{name: "host zh", host: "zh", want: "cn"},
		{name: "host en", host: "en", want: "en"},
		{name: "host fr", host: "fr", want: "en"},
		{name: "host unset", host: "", want: "en"},
		{name: "host zh-CN is not an exact match", host: "zh-CN", want: "en"},
		{name: "stored wins over host", stored: ptr("en"), host: "zh", want: "en"},
		{name: "stored cn", stored: ptr("cn"), host: "en", want: "cn"},
		{name: "stored unsupported passes through", stored: ptr("fr"), host: "zh", want: "fr"},
		{name: "stored empty falls back to cn", stored: ptr(""), host: "en", want: "cn"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			if tt.stored != nil {
				store.values[entities.PreferenceKeyLang] = *tt.stored
			}
			svc := NewLocaleService(store, hostLocale(tt.host))
			assert.Equal(t, tt.want, svc.Resolve(context.Background()))
		})
	}
}

func TestResolve_StoreErrorFallsBackToHost(t *testing.T) {
	store := newMemStore()
	store.values[entities.PreferenceKeyLang] = "en"
	store.getErr = errors.New("connection refused")

	svc := NewLocaleService(store, hostLocale("zh"))
	assert.Equal(t, entities.LocaleChinese, svc.Resolve(context.Background()))
}

func TestResolve_NilCollaborators(t *testing.T) {
	svc := NewLocaleService(nil, nil)
	assert.Equal(t, entities.LocaleEnglish, svc.Resolve(context.Background()))
}

func TestLanguageWrites_NilStore(t *testing.T) {
	ctx := context.Background()
	svc := NewLocaleService(nil, hostLocale("zh"))

	assert.ErrorIs(t, svc.SetLanguage(ctx, "en"), domain.ErrNoPreferenceStore)
	assert.ErrorIs(t, svc.SetLanguage(ctx, "fr"), domain.ErrUnsupportedLocale)

	next, err := svc.ToggleLanguage(ctx)
	assert.ErrorIs(t, err, domain.ErrNoPreferenceStore)
	assert.Empty(t, next)

	assert.ErrorIs(t, svc.ClearLanguage(ctx), domain.ErrNoPreferenceStore)
	assert.Equal(t, entities.LocaleChinese, svc.Resolve(ctx))
}

func TestResolve_DoesNotWriteStore(t *testing.T) {
	store := newMemStore()
	svc := NewLocaleService(store, hostLocale("zh"))
	svc.Resolve(context.Background())
	assert.Empty(t, store.values)
}

func TestSetLanguage(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewLocaleService(store, hostLocale("zh"))

	require.NoError(t, svc.SetLanguage(ctx, "en"))
	assert.Equal(t, "en", store.values[entities.PreferenceKeyLang])
	assert.Equal(t, entities.LocaleEnglish, svc.Resolve(ctx))

	err := svc.SetLanguage(ctx, "fr")
	require.ErrorIs(t, err, domain.ErrUnsupportedLocale)
	assert.Equal(t, "en", store.values[entities.PreferenceKeyLang])
}

func TestToggleLanguage(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewLocaleService(store, hostLocale("zh"))

	next, err := svc.ToggleLanguage(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.LocaleEnglish, next)

	next, err = svc.ToggleLanguage(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.LocaleChinese, next)

	store.values[entities.PreferenceKeyLang] = "fr"
	next, err = svc.ToggleLanguage(ctx)
	require.NoError(t, err)
	assert.Equal(t, entities.LocaleChinese, next)
}

func TestClearLanguage(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.values[entities.PreferenceKeyLang] = "cn"
	svc := NewLocaleService(store, hostLocale("en"))

	require.NoError(t, svc.ClearLanguage(ctx))
	_, ok := store.values[entities.PreferenceKeyLang]
	assert.False(t, ok)
	assert.Equal(t, entities.LocaleEnglish, svc.Resolve(ctx))
}

func ptr(s string) *string { return &s }
