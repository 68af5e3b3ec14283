package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"codediffdemo/internal/application"
	"codediffdemo/internal/config"
	"codediffdemo/internal/infrastructure/database"
	"codediffdemo/internal/infrastructure/hostlocale"
	"codediffdemo/internal/infrastructure/i18n"
	"codediffdemo/internal/infrastructure/prefsfile"
	"codediffdemo/internal/ports/output"
)

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "codediff-demo: %v\n", err)
		os.Exit(1)
	}
}

// app holds the wired use cases for one command run.
type app struct {
	locales    *application.LocaleService
	translator *i18n.Translator
	close      func()
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	var (
		store   output.PreferenceStore
		closeFn = func() {}
	)
	if cfg.UsesDatabase() {
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			return nil, err
		}
		pool, err := database.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		store = database.NewPreferenceRepository(pool)
		closeFn = pool.Close
	} else {
		store = prefsfile.NewStore(cfg.PreferencesFile)
	}

	return &app{
		locales:    application.NewLocaleService(store, hostlocale.NewEnvProvider()),
		translator: i18n.NewTranslator(cfg.FallbackLocale),
		close:      closeFn,
	}, nil
}
