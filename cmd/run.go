package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/janadahlmanns/OrganIQ/internal/app"
	"github.com/janadahlmanns/OrganIQ/internal/config"
	"github.com/janadahlmanns/OrganIQ/internal/content"
	"github.com/janadahlmanns/OrganIQ/internal/progression"
	"github.com/janadahlmanns/OrganIQ/internal/store"
)

// runApp loads config and content, opens the store, restores the
// ledger and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	closeLog := setupLogging(cfg)
	defer closeLog()

	ct, err := content.Load()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	st, err := openStore(cmd, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	settings := config.NewSettings(cfg)
	if lang, err := st.Pref(store.PrefLanguage); err == nil && lang != "" {
		settings.Language = lang
	}

	return app.Run(app.Options{
		Store:    st,
		Content:  ct,
		Ledger:   restoreLedger(st),
		Settings: settings,
	})
}

// openStore resolves the database path and opens the SQLite store.
func openStore(cmd *cobra.Command, cfg *config.Config) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// restoreLedger rebuilds the progression ledger from its persisted
// snapshot, starting fresh when none exists.
func restoreLedger(st *store.Store) *progression.Ledger {
	if snap, ok := st.LoadLedger(); ok {
		return progression.Restore(snap, st)
	}
	return progression.New(st)
}

// setupLogging routes logrus to the configured file so the terminal
// stays free for the UI. Logs are discarded when no file is set.
func setupLogging(cfg *config.Config) func() {
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		logrus.SetLevel(level)
	}

	if cfg.Log.File == "" {
		logrus.SetOutput(io.Discard)
		return func() {}
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot open log file:", err)
		logrus.SetOutput(io.Discard)
		return func() {}
	}
	logrus.SetOutput(f)
	return func() { f.Close() }
}
