package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/spf13/cobra"
	_ "modernc.org/sqlite"

	emailPkg "github.com/rhenandrew/Bombeiro-Militar/internal/adapters/email"
	web "github.com/rhenandrew/Bombeiro-Militar/internal/adapters/http"
	"github.com/rhenandrew/Bombeiro-Militar/internal/adapters/storage"
	calendarStorePkg "github.com/rhenandrew/Bombeiro-Militar/internal/adapters/storage/calendar"
	profileStorePkg "github.com/rhenandrew/Bombeiro-Militar/internal/adapters/storage/profile"
	simuladoStorePkg "github.com/rhenandrew/Bombeiro-Militar/internal/adapters/storage/simulado"
	tafStorePkg "github.com/rhenandrew/Bombeiro-Militar/internal/adapters/storage/taf"
	"github.com/rhenandrew/Bombeiro-Militar/internal/application/orchestrators"
	"github.com/rhenandrew/Bombeiro-Militar/internal/config"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the planner web server.

Settings come from an optional YAML config file, overridden by
PLANNER_* environment variables, overridden by command-line flags.`,
	RunE: runServe,
}

var (
	serveConfigPath string
	serveAddr       string
	serveDBPath     string
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "f", "", "path to YAML config file")
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
	serveCmd.Flags().StringVar(&serveDBPath, "db", "", "SQLite database path (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if serveConfigPath != "" {
		loaded, err := config.LoadFromFile(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if serveDBPath != "" {
		cfg.DBPath = serveDBPath
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	db, err := storage.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := storage.InitDB(db); err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}

	timedDB := storage.NewTimedDB(db)

	profStore := profileStorePkg.NewSQLiteStore(timedDB)
	stores := &web.Stores{
		CalendarStore: calendarStorePkg.NewSQLiteStore(timedDB),
		SimuladoStore: simuladoStorePkg.NewSQLiteStore(timedDB),
		TAFStore:      tafStorePkg.NewSQLiteStore(timedDB),
		ProfileStore:  profStore,
	}

	seedDeps := orchestrators.SeedProfileDeps{ProfileStore: profStore}
	if err := orchestrators.ExecuteSeedProfile(context.Background(), seedDeps); err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}

	// Configure email sender for month reports
	resendKey := os.Getenv("PLANNER_RESEND_KEY")
	emailFrom := envOrDefault("PLANNER_RESEND_FROM", "Planner <noreply@localhost>")
	if resendKey != "" && cfg.ReportTo != "" {
		web.SetEmailSender(emailPkg.NewResendSender(resendKey, emailFrom), cfg.ReportTo)
		log.Println("Email sender configured (Resend)")
	} else {
		web.SetEmailSender(emailPkg.NewNoopSender(), cfg.ReportTo)
		log.Println("Email sender configured (noop — set PLANNER_RESEND_KEY and report_to for real delivery)")
	}

	mux := web.NewMux("static", stores, nil)

	log.Printf("Planner %s starting on %s (env=%s, db=%s)", version, cfg.Addr, cfg.Env, cfg.DBPath)
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
