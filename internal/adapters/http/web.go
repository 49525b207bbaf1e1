package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"

	"github.com/rhenandrew/Bombeiro-Militar/internal/adapters/email"
	"github.com/rhenandrew/Bombeiro-Militar/internal/adapters/http/middleware"
	calendarStore "github.com/rhenandrew/Bombeiro-Militar/internal/adapters/storage/calendar"
	profileStore "github.com/rhenandrew/Bombeiro-Militar/internal/adapters/storage/profile"
	simuladoStore "github.com/rhenandrew/Bombeiro-Militar/internal/adapters/storage/simulado"
	tafStore "github.com/rhenandrew/Bombeiro-Militar/internal/adapters/storage/taf"
)

// Stores holds all storage dependencies.
type Stores struct {
	CalendarStore calendarStore.Store
	SimuladoStore simuladoStore.Store
	TAFStore      tafStore.Store
	ProfileStore  profileStore.Store
}

// loadCSRFKey reads the CSRF secret from PLANNER_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("PLANNER_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("PLANNER_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("PLANNER_ENV") == "production" {
		log.Fatal("PLANNER_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (form tokens won't survive restart). Set PLANNER_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global email sender instance (set by SetEmailSender)
var emailSender email.Sender

// reportTo is the recipient of month report mails.
var reportTo string

// SetEmailSender sets the email sender and report recipient for the application.
func SetEmailSender(sender email.Sender, to string) {
	emailSender = sender
	reportTo = to
}

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, trustedOrigins []string) http.Handler {
	stores = s
	if emailSender == nil {
		emailSender = email.NewNoopSender()
	}

	mux := http.NewServeMux()
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()
	initFlash(csrfKey)

	// Apply middleware: Timing -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey, trustedOrigins),
		middleware.Timing(),
	)
}
