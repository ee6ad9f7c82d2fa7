// Package server assemble le handler HTTP racine de l'application.
package server

import (
	"log"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/louvel/boutique/httpx"
	"github.com/louvel/boutique/internal/config"
	"github.com/louvel/boutique/internal/handlers"
	"github.com/louvel/boutique/internal/middleware"
	"github.com/louvel/boutique/internal/services"
	"github.com/louvel/boutique/internal/store"
)

// Deps regroupe les collaborateurs injectés dans le routeur : la connexion
// relationnelle, le catalogue et le hachage. Les tests substituent des
// implémentations rapides sans toucher au câblage.
type Deps struct {
	DB        *gorm.DB
	Catalogue store.Catalogue
	Hasher    services.Hasher
}

// New constructs the root http.Handler with all routes and middlewares applied.
func New(d Deps, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	hasher := d.Hasher
	if hasher == nil {
		hasher = services.BcryptHasher{Cost: cfg.Auth.BcryptCost}
	}

	// --- Health endpoints ---
	//revive:disable:unused-parameter simple handlers intentionally ignore *http.Request
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		// Perform a lightweight DB check (SELECT 1) – ignore detailed errors in body
		if err := d.DB.Exec("SELECT 1").Error; err != nil {
			httpx.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	//revive:enable:unused-parameter

	authSvc := services.NewAuthService(store.NewGormUsers(d.DB), hasher)
	handlers.NewAuthHandler(authSvc).Register(mux)

	if d.Catalogue != nil {
		handlers.NewCatalogueHandler(d.Catalogue).Register(mux)
	}

	return middleware.CORS(cfg.Server.AllowedOrigin, withRecover(withLogging(mux)))
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic: %s %s: %v", r.Method, r.URL.Path, rec)
				httpx.JSONError(w, http.StatusInternalServerError, "Erreur serveur.", nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
