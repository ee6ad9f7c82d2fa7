// Package handlers expose les endpoints JSON de l'API.
package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/louvel/boutique/httpx"
	"github.com/louvel/boutique/internal/services"
)

type AuthHandler struct {
	svc *services.AuthService
}

func NewAuthHandler(svc *services.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/auth/register", h.register)
	mux.HandleFunc("/api/auth/login", h.login)
}

type registerRequest struct {
	Nom               string `json:"nom"`
	Prenom            string `json:"prenom"`
	Email             string `json:"email"`
	Telephone         string `json:"telephone"`
	MotDePasse        string `json:"motDePasse"`
	ConfirmMotDePasse string `json:"confirmMotDePasse"`
}

type loginRequest struct {
	Email      string `json:"email"`
	MotDePasse string `json:"motDePasse"`
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "Méthode non autorisée.", nil)
		return
	}
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Corps de requête invalide.", nil)
		return
	}
	user, err := h.svc.Register(r.Context(), services.RegisterInput{
		Nom:               req.Nom,
		Prenom:            req.Prenom,
		Email:             req.Email,
		Telephone:         req.Telephone,
		MotDePasse:        req.MotDePasse,
		ConfirmMotDePasse: req.ConfirmMotDePasse,
	})
	if err != nil {
		writeAuthError(w, r, err, "Erreur serveur pendant l'inscription.")
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{
		"message": "Inscription réussie.",
		"user":    user,
	})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "Méthode non autorisée.", nil)
		return
	}
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Corps de requête invalide.", nil)
		return
	}
	user, err := h.svc.Login(r.Context(), services.LoginInput{
		Email:      req.Email,
		MotDePasse: req.MotDePasse,
	})
	if err != nil {
		writeAuthError(w, r, err, "Erreur serveur pendant la connexion.")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{
		"message": "Connexion réussie.",
		"user":    user,
	})
}

// writeAuthError traduit la taxonomie du service en statuts HTTP. Le détail
// technique des pannes d'infrastructure part dans les logs opérateur, jamais
// au client.
func writeAuthError(w http.ResponseWriter, r *http.Request, err error, generic string) {
	var inv *services.InvalidInputError
	switch {
	case errors.As(err, &inv):
		httpx.JSONError(w, http.StatusBadRequest, inv.Error(), inv.Violations)
	case errors.Is(err, services.ErrEmailDejaUtilise):
		httpx.JSONError(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, services.ErrIdentifiantsInvalides):
		httpx.JSONError(w, http.StatusUnauthorized, err.Error(), nil)
	default:
		log.Printf("auth: %s %s: %v", r.Method, r.URL.Path, err)
		httpx.JSONError(w, http.StatusInternalServerError, generic, nil)
	}
}
