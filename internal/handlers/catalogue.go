package handlers

import (
	"log"
	"net/http"

	"github.com/louvel/boutique/httpx"
	"github.com/louvel/boutique/internal/store"
)

type CatalogueHandler struct {
	catalogue store.Catalogue
}

func NewCatalogueHandler(c store.Catalogue) *CatalogueHandler {
	return &CatalogueHandler{catalogue: c}
}

func (h *CatalogueHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/produits", h.list)
}

// list renvoie tous les produits du catalogue, sans filtre ni pagination.
func (h *CatalogueHandler) list(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		httpx.JSONError(w, http.StatusMethodNotAllowed, "Méthode non autorisée.", nil)
		return
	}
	produits, err := h.catalogue.List(r.Context())
	if err != nil {
		log.Printf("catalogue: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "Erreur lors de la récupération des produits.", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, produits)
}
