package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/louvel/boutique/internal/models"
)

// fakeCatalogue remplace le magasin Mongo dans les tests.
type fakeCatalogue struct {
	produits []models.Produit
	err      error
}

func (f fakeCatalogue) List(_ context.Context) ([]models.Produit, error) {
	return f.produits, f.err
}

func TestCatalogueListe(t *testing.T) {
	produits := []models.Produit{
		{ID: primitive.NewObjectID(), Name: "Chaussures", Prix: 25000},
		{ID: primitive.NewObjectID(), Name: "Montre", Prix: 59.99, Image: "montre.png"},
	}
	mux := http.NewServeMux()
	NewCatalogueHandler(fakeCatalogue{produits: produits}).Register(mux)

	resp := httptest.NewRecorder()
	mux.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/produits", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var out []map[string]any
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(out) != 2 || out[0]["name"] != "Chaussures" || out[1]["prix"] != 59.99 {
		t.Fatalf("unexpected payload %v", out)
	}
}

func TestCatalogueIndisponible(t *testing.T) {
	mux := http.NewServeMux()
	NewCatalogueHandler(fakeCatalogue{err: errors.New("catalogue indisponible: connexion refusée")}).Register(mux)

	resp := httptest.NewRecorder()
	mux.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/produits", nil))
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 got %d", resp.Code)
	}
	// le texte technique de la panne ne sort jamais vers le client
	if body := resp.Body.String(); body == "" || body != `{"message":"Erreur lors de la récupération des produits."}` {
		t.Fatalf("unexpected body %s", body)
	}
}

func TestCatalogueMethodeNonAutorisee(t *testing.T) {
	mux := http.NewServeMux()
	NewCatalogueHandler(fakeCatalogue{}).Register(mux)
	resp := httptest.NewRecorder()
	mux.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/produits", nil))
	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405 got %d", resp.Code)
	}
}
