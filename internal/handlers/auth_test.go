package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/louvel/boutique/internal/models"
	"github.com/louvel/boutique/internal/services"
	"github.com/louvel/boutique/internal/store"
)

type fakeHasher struct{}

func (fakeHasher) Hash(secret string) (string, error) { return "h:" + secret, nil }
func (fakeHasher) Verify(secret, digest string) bool  { return digest == "h:"+secret }

func setupAuthMux(t *testing.T) (*http.ServeMux, *gorm.DB) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	svc := services.NewAuthService(store.NewGormUsers(db), fakeHasher{})
	mux := http.NewServeMux()
	NewAuthHandler(svc).Register(mux)
	return mux, db
}

func postJSON(t *testing.T, mux *http.ServeMux, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	mux.ServeHTTP(resp, req)
	return resp
}

const registerBody = `{"nom":"Dupont","prenom":"Alix","email":"alix@example.com","telephone":"06 12 34 56 78","motDePasse":"Valid#Pass1234"}`

func TestRegisterPuisLoginBoutEnBout(t *testing.T) {
	mux, _ := setupAuthMux(t)

	resp := postJSON(t, mux, "/api/auth/register", registerBody)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d body=%s", resp.Code, resp.Body.String())
	}
	var out struct {
		Message string         `json:"message"`
		User    map[string]any `json:"user"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Message != "Inscription réussie." {
		t.Fatalf("unexpected message %q", out.Message)
	}
	if out.User["telephone"] != "0612345678" {
		t.Fatalf("expected digits-only telephone, got %v", out.User["telephone"])
	}
	for _, champ := range []string{"motDePasse", "password", "password_hash", "PasswordHash"} {
		if _, present := out.User[champ]; present {
			t.Fatalf("response must not expose %s", champ)
		}
	}

	login := postJSON(t, mux, "/api/auth/login", `{"email":"alix@example.com","motDePasse":"Valid#Pass1234"}`)
	if login.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", login.Code, login.Body.String())
	}
	var loginOut struct {
		Message string         `json:"message"`
		User    map[string]any `json:"user"`
	}
	if err := json.Unmarshal(login.Body.Bytes(), &loginOut); err != nil {
		t.Fatalf("decode login: %v", err)
	}
	if loginOut.User["email"] != "alix@example.com" || loginOut.User["nom"] != "Dupont" {
		t.Fatalf("unexpected login user %v", loginOut.User)
	}
}

func TestRegisterEntreeInvalide(t *testing.T) {
	mux, db := setupAuthMux(t)
	body := strings.Replace(registerBody, "Valid#Pass1234", "alllowercase123!", 1)
	resp := postJSON(t, mux, "/api/auth/register", body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d body=%s", resp.Code, resp.Body.String())
	}
	var out struct {
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Details["motDePasse"] == "" {
		t.Fatalf("expected field-level detail, got %v", out.Details)
	}
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Fatalf("invalid input must not persist anything, got %d rows", count)
	}
}

func TestRegisterEmailDuplique(t *testing.T) {
	mux, _ := setupAuthMux(t)
	if resp := postJSON(t, mux, "/api/auth/register", registerBody); resp.Code != http.StatusCreated {
		t.Fatalf("first register: %d", resp.Code)
	}
	resp := postJSON(t, mux, "/api/auth/register", registerBody)
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d body=%s", resp.Code, resp.Body.String())
	}
	if !strings.Contains(resp.Body.String(), "existe déjà") {
		t.Fatalf("unexpected body %s", resp.Body.String())
	}
}

func TestLoginIdentifiantsInvalidesMemeReponse(t *testing.T) {
	mux, _ := setupAuthMux(t)
	if resp := postJSON(t, mux, "/api/auth/register", registerBody); resp.Code != http.StatusCreated {
		t.Fatalf("register: %d", resp.Code)
	}
	mauvais := postJSON(t, mux, "/api/auth/login", `{"email":"alix@example.com","motDePasse":"Faux#Pass1234"}`)
	inconnu := postJSON(t, mux, "/api/auth/login", `{"email":"personne@example.com","motDePasse":"Valid#Pass1234"}`)
	if mauvais.Code != http.StatusUnauthorized || inconnu.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401 got %d/%d", mauvais.Code, inconnu.Code)
	}
	// même statut, même corps : impossible de distinguer email inconnu et
	// mauvais mot de passe
	if mauvais.Body.String() != inconnu.Body.String() {
		t.Fatalf("responses differ: %s vs %s", mauvais.Body.String(), inconnu.Body.String())
	}
}

func TestLoginPresenceRequise(t *testing.T) {
	mux, _ := setupAuthMux(t)
	resp := postJSON(t, mux, "/api/auth/login", `{"email":"","motDePasse":""}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAuthMethodesNonAutorisees(t *testing.T) {
	mux, _ := setupAuthMux(t)
	for _, path := range []string{"/api/auth/register", "/api/auth/login"} {
		resp := httptest.NewRecorder()
		mux.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, path, nil))
		if resp.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s: expected 405 got %d", path, resp.Code)
		}
	}
}

func TestRegisterCorpsInvalide(t *testing.T) {
	mux, _ := setupAuthMux(t)
	resp := postJSON(t, mux, "/api/auth/register", "{pas du json")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
