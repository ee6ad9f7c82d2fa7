// Package httpx fournit les aides de réponse JSON partagées par tous les
// handlers de l'API.
package httpx

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse est le corps de toute réponse d'erreur : un message destiné à
// l'utilisateur et, pour les erreurs de validation, le détail champ par champ.
type ErrorResponse struct {
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	var body []byte
	var err error
	if payload != nil {
		body, err = json.Marshal(payload)
		if err != nil {
			// best-effort error response; avoid writing partial JSON
			http.Error(w, `{"message":"encode_error"}`, http.StatusInternalServerError)
			return
		}
	} else {
		body = []byte("null")
	}
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		// nothing we can do at this point
		_ = err
	}
}

func JSONError(w http.ResponseWriter, status int, msg string, details any) {
	JSON(w, status, ErrorResponse{Message: msg, Details: details})
}
