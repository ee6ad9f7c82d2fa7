// Package middleware regroupe les middlewares HTTP transverses.
package middleware

import "net/http"

// CORS autorise l'origine du frontend (Vite en développement, le domaine réel
// en production) à appeler l'API depuis un autre port. Les préflights OPTIONS
// sont absorbés ici.
func CORS(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Vary", "Origin")
		if r.Method == http.MethodOptions {
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
