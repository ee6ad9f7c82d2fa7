// Package pricing convertit les représentations hétérogènes de prix du
// catalogue en valeur numérique canonique exploitable pour les calculs.
//
// Les prix arrivent sous plusieurs formes selon la source : nombre brut pour
// les produits Mongo, chaîne suffixée d'un symbole monétaire ("59,99 €") pour
// les données locales. Le calcul du total du panier doit être indifférent à la
// source.
package pricing

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Normalize rend un float64 utilisable quel que soit le type d'entrée.
// Toute valeur absente ou inexploitable vaut 0 ; la fonction ne panique jamais.
func Normalize(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		if math.IsNaN(v) {
			return 0
		}
		return v
	case float32:
		return Normalize(float64(v))
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		return parseTexte(v)
	default:
		return 0
	}
}

// parseTexte nettoie un prix textuel puis le parse :
// symbole € retiré, virgule décimale convertie en point, tout caractère
// restant qui n'est ni chiffre ni point supprimé.
func parseTexte(s string) float64 {
	texte := strings.TrimSpace(s)
	if texte == "" {
		return 0
	}
	texte = strings.ReplaceAll(texte, "€", "")
	texte = strings.ReplaceAll(texte, ",", ".")
	var b strings.Builder
	for _, r := range texte {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	// parse du plus long préfixe valide, un seul point décimal admis
	cleaned := b.String()
	end := 0
	seenDot := false
	for i, r := range cleaned {
		if r == '.' {
			if seenDot {
				break
			}
			seenDot = true
		}
		end = i + 1
	}
	f, err := strconv.ParseFloat(cleaned[:end], 64)
	if err != nil {
		return 0
	}
	return f
}
