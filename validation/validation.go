// Package validation regroupe les règles pures de validation des champs
// d'inscription et de connexion. Chaque validateur alimente une Violations ;
// aucune entrée/sortie, les mêmes règles sont rejouables côté test.
package validation

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Violations associe un champ au message de sa première violation.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

var (
	// un-ou-plusieurs caractères ni blanc ni @, arobase, idem, point, idem
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRegex = regexp.MustCompile(`^\d{10}$`)
)

// Required vérifie qu'une valeur n'est pas blanche une fois rognée.
func Required(field, value, msg string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = msg
	}
}

// Email vérifie présence puis forme local@domaine.tld.
func Email(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "L'email est requis."
		return
	}
	if !emailRegex.MatchString(value) {
		v[field] = "Email invalide."
	}
}

// Phone vérifie présence puis, blancs retirés, exactement 10 chiffres.
func Phone(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "Le téléphone est requis."
		return
	}
	if !phoneRegex.MatchString(DigitsOnly(value)) {
		v[field] = "Téléphone invalide (10 chiffres)."
	}
}

// StrongPassword impose au moins 12 caractères et la présence simultanée
// d'une minuscule, d'une majuscule, d'un chiffre et d'un caractère qui n'est
// aucun des trois, n'importe où dans la chaîne.
func StrongPassword(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "Le mot de passe est requis."
		return
	}
	if utf8.RuneCountInString(value) < 12 {
		v[field] = "Le mot de passe doit contenir au moins 12 caractères."
		return
	}
	var lower, upper, digit, other bool
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}
	if !lower || !upper || !digit || !other {
		v[field] = "Le mot de passe doit contenir au moins une majuscule, une minuscule, un chiffre et un caractère spécial."
	}
}

// Match vérifie l'égalité stricte de la confirmation avec le mot de passe.
func Match(field, value, confirm string, v Violations) {
	if confirm != value {
		v[field] = "Les mots de passe ne correspondent pas."
	}
}

// DigitsOnly retire tous les blancs d'un numéro de téléphone ; c'est la forme
// stockée en base ("06 12 34 56 78" devient "0612345678").
func DigitsOnly(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)
}

// Inscription rejoue le jeu complet de règles d'inscription. confirm est
// ignoré quand le client ne renvoie pas le champ de confirmation (le contrat
// de transport n'en porte que cinq).
func Inscription(nom, prenom, email, telephone, motDePasse, confirm string) Violations {
	v := Violations{}
	Required("nom", nom, "Le nom est requis.", v)
	Required("prenom", prenom, "Le prénom est requis.", v)
	Email("email", email, v)
	Phone("telephone", telephone, v)
	StrongPassword("motDePasse", motDePasse, v)
	if confirm != "" {
		Match("confirmMotDePasse", motDePasse, confirm, v)
	}
	return v
}

// Connexion ne vérifie que la présence : on contrôle un mot de passe
// existant, on n'en crée pas, et re-valider la complexité casserait la
// connexion des comptes antérieurs à la politique actuelle.
func Connexion(email, motDePasse string) Violations {
	v := Violations{}
	Required("email", email, "L'email est requis.", v)
	Required("motDePasse", motDePasse, "Le mot de passe est requis.", v)
	return v
}
