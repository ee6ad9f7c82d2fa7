package services

import "golang.org/x/crypto/bcrypt"

// Hasher est la capacité de hachage injectée dans AuthService : bcrypt en
// production, une implémentation rapide dans les tests. Le hachage est
// unidirectionnel ; la vérification passe par Verify, jamais par comparaison
// de chaînes.
type Hasher interface {
	Hash(secret string) (string, error)
	Verify(secret, digest string) bool
}

// BcryptHasher hache avec bcrypt. Cost est le facteur de travail, volontaire-
// ment lent pour ralentir la force brute ; zéro vaut bcrypt.DefaultCost.
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(secret string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (h BcryptHasher) Verify(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
