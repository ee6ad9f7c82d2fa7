// Package services porte la logique métier de l'application, à commencer par
// l'inscription et la connexion des comptes.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/louvel/boutique/internal/models"
	"github.com/louvel/boutique/internal/store"
	"github.com/louvel/boutique/validation"
)

var (
	// ErrEmailDejaUtilise : un compte existe déjà avec cet email.
	ErrEmailDejaUtilise = errors.New("Un utilisateur avec cet email existe déjà.")
	// ErrIdentifiantsInvalides couvre indifféremment l'email inconnu et le
	// mauvais mot de passe, pour ne pas permettre l'énumération des comptes.
	ErrIdentifiantsInvalides = errors.New("Email ou mot de passe incorrect.")
)

// InvalidInputError porte les violations champ par champ détectées par la
// validation. Une entrée invalide n'atteint jamais la couche de stockage.
type InvalidInputError struct {
	Violations validation.Violations
}

func (e *InvalidInputError) Error() string {
	for _, msg := range e.Violations {
		return msg
	}
	return "Entrée invalide."
}

// RegisterInput regroupe les champs du formulaire d'inscription.
// ConfirmMotDePasse est facultatif côté transport.
type RegisterInput struct {
	Nom               string
	Prenom            string
	Email             string
	Telephone         string
	MotDePasse        string
	ConfirmMotDePasse string
}

// LoginInput regroupe les champs du formulaire de connexion.
type LoginInput struct {
	Email      string
	MotDePasse string
}

// AuthService orchestre inscription et connexion. Le magasin de comptes et le
// hachage sont injectés, jamais atteints par variable globale.
type AuthService struct {
	users  store.Users
	hasher Hasher
}

func NewAuthService(users store.Users, hasher Hasher) *AuthService {
	return &AuthService{users: users, hasher: hasher}
}

// Register valide les champs, vérifie l'unicité de l'email, hache le mot de
// passe puis insère le compte. Le résultat est la vue publique du compte,
// sans hash. Soit le flux complet aboutit, soit rien n'est persisté.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.UtilisateurPublic, error) {
	if v := validation.Inscription(in.Nom, in.Prenom, in.Email, in.Telephone, in.MotDePasse, in.ConfirmMotDePasse); !v.Empty() {
		return nil, &InvalidInputError{Violations: v}
	}

	email := strings.TrimSpace(in.Email)
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("recherche email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailDejaUtilise
	}

	hash, err := s.hasher.Hash(in.MotDePasse)
	if err != nil {
		return nil, fmt.Errorf("hachage du mot de passe: %w", err)
	}

	u := models.User{
		Nom:          strings.TrimSpace(in.Nom),
		Prenom:       strings.TrimSpace(in.Prenom),
		Email:        email,
		Telephone:    validation.DigitsOnly(in.Telephone),
		PasswordHash: hash,
	}
	if err := s.users.Insert(ctx, &u); err != nil {
		// entre la pré-vérification et l'insertion, une inscription concurrente
		// a pu passer : la contrainte d'unicité en base reste l'arbitre et son
		// rejet se rapporte comme un duplicata, pas comme une panne
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailDejaUtilise
		}
		return nil, fmt.Errorf("insertion utilisateur: %w", err)
	}

	pub := u.Sanitized()
	return &pub, nil
}

// Login vérifie la présence des identifiants, retrouve le compte par email et
// compare le mot de passe au hash stocké. Email inconnu et mauvais mot de
// passe produisent exactement la même erreur.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (*models.UtilisateurPublic, error) {
	if v := validation.Connexion(in.Email, in.MotDePasse); !v.Empty() {
		return nil, &InvalidInputError{Violations: v}
	}

	u, err := s.users.FindByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, fmt.Errorf("recherche email: %w", err)
	}
	if u == nil {
		return nil, ErrIdentifiantsInvalides
	}
	if !s.hasher.Verify(in.MotDePasse, u.PasswordHash) {
		return nil, ErrIdentifiantsInvalides
	}

	pub := u.Sanitized()
	return &pub, nil
}
