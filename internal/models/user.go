package models

import "time"

// User est un compte persisté dans le magasin relationnel. L'unicité de
// l'email est garantie par l'index unique : la pré-vérification du service
// d'authentification n'est qu'indicative.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Nom          string    `gorm:"not null" json:"nom"`
	Prenom       string    `gorm:"not null" json:"prenom"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Telephone    string    `gorm:"not null" json:"telephone"` // chiffres seuls
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// UtilisateurPublic est la vue d'un compte renvoyée au client. Le hash du mot
// de passe n'y figure pas, par construction : le type n'a pas de champ pour.
type UtilisateurPublic struct {
	ID        uint   `json:"id"`
	Nom       string `json:"nom"`
	Prenom    string `json:"prenom"`
	Email     string `json:"email"`
	Telephone string `json:"telephone"`
}

// Sanitized rend la vue publique du compte.
func (u User) Sanitized() UtilisateurPublic {
	return UtilisateurPublic{
		ID:        u.ID,
		Nom:       u.Nom,
		Prenom:    u.Prenom,
		Email:     u.Email,
		Telephone: u.Telephone,
	}
}
