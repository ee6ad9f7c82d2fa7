// Package store contient les accès aux magasins persistants : comptes
// utilisateurs (relationnel) et catalogue de produits (documents).
package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/louvel/boutique/internal/models"
)

// ErrDuplicate signale une violation de la contrainte d'unicité sur l'email.
var ErrDuplicate = errors.New("email déjà enregistré")

// Users expose le magasin de comptes. FindByEmail rend (nil, nil) quand aucun
// compte ne porte cet email ; Insert remplit l'identifiant généré et rend
// ErrDuplicate si la contrainte d'unicité rejette l'insertion.
type Users interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, u *models.User) error
}

type gormUsers struct {
	db *gorm.DB
}

// NewGormUsers construit le magasin de comptes au-dessus d'une connexion gorm.
func NewGormUsers(db *gorm.DB) Users {
	return &gormUsers{db: db}
}

func (s *gormUsers) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *gormUsers) Insert(ctx context.Context, u *models.User) error {
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		if isDuplicate(err) {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

// isDuplicate couvre la traduction d'erreurs de gorm et, à défaut, le texte
// des contraintes uniques sqlite et postgres.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
