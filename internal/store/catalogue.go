package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/louvel/boutique/internal/models"
)

// Catalogue liste les produits du magasin de documents. Toute défaillance de
// transport remonte comme une unique condition « catalogue indisponible ».
type Catalogue interface {
	List(ctx context.Context) ([]models.Produit, error)
}

type mongoCatalogue struct {
	coll *mongo.Collection
}

// NewMongoCatalogue lit la collection "Produits" (le nom exact compte, la
// collection existe déjà sous ce nom).
func NewMongoCatalogue(db *mongo.Database) Catalogue {
	return &mongoCatalogue{coll: db.Collection("Produits")}
}

func (c *mongoCatalogue) List(ctx context.Context) ([]models.Produit, error) {
	cur, err := c.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("catalogue indisponible: %w", err)
	}
	defer cur.Close(ctx)
	var produits []models.Produit
	if err := cur.All(ctx, &produits); err != nil {
		return nil, fmt.Errorf("catalogue indisponible: %w", err)
	}
	if produits == nil {
		produits = []models.Produit{}
	}
	return produits, nil
}
