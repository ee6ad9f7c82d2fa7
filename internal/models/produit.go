package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Produit est un article du catalogue tel que stocké dans la collection
// Mongo "Produits". Le prix y est déjà numérique ; les sources locales du
// frontend, elles, livrent des chaînes suffixées, normalisées côté panier.
type Produit struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name  string             `bson:"name" json:"name"`
	Prix  float64            `bson:"prix" json:"prix"`
	Image string             `bson:"image,omitempty" json:"image,omitempty"`
}
