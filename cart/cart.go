// Package cart implémente le panier d'une session cliente : une liste
// ordonnée de lignes (produit + quantité) identifiées par un identifiant
// normalisé. Le panier ne fait aucune entrée/sortie, ne persiste rien et
// n'appartient qu'à une seule session ; chaque propriétaire construit sa
// propre instance via New, jamais de panier global partagé.
package cart

import (
	"sync"

	"github.com/louvel/boutique/pricing"
)

// Produit est la copie locale qu'une ligne de panier garde d'un article.
// Selon la source, l'identifiant stable est la clé primaire (ID), la clé
// Mongo (AltID) ou, en dernier recours, le nom. Prix reste non typé car il
// arrive en nombre depuis le catalogue Mongo et en chaîne ("59,99 €") depuis
// les données locales.
type Produit struct {
	ID       string
	AltID    string
	Name     string
	Prix     any
	Image    string
	Quantite int
}

// ResolveID rend le premier identifiant défini parmi la clé primaire, la clé
// alternative et le nom, dans cet ordre. C'est la seule fonction d'identité du
// panier : deux produits sont « les mêmes » ssi ResolveID rend la même valeur.
// Le repli sur le nom fait entrer en collision deux produits distincts
// homonymes ; comportement conservé tel quel, certains enregistrements du
// catalogue n'ayant pas de clé stable.
func ResolveID(p Produit) string {
	if p.ID != "" {
		return p.ID
	}
	if p.AltID != "" {
		return p.AltID
	}
	return p.Name
}

// Panier est la liste ordonnée des lignes d'une session. L'ordre d'insertion
// est préservé par toutes les mutations ; une ligne retirée ne laisse pas de
// trou comblé par réordonnancement. Le mutex garantit que chaque mutation
// part du tout dernier état, même si l'hôte enchaîne les appels depuis
// plusieurs goroutines.
type Panier struct {
	mu     sync.Mutex
	lignes []Produit
}

// New construit un panier vide, propriété exclusive de l'appelant.
func New() *Panier {
	return &Panier{}
}

// Ajouter ajoute un produit. Si une ligne de même identifiant résolu existe
// déjà, seule sa quantité augmente de 1 : les autres champs de la ligne
// existante sont conservés, ceux du produit ajouté ne sont pas fusionnés.
// Sinon une nouvelle ligne est créée en fin de liste, identifiant forcé à la
// valeur résolue et quantité initialisée à 1 si absente.
func (c *Panier) Ajouter(p Produit) {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := ResolveID(p)
	for i := range c.lignes {
		if ResolveID(c.lignes[i]) == id {
			c.lignes[i].Quantite = quantite(c.lignes[i]) + 1
			return
		}
	}
	p.ID = id
	p.Quantite = quantite(p)
	c.lignes = append(c.lignes, p)
}

// Incrementer augmente de 1 la quantité de la ligne d'identifiant donné.
// Sans ligne correspondante, aucun effet.
func (c *Panier) Incrementer(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lignes {
		if ResolveID(c.lignes[i]) == id {
			c.lignes[i].Quantite = quantite(c.lignes[i]) + 1
			return
		}
	}
}

// Decrementer diminue de 1 la quantité de la ligne d'identifiant donné puis
// retire toute ligne tombée à zéro ou moins : une ligne n'est jamais
// conservée avec une quantité <= 0. Sans ligne correspondante, aucun effet.
func (c *Panier) Decrementer(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.lignes {
		if ResolveID(c.lignes[i]) == id {
			c.lignes[i].Quantite = quantite(c.lignes[i]) - 1
			break
		}
	}
	reste := c.lignes[:0]
	for _, l := range c.lignes {
		if l.Quantite > 0 {
			reste = append(reste, l)
		}
	}
	c.lignes = reste
}

// Vider retire toutes les lignes, sans condition.
func (c *Panier) Vider() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lignes = nil
}

// TotalArticles est la somme des quantités, pas le nombre de lignes.
func (c *Panier) TotalArticles() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0
	for _, l := range c.lignes {
		total += quantite(l)
	}
	return total
}

// Total est la somme des quantités multipliées par le prix canonique de
// chaque ligne.
func (c *Panier) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for _, l := range c.lignes {
		total += float64(quantite(l)) * pricing.Normalize(l.Prix)
	}
	return total
}

// Lignes rend une copie instantanée des lignes, dans l'ordre d'insertion.
func (c *Panier) Lignes() []Produit {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Produit, len(c.lignes))
	copy(out, c.lignes)
	return out
}

// quantite lit la quantité d'une ligne en traitant l'absence comme 1.
func quantite(p Produit) int {
	if p.Quantite < 1 {
		return 1
	}
	return p.Quantite
}
