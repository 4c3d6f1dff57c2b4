package entity

import (
	"time"
)

// Category is the fixed product taxonomy.
type Category string

const (
	CategoryFood        Category = "Food"
	CategoryGrocery     Category = "Grocery"
	CategoryClothing    Category = "Clothing"
	CategoryElectronics Category = "Electronics"
	CategoryHomeGoods   Category = "HomeGoods"
	CategoryServices    Category = "Services"
	CategoryOther       Category = "Other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryFood, CategoryGrocery, CategoryClothing, CategoryElectronics,
		CategoryHomeGoods, CategoryServices, CategoryOther:
		return true
	}
	return false
}

type Product struct {
	ID          string   `json:"id" firestore:"id"`
	ShopID      string   `json:"shop_id" firestore:"shopId"`
	Name        string   `json:"name" firestore:"name"`
	Description string   `json:"description" firestore:"description"`
	Price       float64  `json:"price" firestore:"price"`
	Category    Category `json:"category" firestore:"category"`
	Quantity    int      `json:"quantity" firestore:"quantity"`
	Images      []string `json:"images" firestore:"images"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`

	// DeletedAt is stored as an explicit null for live records; the list
	// queries filter on deletedAt == nil, which only matches documents
	// that carry the field.
	DeletedAt *time.Time `json:"deleted_at,omitempty" firestore:"deletedAt"`
}

// Available reports whether the product can currently be bought.
func (p *Product) Available() bool {
	return p.Quantity > 0
}
