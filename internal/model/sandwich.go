package model

import "github.com/shopspring/decimal"

// Sandwich is a menu item with an exact decimal price.
type Sandwich struct {
	ID          int64           `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `gorm:"not null" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price" swaggertype:"string" example:"7.50"`
}

// TableName binds Sandwich to the sandwiches table.
func (Sandwich) TableName() string { return "sandwiches" }

// SandwichCreate is the create shape; every field must be supplied.
type SandwichCreate struct {
	Name        *string          `json:"name" validate:"required"`
	Description *string          `json:"description" validate:"required"`
	Price       *decimal.Decimal `json:"price" validate:"required" swaggertype:"string"`
}

// Entity converts the input into a Sandwich without an ID.
func (in SandwichCreate) Entity() Sandwich {
	var s Sandwich
	if in.Name != nil {
		s.Name = *in.Name
	}
	if in.Description != nil {
		s.Description = *in.Description
	}
	if in.Price != nil {
		s.Price = *in.Price
	}
	return s
}

// SandwichUpdate is the partial update shape. Nil fields are left untouched.
type SandwichUpdate struct {
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty" swaggertype:"string"`
}

// Changes returns the column values supplied by the caller.
func (in SandwichUpdate) Changes() map[string]any {
	changes := make(map[string]any, 3)
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	if in.Description != nil {
		changes["description"] = *in.Description
	}
	if in.Price != nil {
		changes["price"] = *in.Price
	}
	return changes
}
