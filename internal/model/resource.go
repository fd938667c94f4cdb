package model

// Resource is a stocked item tracked by quantity.
type Resource struct {
	ID          int64  `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"not null" json:"description"`
	Quantity    int    `gorm:"not null" json:"quantity"`
}

// TableName binds Resource to the resources table.
func (Resource) TableName() string { return "resources" }

// ResourceCreate is the create shape; every field must be supplied.
// Fields are pointers so that "" and 0 count as supplied.
type ResourceCreate struct {
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description" validate:"required"`
	Quantity    *int    `json:"quantity" validate:"required"`
}

// Entity converts the input into a Resource without an ID.
func (in ResourceCreate) Entity() Resource {
	var r Resource
	if in.Name != nil {
		r.Name = *in.Name
	}
	if in.Description != nil {
		r.Description = *in.Description
	}
	if in.Quantity != nil {
		r.Quantity = *in.Quantity
	}
	return r
}

// ResourceUpdate is the partial update shape. Nil fields are left untouched.
type ResourceUpdate struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Quantity    *int    `json:"quantity,omitempty"`
}

// Changes returns the column values supplied by the caller.
func (in ResourceUpdate) Changes() map[string]any {
	changes := make(map[string]any, 3)
	if in.Name != nil {
		changes["name"] = *in.Name
	}
	if in.Description != nil {
		changes["description"] = *in.Description
	}
	if in.Quantity != nil {
		changes["quantity"] = *in.Quantity
	}
	return changes
}
