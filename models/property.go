package models

import "time"

// Property is a real-estate listing exposed by the /properties resource.
type Property struct {
	// ID is the opaque identifier of the property (UUIDv7 string).
	ID string `json:"id"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`

	// Price is expressed in minor currency units (e.g. cents).
	Price int64 `json:"price"`

	Bedrooms int `json:"bedrooms"`

	// Area is the living area in square meters.
	Area float64 `json:"area"`

	Available bool `json:"available"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Property model.
func (p Property) TableName() string {
	return "properties"
}
