package models

// Tag is a recipe category. Tags are seeded once and read-only to clients.
type Tag struct {
	ID    string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name  string `json:"name" gorm:"type:varchar(200)" validate:"required,max=200"`
	Color string `json:"color" gorm:"type:varchar(7)" validate:"required,max=7"`
	Slug  string `json:"slug" gorm:"uniqueIndex;type:varchar(200)" validate:"required,max=200"`
}

// Ingredient is a reference row pairing a name with its measurement unit.
// No uniqueness is enforced here; the source data contains repeats.
type Ingredient struct {
	ID              string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name            string `json:"name" gorm:"index;type:varchar(200)" validate:"required,max=200"`
	MeasurementUnit string `json:"measurement_unit" gorm:"type:varchar(200)" validate:"required,max=200"`
}
