package models

import (
	"time"
)

// Ingredient names are stored lower-cased; capitalization happens in the API
// response mapping.
type Ingredient struct {
	ID         uint       `gorm:"primarykey" json:"id"`
	Name       string     `gorm:"size:100;uniqueIndex;not null" json:"name"`
	IsVegan    bool       `gorm:"not null;default:false" json:"is_vegan"`
	Categories []Category `gorm:"many2many:ingredient_categories" json:"categories,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// CategoryIDs projects the associated categories down to their ids.
func (i *Ingredient) CategoryIDs() []uint {
	ids := make([]uint, len(i.Categories))
	for n, c := range i.Categories {
		ids[n] = c.ID
	}
	return ids
}
