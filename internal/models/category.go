package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultCategoryNames are the categories every new user starts with.
var DefaultCategoryNames = []string{"식비", "교통비", "주거비", "통신비", "기타"}

// Category represents a transaction category owned by a single user.
//
// Transactions reference categories by name, not by ID, so renaming a
// category does not cascade to existing transactions.
type Category struct {
	DefaultModel
	UserID uuid.UUID `gorm:"index"`
	Name   string
}

// BeforeSave rejects categories without a name. Names are unique per user by
// convention only, so no constraint is enforced here.
func (c *Category) BeforeSave(_ *gorm.DB) error {
	if c.Name == "" {
		return ErrCategoryNameEmpty
	}

	return nil
}

// CategoryNames returns the names of all categories of a user, ordered by
// creation time.
func CategoryNames(db *gorm.DB, userID uuid.UUID) ([]string, error) {
	var categories []Category
	err := db.Where(&Category{UserID: userID}).Order("created_at ASC").Find(&categories).Error
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(categories))
	for _, category := range categories {
		names = append(names, category.Name)
	}

	return names, nil
}

// SeedDefaultCategories creates the default category set for a new user.
func SeedDefaultCategories(db *gorm.DB, userID uuid.UUID) error {
	for _, name := range DefaultCategoryNames {
		err := db.Create(&Category{UserID: userID, Name: name}).Error
		if err != nil {
			return err
		}
	}

	return nil
}
