package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Category validation errors.
var (
	ErrEmptyCategoryName    = fmt.Errorf("%w: category name cannot be empty", ErrValidation)
	ErrCategoryNameTooLong  = fmt.Errorf("%w: category name must be at most 15 characters", ErrValidation)
	ErrInvalidCategoryColor = fmt.Errorf("%w: category color must be a 7-character hex value", ErrValidation)
)

// Category is the required classification of a task (e.g. "Technical Task").
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// NewCategory creates a new Category with a fresh ID.
// Returns an error if validation fails.
func NewCategory(name, color string) (*Category, error) {
	category := &Category{
		ID:        uuid.New(),
		Name:      name,
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrEmptyCategoryName
	}
	if len(c.Name) > 15 {
		return ErrCategoryNameTooLong
	}
	if !validHexColor(c.Color) {
		return ErrInvalidCategoryColor
	}
	return nil
}
