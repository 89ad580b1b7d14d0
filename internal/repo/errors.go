package repo

import (
	"errors"
	"fmt"
)

// ErrCategoryNotFound is returned when a category is not found in the repository.
var ErrCategoryNotFound = errors.New("category not found")

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ErrVariationNotFound is returned when a product variation is not found in the repository.
var ErrVariationNotFound = errors.New("product variation not found")

// MissingCategoryError is returned when a category id referenced in a
// product's category set does not correspond to any stored category.
// It carries the offending id so callers can report it.
type MissingCategoryError struct {
	ID int
}

func (e *MissingCategoryError) Error() string {
	return fmt.Sprintf("category with id %d does not exist", e.ID)
}
