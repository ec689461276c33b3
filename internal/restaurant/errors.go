package restaurant

import (
	"errors"
	"fmt"
)

var (
	// ErrBusinessNotFound is returned by Store mutations when no business
	// is registered under the given name. The Store is left unchanged.
	ErrBusinessNotFound = errors.New("restaurant: business not found")
	// ErrOrderNotFound is returned when no order carries the given ID.
	ErrOrderNotFound = errors.New("restaurant: order not found")
	// ErrNoMenu is returned when an order is assembled for a business
	// without a menu.
	ErrNoMenu = errors.New("restaurant: menu not found for business")
	// ErrCuisineNotFound is returned when a cuisine name has no exact match.
	ErrCuisineNotFound = errors.New("restaurant: cuisine not found in menu")
	// ErrFoodNotFound is returned when a food name has no exact match in
	// the chosen cuisine.
	ErrFoodNotFound = errors.New("restaurant: food not found in cuisine")
	// ErrNoCuisine is returned when a food is added or chosen before a
	// cuisine.
	ErrNoCuisine = errors.New("restaurant: no cuisine selected")
	// ErrAssemblyDone is returned when selections arrive after Done.
	ErrAssemblyDone = errors.New("restaurant: order assembly already finished")
)

// SelectionError reports which selection of a batch failed.
type SelectionError struct {
	Index     int
	Selection Selection
	Err       error
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("selection %d (%s / %s): %v", e.Index, e.Selection.Cuisine, e.Selection.Food, e.Err)
}

func (e *SelectionError) Unwrap() error {
	return e.Err
}

// Warning describes malformed input that was replaced by a fallback value.
// It is never fatal; callers surface it and carry on.
type Warning struct {
	Field    string
	Input    string
	Fallback string
}

func (w *Warning) Error() string {
	return fmt.Sprintf("invalid %s %q, defaulting to %s", w.Field, w.Input, w.Fallback)
}
