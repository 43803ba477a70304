package order

import (
	"errors"
	"fmt"

	"github.com/andregumieri/fiap-brigalab/internal/catalog"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrCheckoutUnavailable = errors.New("checkout is not available")
)

// InvalidSelectionError is returned by SelectBase and SelectTopping when the
// id is not part of the matching catalog list.
type InvalidSelectionError struct {
	Kind catalog.Kind
	ID   string
	Err  error
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("invalid %s selection %q", e.Kind, e.ID)
}

func (e *InvalidSelectionError) Unwrap() error { return e.Err }
