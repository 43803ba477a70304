// Package catalog holds the fixed option lists a customer picks from when
// building a brigadeiro cup: the base flavor ("massa") and the topping
// ("granulado").
package catalog

import (
	"errors"
	"fmt"
)

// Kind names one of the two option lists
type Kind string

const (
	KindBase    Kind = "base"
	KindTopping Kind = "topping"
)

// Option is a single immutable catalog entry
type Option struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Style string `json:"style"` // CSS color or gradient, only used for rendering
}

// Catalog is the ordered set of bases and toppings plus the entry each
// session starts with. Slice order is display order.
type Catalog struct {
	Bases          []Option `json:"bases"`
	Toppings       []Option `json:"toppings"`
	DefaultBase    string   `json:"default_base"`
	DefaultTopping string   `json:"default_topping"`
}

// NotFoundError is returned when an id is not part of an option list
type NotFoundError struct {
	Kind Kind
	ID   string
}

func (e *NotFoundError) Error() string {
	if e.Kind == "" {
		return fmt.Sprintf("catalog option %q not found", e.ID)
	}
	return fmt.Sprintf("%s option %q not found", e.Kind, e.ID)
}

// FindOption returns the option with the given id from list.
func FindOption(list []Option, id string) (Option, error) {
	for _, opt := range list {
		if opt.ID == id {
			return opt, nil
		}
	}
	return Option{}, &NotFoundError{ID: id}
}

// Options returns the list for the given kind, or nil for an unknown kind.
func (c Catalog) Options(kind Kind) []Option {
	switch kind {
	case KindBase:
		return c.Bases
	case KindTopping:
		return c.Toppings
	default:
		return nil
	}
}

// Find looks up id in the list for kind. The returned NotFoundError carries the kind.
func (c Catalog) Find(kind Kind, id string) (Option, error) {
	opt, err := FindOption(c.Options(kind), id)
	if err != nil {
		return Option{}, &NotFoundError{Kind: kind, ID: id}
	}
	return opt, nil
}

// Validate checks that both lists are non-empty, that ids are unique within
// each list and that the defaults point at real entries.
func (c Catalog) Validate() error {
	var errs []error
	for _, kind := range []Kind{KindBase, KindTopping} {
		list := c.Options(kind)
		if len(list) == 0 {
			errs = append(errs, fmt.Errorf("%s list is empty", kind))
			continue
		}
		seen := make(map[string]bool, len(list))
		for i, opt := range list {
			if opt.ID == "" {
				errs = append(errs, fmt.Errorf("%s option at position %d has an empty id", kind, i))
				continue
			}
			if seen[opt.ID] {
				errs = append(errs, fmt.Errorf("duplicate %s id %q", kind, opt.ID))
			}
			seen[opt.ID] = true
		}
	}
	if _, err := c.Find(KindBase, c.DefaultBase); err != nil {
		errs = append(errs, fmt.Errorf("default base: %w", err))
	}
	if _, err := c.Find(KindTopping, c.DefaultTopping); err != nil {
		errs = append(errs, fmt.Errorf("default topping: %w", err))
	}
	return errors.Join(errs...)
}
