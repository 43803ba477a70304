package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindOption(t *testing.T) {
	cat := Default()

	opt, err := FindOption(cat.Bases, "morango")
	require.NoError(t, err)
	assert.Equal(t, "Morango", opt.Name)
	assert.Equal(t, "#FFB6C1", opt.Style)

	_, err = FindOption(cat.Bases, "pistache")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, "pistache", nf.ID)
}

func TestFindByKind(t *testing.T) {
	cat := Default()

	opt, err := cat.Find(KindTopping, NoToppingID)
	require.NoError(t, err)
	assert.Equal(t, "Sem Granulado", opt.Name)

	_, err = cat.Find(KindTopping, "tradicional")
	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, KindTopping, nf.Kind)
	assert.Contains(t, err.Error(), "topping")

	assert.Nil(t, cat.Options(Kind("size")))
}

func TestDefaultCatalogIsValid(t *testing.T) {
	cat := Default()
	require.NoError(t, cat.Validate())
	assert.Len(t, cat.Bases, 5)
	assert.Len(t, cat.Toppings, 6)
	assert.Equal(t, "tradicional", cat.Bases[0].ID)
}

func TestDefaultReturnsFreshSlices(t *testing.T) {
	a := Default()
	a.Bases[0].Name = "changed"

	b := Default()
	assert.Equal(t, "Tradicional", b.Bases[0].Name)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(c *Catalog)
		wantErr string
	}{
		{
			name:    "empty bases",
			mutate:  func(c *Catalog) { c.Bases = nil },
			wantErr: "base list is empty",
		},
		{
			name:    "duplicate topping id",
			mutate:  func(c *Catalog) { c.Toppings = append(c.Toppings, Option{ID: "coco", Name: "Coco again"}) },
			wantErr: `duplicate topping id "coco"`,
		},
		{
			name:    "empty id",
			mutate:  func(c *Catalog) { c.Bases[2].ID = "" },
			wantErr: "empty id",
		},
		{
			name:    "unknown default base",
			mutate:  func(c *Catalog) { c.DefaultBase = "baunilha" },
			wantErr: "default base",
		},
		{
			name:    "unknown default topping",
			mutate:  func(c *Catalog) { c.DefaultTopping = "" },
			wantErr: "default topping",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			cat := Default()
			tt.mutate(&cat)

			err := cat.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
