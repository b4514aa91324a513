package content

import (
	"testing"
	"time"

	"github.com/mcdev12/zodiarena/go/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawUniqueAndCategoryBound(t *testing.T) {
	p := NewProviderWithSeed(DefaultCatalog(), 1)

	for _, cat := range models.Categories() {
		drawn, err := p.Draw(cat, 5)
		require.NoError(t, err)
		require.Len(t, drawn, 5)

		seen := map[string]bool{}
		for _, s := range drawn {
			assert.Equal(t, cat, s.Category)
			assert.False(t, seen[s.Name], "duplicate subject %s in category %s", s.Name, cat)
			seen[s.Name] = true
		}
	}
}

func TestDrawShortageFallsBackToDuplicates(t *testing.T) {
	tiny := map[models.Category][]models.Subject{
		models.CategoryActors: {
			{Name: "Solo", Birthdate: time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC), Category: models.CategoryActors},
			{Name: "Duo", Birthdate: time.Date(1981, 2, 2, 0, 0, 0, 0, time.UTC), Category: models.CategoryActors},
		},
	}
	p := NewProviderWithSeed(tiny, 1)

	drawn, err := p.Draw(models.CategoryActors, 5)
	require.NoError(t, err)
	assert.Len(t, drawn, 5)
}

func TestDrawUnknownCategory(t *testing.T) {
	p := NewProviderWithSeed(DefaultCatalog(), 1)
	_, err := p.Draw(models.Category("chess"), 5)
	assert.Error(t, err)
}

func TestDrawIsShuffled(t *testing.T) {
	// Different seeds should not always produce the same ordering.
	a, err := NewProviderWithSeed(DefaultCatalog(), 1).Draw(models.CategoryActors, 5)
	require.NoError(t, err)
	b, err := NewProviderWithSeed(DefaultCatalog(), 2).Draw(models.CategoryActors, 5)
	require.NoError(t, err)

	same := true
	for i := range a {
		if a[i].Name != b[i].Name {
			same = false
			break
		}
	}
	assert.False(t, same, "two different seeds produced identical draws")
}

func TestCatalogDepth(t *testing.T) {
	catalog := DefaultCatalog()
	for _, cat := range models.Categories() {
		assert.GreaterOrEqualf(t, len(catalog[cat]), 5, "category %s needs at least one full game of subjects", cat)
	}
}
