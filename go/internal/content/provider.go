package content

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/mcdev12/zodiarena/go/internal/models"
	"github.com/rs/zerolog/log"
)

// Provider supplies shuffled, de-duplicated subject draws for a chosen
// category from a static catalog.
type Provider struct {
	catalog map[models.Category][]models.Subject
	rng     *rand.Rand
}

// NewProvider creates a Provider over the given catalog with a
// time-seeded RNG.
func NewProvider(catalog map[models.Category][]models.Subject) *Provider {
	return NewProviderWithSeed(catalog, time.Now().UnixNano())
}

// NewProviderWithSeed creates a Provider with a fixed seed for
// deterministic draws.
func NewProviderWithSeed(catalog map[models.Category][]models.Subject, seed int64) *Provider {
	return &Provider{
		catalog: catalog,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Draw returns exactly count subjects for the category, uniformly sampled
// without replacement. If the category holds fewer than count entries the
// draw falls back to repeating subjects rather than failing; the catalog
// is author-controlled, so that path is defensive only.
func (p *Provider) Draw(category models.Category, count int) ([]models.Subject, error) {
	pool, ok := p.catalog[category]
	if !ok || len(pool) == 0 {
		return nil, fmt.Errorf("no subjects for category %q", category)
	}

	shuffled := make([]models.Subject, len(pool))
	copy(shuffled, pool)
	p.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if len(shuffled) >= count {
		return shuffled[:count], nil
	}

	log.Warn().
		Str("category", string(category)).
		Int("available", len(shuffled)).
		Int("requested", count).
		Msg("subject catalog shortage - draw will repeat subjects")

	drawn := make([]models.Subject, count)
	for i := range drawn {
		drawn[i] = shuffled[i%len(shuffled)]
	}
	return drawn, nil
}

// Categories returns the categories the catalog actually has subjects for.
func (p *Provider) Categories() []models.Category {
	var cats []models.Category
	for _, c := range models.Categories() {
		if len(p.catalog[c]) > 0 {
			cats = append(cats, c)
		}
	}
	return cats
}
