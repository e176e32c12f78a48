// Package seed populates an empty catalog store from the static
// category datasets on first boot.
package seed

import (
	"fmt"
	"log"
	"strconv"

	"restoran/internal/models"
	"restoran/internal/repositories"
)

// Loader seeds the catalog store from the fixed datasets.
type Loader struct {
	repo     repositories.ProductRepository
	datasets []Dataset
}

// NewLoader creates a Loader over the given repository, using the
// built-in datasets.
func NewLoader(repo repositories.ProductRepository) *Loader {
	return &Loader{
		repo:     repo,
		datasets: Datasets(),
	}
}

// EnsureSeeded inserts all dataset items into the store if and only if
// the store is currently empty. It is safe to call more than once: a
// non-empty store is always a no-op, so a successful seed never runs
// twice.
func (l *Loader) EnsureSeeded() error {
	count, err := l.repo.Count()
	if err != nil {
		return fmt.Errorf("failed to check catalog size before seeding: %w", err)
	}
	if count > 0 {
		return nil
	}

	products := make([]models.Product, 0)
	for _, ds := range l.datasets {
		for _, item := range ds.Items {
			price, err := strconv.ParseFloat(item.Price, 64)
			if err != nil {
				// A malformed dataset price is a data bug, not a reason to
				// abort first boot. Seed the item at zero and move on.
				log.Printf("seed: invalid price %q for %q, defaulting to 0: %v", item.Price, item.Name, err)
				price = 0
			}
			products = append(products, models.Product{
				Name:     item.Name,
				Price:    models.Price(price),
				Img:      item.Img,
				Category: models.CategoryKey(ds.Category),
			})
		}
	}

	if err := l.repo.CreateBatch(products); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	log.Printf("seed: catalog seeded with %d products across %d categories", len(products), len(l.datasets))
	return nil
}
