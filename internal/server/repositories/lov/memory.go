package lov

import (
	"context"
	"slices"

	"github.com/dmitrijs2005/useradmin/internal/server/models"
)

// MemoryRepository serves a fixed set of lists.
type MemoryRepository struct {
	items map[models.LovKind][]models.Lov
}

// NewMemoryRepository serves items, or Seed when items is nil.
func NewMemoryRepository(items map[models.LovKind][]models.Lov) *MemoryRepository {
	if items == nil {
		items = Seed
	}
	return &MemoryRepository{items: items}
}

func (r *MemoryRepository) List(_ context.Context, kind models.LovKind) ([]models.Lov, error) {
	items := slices.Clone(r.items[kind])
	if items == nil {
		items = []models.Lov{}
	}
	return items, nil
}
