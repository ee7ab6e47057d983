// Package lov serves the rank and role value lists.
package lov

import (
	"context"

	"github.com/dmitrijs2005/useradmin/internal/server/models"
)

type Repository interface {
	// List returns the entries of one kind in display order.
	List(ctx context.Context, kind models.LovKind) ([]models.Lov, error)
}

// Seed mirrors the rows inserted by the lov migration, in display order.
var Seed = map[models.LovKind][]models.Lov{
	models.LovRank: {
		{ID: "6f1d3c2a-0b1e-4c5d-8a01-000000000001", Code: "PVT", Name: "Private"},
		{ID: "6f1d3c2a-0b1e-4c5d-8a01-000000000002", Code: "SGT", Name: "Sergeant"},
		{ID: "6f1d3c2a-0b1e-4c5d-8a01-000000000003", Code: "LT", Name: "Lieutenant"},
		{ID: "6f1d3c2a-0b1e-4c5d-8a01-000000000004", Code: "CPT", Name: "Captain"},
		{ID: "6f1d3c2a-0b1e-4c5d-8a01-000000000005", Code: "MAJ", Name: "Major"},
		{ID: "6f1d3c2a-0b1e-4c5d-8a01-000000000006", Code: "COL", Name: "Colonel"},
	},
	models.LovRole: {
		{ID: "6f1d3c2a-0b1e-4c5d-8a02-000000000001", Code: "ADMIN", Name: "Administrator"},
		{ID: "6f1d3c2a-0b1e-4c5d-8a02-000000000002", Code: "OPS", Name: "Operations"},
		{ID: "6f1d3c2a-0b1e-4c5d-8a02-000000000003", Code: "AUDIT", Name: "Auditor"},
		{ID: "6f1d3c2a-0b1e-4c5d-8a02-000000000004", Code: "VIEWER", Name: "Viewer"},
	},
}
