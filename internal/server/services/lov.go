package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/useradmin/internal/server/models"
	"github.com/dmitrijs2005/useradmin/internal/server/repositories/lov"
	"github.com/dmitrijs2005/useradmin/internal/server/repositories/repomanager"
)

// LovService serves the rank and role lists.
type LovService struct {
	repomanager repomanager.RepositoryManager
}

func NewLovService(m repomanager.RepositoryManager) *LovService {
	return &LovService{repomanager: m}
}

func (s *LovService) Ranks(ctx context.Context) ([]models.Lov, error) {
	return list(ctx, s.repomanager.Lovs(), models.LovRank)
}

func (s *LovService) Roles(ctx context.Context) ([]models.Lov, error) {
	return list(ctx, s.repomanager.Lovs(), models.LovRole)
}

func list(ctx context.Context, repo lov.Repository, kind models.LovKind) ([]models.Lov, error) {
	items, err := repo.List(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("error listing %s: %w", kind, err)
	}
	return items, nil
}

// catalog indexes both lists by id for validation and view assembly.
type catalog struct {
	ranks map[string]models.Lov
	roles map[string]models.Lov
}

func loadCatalog(ctx context.Context, repo lov.Repository) (*catalog, error) {
	ranks, err := list(ctx, repo, models.LovRank)
	if err != nil {
		return nil, err
	}
	roles, err := list(ctx, repo, models.LovRole)
	if err != nil {
		return nil, err
	}

	c := &catalog{ranks: make(map[string]models.Lov, len(ranks)), roles: make(map[string]models.Lov, len(roles))}
	for _, r := range ranks {
		c.ranks[r.ID] = r
	}
	for _, r := range roles {
		c.roles[r.ID] = r
	}
	return c, nil
}

// view resolves the user's LOV ids. Ids missing from the catalog are dropped.
func (c *catalog) view(u *models.User) *models.UserView {
	v := &models.UserView{
		UUID:        u.ID,
		Username:    u.Username,
		Name:        u.Name,
		Roles:       make([]models.Lov, 0, len(u.RoleIDs)),
		DateCreated: u.CreatedAt,
	}
	if u.RankID != nil {
		if r, ok := c.ranks[*u.RankID]; ok {
			v.Rank = &r
		}
	}
	for _, id := range u.RoleIDs {
		if r, ok := c.roles[id]; ok {
			v.Roles = append(v.Roles, r)
		}
	}
	return v
}
