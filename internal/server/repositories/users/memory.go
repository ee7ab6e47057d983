package users

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/useradmin/internal/common"
	"github.com/dmitrijs2005/useradmin/internal/server/models"
)

// MemoryRepository keeps accounts in process memory. Rows are copied on the
// way in and out so callers never share state with the store.
type MemoryRepository struct {
	mu   sync.RWMutex
	seq  int64
	byID map[string]*memRow
	now  func() time.Time
}

type memRow struct {
	seq  int64
	user models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: map[string]*memRow{}, now: time.Now}
}

func (r *MemoryRepository) Create(_ context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, row := range r.byID {
		if row.user.Username == user.Username {
			return nil, fmt.Errorf("username %q already taken: %w", user.Username, common.ErrorConflict)
		}
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	user.CreatedAt = r.now().UTC()

	r.seq++
	r.byID[user.ID] = &memRow{seq: r.seq, user: clone(user)}

	return user, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := clone(&row.user)
	return &u, nil
}

func (r *MemoryRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, row := range r.byID {
		if row.user.Username == username {
			u := clone(&row.user)
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (r *MemoryRepository) UpdateProfile(_ context.Context, id, name string, rankID *string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.byID[id]
	if !ok {
		return common.ErrorNotFound
	}
	row.user.Name = name
	row.user.RankID = nil
	if rankID != nil && *rankID != "" {
		v := *rankID
		row.user.RankID = &v
	}
	return nil
}

func (r *MemoryRepository) SetRoles(_ context.Context, userID string, roleIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.byID[userID]
	if !ok {
		return common.ErrorNotFound
	}
	row.user.RoleIDs = slices.Clone(roleIDs)
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *MemoryRepository) Count(context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID), nil
}

func (r *MemoryRepository) List(context.Context) ([]*models.User, error) {
	r.mu.RLock()
	rows := make([]memRow, 0, len(r.byID))
	for _, row := range r.byID {
		rows = append(rows, memRow{seq: row.seq, user: clone(&row.user)})
	}
	r.mu.RUnlock()

	slices.SortFunc(rows, func(a, b memRow) int {
		if c := b.user.CreatedAt.Compare(a.user.CreatedAt); c != 0 {
			return c
		}
		return int(b.seq - a.seq)
	})

	list := make([]*models.User, 0, len(rows))
	for i := range rows {
		list = append(list, &rows[i].user)
	}
	return list, nil
}

func clone(u *models.User) models.User {
	c := *u
	if u.RankID != nil {
		v := *u.RankID
		c.RankID = &v
	}
	c.RoleIDs = slices.Clone(u.RoleIDs)
	if c.RoleIDs == nil {
		c.RoleIDs = []string{}
	}
	return c
}
