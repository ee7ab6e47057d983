package repomanager

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/useradmin/internal/server/repositories/lov"
	"github.com/dmitrijs2005/useradmin/internal/server/repositories/users"
)

// InMemoryRepositoryManager keeps everything in process memory. Units of
// work are serialized; a failing unit is not rolled back.
type InMemoryRepositoryManager struct {
	txMu  sync.Mutex
	users *users.MemoryRepository
	lovs  *lov.MemoryRepository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users: users.NewMemoryRepository(),
		lovs:  lov.NewMemoryRepository(nil),
	}
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Lovs() lov.Repository {
	return m.lovs
}

func (m *InMemoryRepositoryManager) InTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error {
	m.txMu.Lock()
	defer m.txMu.Unlock()
	return fn(ctx, m)
}

func (m *InMemoryRepositoryManager) RunMigrations(context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Close() error {
	return nil
}
