// Package repomanager wires the repositories to a storage backend and runs
// its migrations.
package repomanager

import (
	"context"

	"github.com/dmitrijs2005/useradmin/internal/server/repositories/lov"
	"github.com/dmitrijs2005/useradmin/internal/server/repositories/users"
)

// Repositories is the set of stores a unit of work can touch.
type Repositories interface {
	Users() users.Repository
	Lovs() lov.Repository
}

// RepositoryManager vends repositories bound to the backing store, either
// directly or inside a transaction.
type RepositoryManager interface {
	Repositories
	RunMigrations(ctx context.Context) error
	// InTx runs fn with repositories that commit together when fn returns nil.
	InTx(ctx context.Context, fn func(ctx context.Context, r Repositories) error) error
	Close() error
}
