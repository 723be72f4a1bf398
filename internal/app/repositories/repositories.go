package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Querier is the query surface the repositories run on. Both *pgxpool.Pool
// and pgx.Tx satisfy it, so a repository works the same inside and outside a
// transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repositories bundles the pool-backed repositories for dependency injection.
// The file repository is not listed: file metadata is only written inside the
// roster store's transaction.
type Repositories struct {
	StaffRepository   *StaffRepository
	StudentRepository *StudentRepository
}

// NewRepositories creates all repositories over a shared pool.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StaffRepository:   NewStaffRepository(db),
		StudentRepository: NewStudentRepository(db),
	}
}
