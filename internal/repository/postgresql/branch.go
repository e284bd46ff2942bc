package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/master/branch"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type branchRepositoryImpl struct {
	db *database.DB
}

func NewBranchRepository(db *database.DB) branch.BranchRepository {
	return &branchRepositoryImpl{db: db}
}

// Create implements branch.BranchRepository.
func (r *branchRepositoryImpl) Create(ctx context.Context, b branch.Branch) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO branches (id, name, code, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, name, code
	`

	var result branch.Branch
	err := q.QueryRow(ctx, query, b.ID, b.Name, b.Code).Scan(&result.ID, &result.Name, &result.Code)
	if err != nil {
		if isUniqueViolation(err) {
			return branch.Branch{}, branch.ErrBranchCodeExists
		}
		return branch.Branch{}, fmt.Errorf("failed to create branch: %w", err)
	}

	return result, nil
}

// GetByID implements branch.BranchRepository.
func (r *branchRepositoryImpl) GetByID(ctx context.Context, id string) (branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT id, name, code FROM branches WHERE id = $1`

	var result branch.Branch
	err := q.QueryRow(ctx, query, id).Scan(&result.ID, &result.Name, &result.Code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return branch.Branch{}, branch.ErrBranchNotFound
		}
		return branch.Branch{}, fmt.Errorf("failed to get branch: %w", err)
	}

	return result, nil
}

// List implements branch.BranchRepository.
func (r *branchRepositoryImpl) List(ctx context.Context) ([]branch.Branch, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, code FROM branches ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}
	defer rows.Close()

	var branches []branch.Branch
	for rows.Next() {
		var b branch.Branch
		if err := rows.Scan(&b.ID, &b.Name, &b.Code); err != nil {
			return nil, fmt.Errorf("failed to scan branch: %w", err)
		}
		branches = append(branches, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return branches, nil
}

// ExistsByCode implements branch.BranchRepository.
func (r *branchRepositoryImpl) ExistsByCode(ctx context.Context, code string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM branches WHERE UPPER(code) = UPPER($1))`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check branch code: %w", err)
	}
	return exists, nil
}
