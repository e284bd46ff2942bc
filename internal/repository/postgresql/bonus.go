package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/nomina-backend-go/internal/domain/bonus"
	"github.com/cmlabs-hris/nomina-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type templateRepositoryImpl struct {
	db *database.DB
}

func NewTemplateRepository(db *database.DB) bonus.TemplateRepository {
	return &templateRepositoryImpl{db: db}
}

const templateColumns = `id, name, kind, value, description, created_at`

func scanTemplate(row pgx.Row) (bonus.Template, error) {
	var t bonus.Template
	var kind string
	err := row.Scan(&t.ID, &t.Name, &kind, &t.Value, &t.Description, &t.CreatedAt)
	t.Kind = bonus.CalculationKind(kind)
	return t, err
}

// List implements bonus.TemplateRepository.
func (r *templateRepositoryImpl) List(ctx context.Context) ([]bonus.Template, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT `+templateColumns+` FROM bonus_templates ORDER BY created_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonus templates: %w", err)
	}
	defer rows.Close()

	var templates []bonus.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bonus template: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return templates, nil
}

// GetByID implements bonus.TemplateRepository.
func (r *templateRepositoryImpl) GetByID(ctx context.Context, id string) (bonus.Template, error) {
	q := GetQuerier(ctx, r.db)

	t, err := scanTemplate(q.QueryRow(ctx, `SELECT `+templateColumns+` FROM bonus_templates WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return bonus.Template{}, bonus.ErrTemplateNotFound
		}
		return bonus.Template{}, fmt.Errorf("failed to get bonus template: %w", err)
	}
	return t, nil
}

// Create implements bonus.TemplateRepository.
func (r *templateRepositoryImpl) Create(ctx context.Context, t bonus.Template) (bonus.Template, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bonus_templates (` + templateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + templateColumns

	created, err := scanTemplate(q.QueryRow(ctx, query, t.ID, t.Name, string(t.Kind), t.Value, t.Description, t.CreatedAt))
	if err != nil {
		if isUniqueViolation(err) {
			return bonus.Template{}, bonus.ErrTemplateNameExists
		}
		return bonus.Template{}, fmt.Errorf("failed to create bonus template: %w", err)
	}
	return created, nil
}

// ExistsByName implements bonus.TemplateRepository.
func (r *templateRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM bonus_templates WHERE LOWER(name) = LOWER($1))`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check bonus template name: %w", err)
	}
	return exists, nil
}
