package phases

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lifelog/internal/common"
	"github.com/dmitrijs2005/lifelog/internal/dbx"
	"github.com/dmitrijs2005/lifelog/internal/models"
)

const columns = `id, user_id, name, start_date, end_date, description`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, p *models.LifePhase) error {
	query := `
		INSERT INTO life_phases (id, user_id, name, start_date, end_date, description)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	if _, err := r.db.ExecContext(ctx, query, p.ID, p.UserID, p.Name, p.StartDate, p.EndDate, p.Description); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, p *models.LifePhase) error {
	query := `
		UPDATE life_phases SET name = $1, start_date = $2, end_date = $3, description = $4
		WHERE id = $5 AND user_id = $6
	`
	res, err := r.db.ExecContext(ctx, query, p.Name, p.StartDate, p.EndDate, p.Description, p.ID, p.UserID)
	return expectOne(res, err)
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM life_phases WHERE id = $1 AND user_id = $2`, id, userID)
	return expectOne(res, err)
}

func (r *PostgresRepository) Get(ctx context.Context, userID, id string) (*models.LifePhase, error) {
	query := `SELECT ` + columns + ` FROM life_phases WHERE id = $1 AND user_id = $2`
	p, err := scan(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return p, nil
}

// List returns the user's phases, most recently started first.
func (r *PostgresRepository) List(ctx context.Context, userID string) ([]*models.LifePhase, error) {
	query := `SELECT ` + columns + ` FROM life_phases WHERE user_id = $1 ORDER BY start_date DESC, name`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select phases: %w", err)
	}
	defer rows.Close()

	result := []*models.LifePhase{}
	for rows.Next() {
		p, err := scan(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scan(s dbx.Scanner) (*models.LifePhase, error) {
	var p models.LifePhase
	if err := s.Scan(&p.ID, &p.UserID, &p.Name, &p.StartDate, &p.EndDate, &p.Description); err != nil {
		return nil, err
	}
	return &p, nil
}

func expectOne(res sql.Result, err error) error {
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
