package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/evalonso/mealrota/internal/db"
	"github.com/evalonso/mealrota/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo using a SQLite database.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

const profileColumns = `id, name, meals_per_day, heuristics, created_at, updated_at`

func (r *SQLiteProfileRepo) Create(ctx context.Context, p *domain.Profile) error {
	heuristics, err := marshalJSONColumn(append([]string{}, p.Heuristics...))
	if err != nil {
		return fmt.Errorf("encoding heuristics: %w", err)
	}
	query := `INSERT INTO profiles (` + profileColumns + `) VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		domain.ClampMealsPerDay(p.MealsPerDay),
		heuristics,
		p.CreatedAt.UTC().Format(timeLayout),
		p.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = ?`
	return r.scanProfile(r.db.QueryRowContext(ctx, query, id))
}

func (r *SQLiteProfileRepo) GetByName(ctx context.Context, name string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE name = ? COLLATE NOCASE ORDER BY created_at LIMIT 1`
	return r.scanProfile(r.db.QueryRowContext(ctx, query, name))
}

func (r *SQLiteProfileRepo) List(ctx context.Context) ([]*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.Profile
	for rows.Next() {
		p, err := r.scanProfileFromRows(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profiles: %w", err)
	}
	return profiles, nil
}

func (r *SQLiteProfileRepo) Update(ctx context.Context, p *domain.Profile) error {
	heuristics, err := marshalJSONColumn(append([]string{}, p.Heuristics...))
	if err != nil {
		return fmt.Errorf("encoding heuristics: %w", err)
	}
	query := `UPDATE profiles SET name = ?, meals_per_day = ?, heuristics = ?, updated_at = ? WHERE id = ?`
	_, err = r.db.ExecContext(ctx, query,
		p.Name,
		domain.ClampMealsPerDay(p.MealsPerDay),
		heuristics,
		p.UpdatedAt.UTC().Format(timeLayout),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating profile: %w", err)
	}
	return nil
}

func (r *SQLiteProfileRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM profiles WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *SQLiteProfileRepo) scanProfile(row *sql.Row) (*domain.Profile, error) {
	p, err := scanProfileRow(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("profile: %w", ErrNotFound)
	}
	return p, err
}

func (r *SQLiteProfileRepo) scanProfileFromRows(rows *sql.Rows) (*domain.Profile, error) {
	return scanProfileRow(rows)
}

func scanProfileRow(row rowScanner) (*domain.Profile, error) {
	var p domain.Profile
	var heuristicsRaw, createdAtStr, updatedAtStr string

	err := row.Scan(&p.ID, &p.Name, &p.MealsPerDay, &heuristicsRaw, &createdAtStr, &updatedAtStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning profile: %w", err)
	}

	if err := unmarshalJSONColumn(heuristicsRaw, &p.Heuristics); err != nil {
		return nil, fmt.Errorf("decoding heuristics: %w", err)
	}
	if p.CreatedAt, err = parseRFC3339(createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = parseRFC3339(updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}
