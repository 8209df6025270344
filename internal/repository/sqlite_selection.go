package repository

import (
	"context"
	"fmt"

	"github.com/evalonso/mealrota/internal/db"
	"github.com/evalonso/mealrota/internal/domain"
)

// SQLiteSelectionRepo implements SelectionRepo using a SQLite database. A
// (profile, date, meal) slot records at most one dish; re-recording a slot
// replaces the earlier row.
type SQLiteSelectionRepo struct {
	db db.DBTX
}

// NewSQLiteSelectionRepo creates a new SQLiteSelectionRepo.
func NewSQLiteSelectionRepo(conn db.DBTX) *SQLiteSelectionRepo {
	return &SQLiteSelectionRepo{db: conn}
}

func (r *SQLiteSelectionRepo) Upsert(ctx context.Context, s *domain.Selection) error {
	query := `INSERT OR REPLACE INTO selections (profile_id, date, meal, dish_id, created_at)
		VALUES (?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ProfileID,
		s.Date,
		string(s.Meal),
		s.DishID,
		s.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("upserting selection: %w", err)
	}
	return nil
}

func (r *SQLiteSelectionRepo) Delete(ctx context.Context, profileID, date string, meal domain.MealKey) error {
	query := `DELETE FROM selections WHERE profile_id = ? AND date = ? AND meal = ?`
	if _, err := r.db.ExecContext(ctx, query, profileID, date, string(meal)); err != nil {
		return fmt.Errorf("deleting selection: %w", err)
	}
	return nil
}

// HistoryByProfile loads the profile's full selection history in the
// date → meal → dish shape the planner consumes.
func (r *SQLiteSelectionRepo) HistoryByProfile(ctx context.Context, profileID string) (domain.SelectionHistory, error) {
	query := `SELECT date, meal, dish_id FROM selections WHERE profile_id = ? ORDER BY date, meal`
	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("loading selection history: %w", err)
	}
	defer rows.Close()

	history := domain.SelectionHistory{}
	for rows.Next() {
		var date, meal, dishID string
		if err := rows.Scan(&date, &meal, &dishID); err != nil {
			return nil, fmt.Errorf("scanning selection: %w", err)
		}
		if history[date] == nil {
			history[date] = map[domain.MealKey]string{}
		}
		history[date][domain.MealKey(meal)] = dishID
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating selections: %w", err)
	}
	return history, nil
}

// ListRange lists selections whose date falls in [fromDate, toDate],
// inclusive on both ends.
func (r *SQLiteSelectionRepo) ListRange(ctx context.Context, profileID, fromDate, toDate string) ([]*domain.Selection, error) {
	query := `SELECT profile_id, date, meal, dish_id, created_at FROM selections
		WHERE profile_id = ? AND date >= ? AND date <= ? ORDER BY date, meal`
	rows, err := r.db.QueryContext(ctx, query, profileID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("listing selections: %w", err)
	}
	defer rows.Close()

	var selections []*domain.Selection
	for rows.Next() {
		var s domain.Selection
		var meal, createdAtStr string
		if err := rows.Scan(&s.ProfileID, &s.Date, &meal, &s.DishID, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning selection: %w", err)
		}
		s.Meal = domain.MealKey(meal)
		if s.CreatedAt, err = parseRFC3339(createdAtStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		selections = append(selections, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating selections: %w", err)
	}
	return selections, nil
}
