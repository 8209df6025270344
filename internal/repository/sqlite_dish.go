package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/evalonso/mealrota/internal/db"
	"github.com/evalonso/mealrota/internal/domain"
)

// SQLiteDishRepo implements DishRepo using a SQLite database. List-valued
// dish attributes (meal types, food groups, fixed days) are stored as JSON
// text columns; the frequency variant splits across freq_* columns.
type SQLiteDishRepo struct {
	db db.DBTX
}

// NewSQLiteDishRepo creates a new SQLiteDishRepo.
func NewSQLiteDishRepo(conn db.DBTX) *SQLiteDishRepo {
	return &SQLiteDishRepo{db: conn}
}

const dishColumns = `id, profile_id, name, description, notes, meal_types, food_groups,
	freq_mode, freq_days, freq_min_days, freq_max_days, created_at, updated_at`

func (r *SQLiteDishRepo) Create(ctx context.Context, d *domain.Dish) error {
	cols, err := encodeDishColumns(d)
	if err != nil {
		return err
	}
	query := `INSERT INTO dishes (` + dishColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		d.ID,
		d.ProfileID,
		d.Name,
		d.Description,
		d.Notes,
		cols.mealTypes,
		cols.foodGroups,
		string(d.Frequency.Mode),
		cols.freqDays,
		d.Frequency.MinDays,
		d.Frequency.MaxDays,
		d.CreatedAt.UTC().Format(timeLayout),
		d.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting dish: %w", err)
	}
	return nil
}

func (r *SQLiteDishRepo) GetByID(ctx context.Context, id string) (*domain.Dish, error) {
	query := `SELECT ` + dishColumns + ` FROM dishes WHERE id = ?`
	d, err := scanDishRow(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("dish: %w", ErrNotFound)
	}
	return d, err
}

func (r *SQLiteDishRepo) ListByProfile(ctx context.Context, profileID string) ([]*domain.Dish, error) {
	query := `SELECT ` + dishColumns + ` FROM dishes WHERE profile_id = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("listing dishes: %w", err)
	}
	defer rows.Close()

	var dishes []*domain.Dish
	for rows.Next() {
		d, err := scanDishRow(rows)
		if err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dishes: %w", err)
	}
	return dishes, nil
}

func (r *SQLiteDishRepo) Update(ctx context.Context, d *domain.Dish) error {
	cols, err := encodeDishColumns(d)
	if err != nil {
		return err
	}
	query := `UPDATE dishes SET name = ?, description = ?, notes = ?, meal_types = ?, food_groups = ?,
		freq_mode = ?, freq_days = ?, freq_min_days = ?, freq_max_days = ?, updated_at = ?
		WHERE id = ?`
	_, err = r.db.ExecContext(ctx, query,
		d.Name,
		d.Description,
		d.Notes,
		cols.mealTypes,
		cols.foodGroups,
		string(d.Frequency.Mode),
		cols.freqDays,
		d.Frequency.MinDays,
		d.Frequency.MaxDays,
		d.UpdatedAt.UTC().Format(timeLayout),
		d.ID,
	)
	if err != nil {
		return fmt.Errorf("updating dish: %w", err)
	}
	return nil
}

func (r *SQLiteDishRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM dishes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting dish: %w", err)
	}
	return nil
}

type dishJSONColumns struct {
	mealTypes  string
	foodGroups string
	freqDays   string
}

func encodeDishColumns(d *domain.Dish) (dishJSONColumns, error) {
	var cols dishJSONColumns
	var err error
	if cols.mealTypes, err = marshalJSONColumn(append([]domain.MealKey{}, d.MealTypes...)); err != nil {
		return cols, fmt.Errorf("encoding meal_types: %w", err)
	}
	if cols.foodGroups, err = marshalJSONColumn(domain.NormalizeFoodGroups(d.FoodGroups)); err != nil {
		return cols, fmt.Errorf("encoding food_groups: %w", err)
	}
	if cols.freqDays, err = marshalJSONColumn(append([]domain.WeekdayKey{}, d.Frequency.Days...)); err != nil {
		return cols, fmt.Errorf("encoding freq_days: %w", err)
	}
	return cols, nil
}

func scanDishRow(row rowScanner) (*domain.Dish, error) {
	var d domain.Dish
	var mealTypesRaw, foodGroupsRaw, freqDaysRaw string
	var freqMode, createdAtStr, updatedAtStr string

	err := row.Scan(
		&d.ID, &d.ProfileID, &d.Name, &d.Description, &d.Notes,
		&mealTypesRaw, &foodGroupsRaw,
		&freqMode, &freqDaysRaw, &d.Frequency.MinDays, &d.Frequency.MaxDays,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning dish: %w", err)
	}

	d.Frequency.Mode = domain.FrequencyMode(freqMode)
	if err := unmarshalJSONColumn(mealTypesRaw, &d.MealTypes); err != nil {
		return nil, fmt.Errorf("decoding meal_types: %w", err)
	}
	if err := unmarshalJSONColumn(foodGroupsRaw, &d.FoodGroups); err != nil {
		return nil, fmt.Errorf("decoding food_groups: %w", err)
	}
	if err := unmarshalJSONColumn(freqDaysRaw, &d.Frequency.Days); err != nil {
		return nil, fmt.Errorf("decoding freq_days: %w", err)
	}
	if d.CreatedAt, err = parseRFC3339(createdAtStr); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if d.UpdatedAt, err = parseRFC3339(updatedAtStr); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &d, nil
}
