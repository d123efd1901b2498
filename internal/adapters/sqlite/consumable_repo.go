package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/example/facscrub/internal/ports/secondary"
)

// deleteChunkSize bounds the number of placeholders per DELETE ... IN
// statement, staying well under SQLite's variable limit.
const deleteChunkSize = 500

// ConsumableRepository implements secondary.ConsumableRepository with SQLite.
type ConsumableRepository struct {
	db *sql.DB
}

// NewConsumableRepository creates a new SQLite consumable repository.
func NewConsumableRepository(db *sql.DB) *ConsumableRepository {
	return &ConsumableRepository{db: db}
}

const consumableSelectCols = "usage_id, usage_date, location_id, resource_type, quantity_used, total_cost"

// scanConsumable scans a consumable usage row into a ConsumableRecord.
func scanConsumable(scanner interface {
	Scan(dest ...any) error
}) (*secondary.ConsumableRecord, error) {
	record := &secondary.ConsumableRecord{}
	err := scanner.Scan(
		&record.UsageID, &record.UsageDate, &record.LocationID,
		&record.ResourceType, &record.QuantityUsed, &record.TotalCost,
	)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// CanonicalizeResourceTypes rewrites resource_type to its upper-cased,
// trimmed form. Runs before duplicate detection so key comparison sees
// canonical values.
func (r *ConsumableRepository) CanonicalizeResourceTypes(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE consumables SET resource_type = UPPER(TRIM(resource_type)) WHERE resource_type <> UPPER(TRIM(resource_type))",
	)
	if err != nil {
		return 0, fmt.Errorf("failed to canonicalize resource types: %w", err)
	}
	return result.RowsAffected()
}

// DeleteNonPositive removes rows whose quantity or cost is not strictly
// positive. Destructive and irreversible.
func (r *ConsumableRepository) DeleteNonPositive(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM consumables WHERE quantity_used <= 0 OR total_cost <= 0",
	)
	if err != nil {
		return 0, fmt.Errorf("failed to delete non-positive usage rows: %w", err)
	}
	return result.RowsAffected()
}

// ListUsageKeys returns the natural-key projection of every row, ordered
// by usage_id.
func (r *ConsumableRepository) ListUsageKeys(ctx context.Context) ([]*secondary.ConsumableRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT usage_id, usage_date, location_id, resource_type FROM consumables ORDER BY usage_id ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list usage keys: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ConsumableRecord
	for rows.Next() {
		record := &secondary.ConsumableRecord{}
		if err := rows.Scan(&record.UsageID, &record.UsageDate, &record.LocationID, &record.ResourceType); err != nil {
			return nil, fmt.Errorf("failed to scan usage key: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// DeleteByUsageIDs removes the given rows, chunking the IN list to stay
// under the placeholder limit.
func (r *ConsumableRepository) DeleteByUsageIDs(ctx context.Context, ids []int64) (int64, error) {
	var deleted int64
	for start := 0; start < len(ids); start += deleteChunkSize {
		end := start + deleteChunkSize
		if end > len(ids) {
			end = len(ids)
		}
		chunk := ids[start:end]

		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(chunk)), ",")
		args := make([]any, len(chunk))
		for i, id := range chunk {
			args[i] = id
		}

		result, err := r.db.ExecContext(ctx,
			"DELETE FROM consumables WHERE usage_id IN ("+placeholders+")", args...,
		)
		if err != nil {
			return deleted, fmt.Errorf("failed to delete usage rows by id: %w", err)
		}

		affected, _ := result.RowsAffected()
		deleted += affected
	}

	return deleted, nil
}

// List retrieves all consumable usage rows ordered by id.
func (r *ConsumableRepository) List(ctx context.Context) ([]*secondary.ConsumableRecord, error) {
	return r.query(ctx, "SELECT "+consumableSelectCols+" FROM consumables ORDER BY usage_id ASC")
}

// Sample retrieves the first limit consumable usage rows.
func (r *ConsumableRepository) Sample(ctx context.Context, limit int) ([]*secondary.ConsumableRecord, error) {
	return r.query(ctx, "SELECT "+consumableSelectCols+" FROM consumables ORDER BY usage_id ASC LIMIT ?", limit)
}

// Count returns the number of consumable usage rows.
func (r *ConsumableRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM consumables").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count consumables: %w", err)
	}
	return count, nil
}

func (r *ConsumableRepository) query(ctx context.Context, query string, args ...any) ([]*secondary.ConsumableRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list consumables: %w", err)
	}
	defer rows.Close()

	var records []*secondary.ConsumableRecord
	for rows.Next() {
		record, err := scanConsumable(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan consumable: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// Ensure ConsumableRepository implements the interface
var _ secondary.ConsumableRepository = (*ConsumableRepository)(nil)
