package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vishxesh10/InsureMate-LIve/internal/domain/model"
	"github.com/vishxesh10/InsureMate-LIve/internal/domain/valueobject"
	pgutil "github.com/vishxesh10/InsureMate-LIve/pkg/postgres"
)

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	pgutil.Querier
	pgutil.Beginner
	pgutil.Pinger
}

// ResultRepository implements port.ResultRepository using PostgreSQL. Each
// call borrows a pooled connection for its own duration only.
type ResultRepository struct {
	db DB
}

// NewResultRepository creates a new PostgreSQL-backed result repository.
func NewResultRepository(db DB) *ResultRepository {
	return &ResultRepository{db: db}
}

const selectColumns = `
	SELECT id, age, weight, height, income_lpa, smoker, city, occupation,
		bmi, lifestyle_risk, age_group, city_tier, predicted_category, created_at
	FROM prediction_results
`

// Save inserts record and returns it with the generated id and timestamp.
func (r *ResultRepository) Save(ctx context.Context, record model.PredictionRecord) (model.PredictionRecord, error) {
	query := `
		INSERT INTO prediction_results (
			age, weight, height, income_lpa, smoker, city, occupation,
			bmi, lifestyle_risk, age_group, city_tier, predicted_category
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`

	saved := record
	err := pgutil.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query,
			record.Input.Age,
			record.Input.Weight,
			record.Input.Height,
			record.Input.IncomeLPA,
			record.Input.Smoker,
			record.Input.City,
			record.Input.Occupation.String(),
			record.Features.BMI,
			record.Features.LifestyleRisk.String(),
			record.Features.AgeGroup.String(),
			record.Features.CityTier.Int(),
			record.PredictedCategory,
		).Scan(&saved.ID, &saved.CreatedAt)
	})
	if err != nil {
		return model.PredictionRecord{}, &model.StorageError{Op: "save", Err: err}
	}

	return saved, nil
}

// ListAll returns every record ordered by id.
func (r *ResultRepository) ListAll(ctx context.Context) ([]model.PredictionRecord, error) {
	return r.list(ctx, "list_all", selectColumns+` ORDER BY id`)
}

// ListByCity returns records whose city matches exactly.
func (r *ResultRepository) ListByCity(ctx context.Context, city string) ([]model.PredictionRecord, error) {
	return r.list(ctx, "list_by_city", selectColumns+` WHERE city = $1 ORDER BY id`, city)
}

// ListByCategory returns records with the given predicted category.
func (r *ResultRepository) ListByCategory(ctx context.Context, category string) ([]model.PredictionRecord, error) {
	return r.list(ctx, "list_by_category", selectColumns+` WHERE predicted_category = $1 ORDER BY id`, category)
}

// Statistics counts records and categories and averages BMI. The average is
// nil on an empty table.
func (r *ResultRepository) Statistics(ctx context.Context) (model.Statistics, error) {
	query := `
		SELECT COUNT(*), COUNT(DISTINCT predicted_category), AVG(bmi)
		FROM prediction_results
	`

	var stats model.Statistics
	if err := r.db.QueryRow(ctx, query).Scan(
		&stats.TotalPredictions,
		&stats.UniqueCategories,
		&stats.AverageBMI,
	); err != nil {
		return model.Statistics{}, &model.StorageError{Op: "statistics", Err: err}
	}

	return stats, nil
}

// Ping checks database connectivity.
func (r *ResultRepository) Ping(ctx context.Context) error {
	return pgutil.HealthCheck(ctx, r.db)
}

func (r *ResultRepository) list(ctx context.Context, op, query string, args ...any) ([]model.PredictionRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, &model.StorageError{Op: op, Err: fmt.Errorf("failed to query results: %w", err)}
	}
	defer rows.Close()

	records := make([]model.PredictionRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, &model.StorageError{Op: op, Err: err}
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, &model.StorageError{Op: op, Err: fmt.Errorf("failed to iterate results: %w", err)}
	}

	return records, nil
}

func scanRecord(row pgx.Row) (model.PredictionRecord, error) {
	var (
		rec                               model.PredictionRecord
		occupation, lifestyleRisk, ageGrp string
		cityTier                          int
	)

	err := row.Scan(
		&rec.ID,
		&rec.Input.Age,
		&rec.Input.Weight,
		&rec.Input.Height,
		&rec.Input.IncomeLPA,
		&rec.Input.Smoker,
		&rec.Input.City,
		&occupation,
		&rec.Features.BMI,
		&lifestyleRisk,
		&ageGrp,
		&cityTier,
		&rec.PredictedCategory,
		&rec.CreatedAt,
	)
	if err != nil {
		return model.PredictionRecord{}, fmt.Errorf("failed to scan result: %w", err)
	}

	if rec.Input.Occupation, err = valueobject.OccupationFromString(occupation); err != nil {
		return model.PredictionRecord{}, fmt.Errorf("result %d: %w", rec.ID, err)
	}
	if rec.Features.LifestyleRisk, err = valueobject.LifestyleRiskFromString(lifestyleRisk); err != nil {
		return model.PredictionRecord{}, fmt.Errorf("result %d: %w", rec.ID, err)
	}
	if rec.Features.AgeGroup, err = valueobject.AgeGroupFromString(ageGrp); err != nil {
		return model.PredictionRecord{}, fmt.Errorf("result %d: %w", rec.ID, err)
	}
	if rec.Features.CityTier, err = valueobject.CityTierFromInt(cityTier); err != nil {
		return model.PredictionRecord{}, fmt.Errorf("result %d: %w", rec.ID, err)
	}

	return rec, nil
}
