package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"gopredict/internal/domain"
	"gopredict/internal/repository"
)

// TripRepository is a PostgreSQL implementation of repository.TripRepository.
// The travel_date_time and created_at columns are nullable: NULL round-trips
// to the zero time, the invalid-timestamp marker.
type TripRepository struct {
	q Querier
}

// NewTripRepository creates a new PostgreSQL trip repository.
func NewTripRepository(db *sql.DB) *TripRepository {
	return &TripRepository{q: db}
}

// NewTripRepositoryWithTx creates a trip repository using a transaction.
func NewTripRepositoryWithTx(tx *sql.Tx) *TripRepository {
	return &TripRepository{q: tx}
}

const tripColumns = `id, owner_id, created_at, travel_date_time,
		start_name, start_lat, start_lon, end_name, end_lat, end_lon,
		city, predicted_duration`

// Create persists a new trip.
func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	query := `
		INSERT INTO trips (` + tripColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.q.ExecContext(ctx, query,
		trip.ID,
		trip.OwnerID,
		nullableTime(trip.CreatedAt),
		nullableTime(trip.TravelDateTime),
		trip.StartLocation.Name,
		trip.StartLocation.Lat,
		trip.StartLocation.Lon,
		trip.EndLocation.Name,
		trip.EndLocation.Lat,
		trip.EndLocation.Lon,
		trip.City,
		trip.PredictedDuration,
	)

	return err
}

// GetByID retrieves a trip owned by the given user.
func (r *TripRepository) GetByID(ctx context.Context, ownerID, tripID string) (*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE id = $1 AND owner_id = $2`

	trip, err := scanTrip(r.q.QueryRowContext(ctx, query, tripID, ownerID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return trip, nil
}

// ListByOwner retrieves all trips for a user, newest created first.
func (r *TripRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Trip, error) {
	query := `SELECT ` + tripColumns + ` FROM trips WHERE owner_id = $1 ORDER BY created_at DESC NULLS LAST`

	rows, err := r.q.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*domain.Trip
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, trip)
	}

	return trips, rows.Err()
}

// Delete removes a trip owned by the given user.
func (r *TripRepository) Delete(ctx context.Context, ownerID, tripID string) error {
	result, err := r.q.ExecContext(ctx, `DELETE FROM trips WHERE id = $1 AND owner_id = $2`, tripID, ownerID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTrip(s scanner) (*domain.Trip, error) {
	var trip domain.Trip
	var createdAt, travelDateTime sql.NullTime

	if err := s.Scan(
		&trip.ID,
		&trip.OwnerID,
		&createdAt,
		&travelDateTime,
		&trip.StartLocation.Name,
		&trip.StartLocation.Lat,
		&trip.StartLocation.Lon,
		&trip.EndLocation.Name,
		&trip.EndLocation.Lat,
		&trip.EndLocation.Lon,
		&trip.City,
		&trip.PredictedDuration,
	); err != nil {
		return nil, err
	}

	if createdAt.Valid {
		trip.CreatedAt = createdAt.Time
	}
	if travelDateTime.Valid {
		trip.TravelDateTime = travelDateTime.Time
	}

	return &trip, nil
}

func nullableTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

// Ensure TripRepository implements repository.TripRepository.
var _ repository.TripRepository = (*TripRepository)(nil)
