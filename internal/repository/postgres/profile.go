package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gopredict/internal/domain"
	"gopredict/internal/repository"
)

// ProfileRepository is a PostgreSQL implementation of
// repository.ProfileRepository.
type ProfileRepository struct {
	q Querier
}

// NewProfileRepository creates a new PostgreSQL profile repository.
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{q: db}
}

// Get retrieves the profile for a user.
func (r *ProfileRepository) Get(ctx context.Context, ownerID string) (*domain.Profile, error) {
	query := `
		SELECT owner_id, email, display_name, phone, location, updated_at
		FROM profiles WHERE owner_id = $1
	`

	var profile domain.Profile
	err := r.q.QueryRowContext(ctx, query, ownerID).Scan(
		&profile.OwnerID,
		&profile.Email,
		&profile.DisplayName,
		&profile.Phone,
		&profile.Location,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return &profile, nil
}

// Update applies a partial edit to the profile. Only the supplied fields
// change; COALESCE keeps the stored value for nil fields.
func (r *ProfileRepository) Update(ctx context.Context, ownerID string, update domain.ProfileUpdate) error {
	query := `
		UPDATE profiles
		SET display_name = COALESCE($1, display_name),
		    phone = COALESCE($2, phone),
		    location = COALESCE($3, location),
		    updated_at = NOW()
		WHERE owner_id = $4
	`

	result, err := r.q.ExecContext(ctx, query,
		nullableString(update.DisplayName),
		nullableString(update.Phone),
		nullableString(update.Location),
		ownerID,
	)
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

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// Ensure ProfileRepository implements repository.ProfileRepository.
var _ repository.ProfileRepository = (*ProfileRepository)(nil)
