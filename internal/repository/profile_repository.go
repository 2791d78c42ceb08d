package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kronos/internal/model"
)

// ProfileRepository defines role lookup and persistence. It is consumed
// read-only by authorization checks; writes happen only at signup and seed.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	GetRole(ctx context.Context, userID uuid.UUID) (model.Role, error)
	Upsert(ctx context.Context, profile *model.Profile) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Create inserts a new profile record.
func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// GetRole returns the role for a user. Returns gorm.ErrRecordNotFound when
// the user has no profile row; callers decide the fail-safe policy.
func (r *profileRepository) GetRole(ctx context.Context, userID uuid.UUID) (model.Role, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return "", err
	}
	return profile.Role, nil
}

// Upsert creates the profile or updates its role when the row exists.
func (r *profileRepository) Upsert(ctx context.Context, profile *model.Profile) error {
	var existing model.Profile
	err := r.db.WithContext(ctx).Where("user_id = ?", profile.UserID).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		return r.db.WithContext(ctx).Create(profile).Error
	}
	if err != nil {
		return err
	}
	existing.Role = profile.Role
	return r.db.WithContext(ctx).Save(&existing).Error
}
