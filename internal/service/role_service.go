package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"kronos/internal/cache"
	"kronos/internal/model"
	"kronos/internal/repository"
)

const roleCacheTTL = 5 * time.Minute

// RoleService resolves user roles with two deliberately different failure
// policies:
//
//   - Resolve is for display contexts and fails open to the least-privileged
//     role: a lookup error reads as "user".
//   - IsAdmin guards writes and fails closed: a lookup error reads as
//     non-admin and the operation is denied.
//
// Both must be preserved; neither call site may borrow the other policy.
type RoleService interface {
	Resolve(ctx context.Context, userID string) model.Role
	IsAdmin(ctx context.Context, userID string) bool
}

type roleService struct {
	profiles repository.ProfileRepository
	cache    *cache.Client
}

// NewRoleService creates a new role service.
func NewRoleService(profiles repository.ProfileRepository, cache *cache.Client) RoleService {
	return &roleService{
		profiles: profiles,
		cache:    cache,
	}
}

func roleCacheKey(userID string) string {
	return "role:" + userID
}

// lookup fetches the role for a user, consulting the cache first. Only
// successful lookups are cached.
func (s *roleService) lookup(ctx context.Context, userID string) (model.Role, error) {
	if data, _ := s.cache.Get(ctx, roleCacheKey(userID)); data != nil {
		return model.Role(data), nil
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return "", err
	}

	role, err := s.profiles.GetRole(ctx, id)
	if err != nil {
		return "", err
	}

	_ = s.cache.Set(ctx, roleCacheKey(userID), []byte(role), roleCacheTTL)
	return role, nil
}

// Resolve returns the user's role, defaulting to "user" when the profile is
// missing or the lookup fails.
func (s *roleService) Resolve(ctx context.Context, userID string) model.Role {
	role, err := s.lookup(ctx, userID)
	if err != nil || role == "" {
		return model.RoleUser
	}
	return role
}

// IsAdmin reports whether the user holds the admin role. Any lookup failure
// denies.
func (s *roleService) IsAdmin(ctx context.Context, userID string) bool {
	role, err := s.lookup(ctx, userID)
	if err != nil {
		return false
	}
	return role == model.RoleAdmin
}
