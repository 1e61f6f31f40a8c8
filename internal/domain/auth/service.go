package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"casahub/internal/pkg/access"
	"casahub/internal/pkg/apperr"
)

// Service contains account and login business logic.
type Service struct {
	users UserRepository
	jwt   tokenIssuer
	log   *zap.Logger
}

func NewService(users UserRepository, jwt tokenIssuer, log *zap.Logger) *Service {
	return &Service{users: users, jwt: jwt, log: log}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Conflict("EMAIL_EXISTS", "User with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         req.Name,
		Role:         access.RoleGuest,
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.String("user_id", user.ID))
	return &TokenResponse{Token: token, User: user}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, apperr.Forbidden("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, apperr.Forbidden("INVALID_CREDENTIALS", "Invalid email or password")
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	s.log.Info("user logged in", zap.String("user_id", user.ID))
	return &TokenResponse{Token: token, User: user}, nil
}

func (s *Service) Me(ctx context.Context, caller access.Caller) (*User, error) {
	user, err := s.users.GetByID(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("USER_NOT_FOUND", "User not found")
	}
	return user, nil
}

func (s *Service) ChangePassword(ctx context.Context, caller access.Caller, req ChangePasswordRequest) error {
	user, err := s.users.GetByID(ctx, caller.ID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("USER_NOT_FOUND", "User not found")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)) != nil {
		return apperr.Forbidden("INVALID_CREDENTIALS", "Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return s.users.Update(ctx, user)
}

func (s *Service) UpdateProfile(ctx context.Context, caller access.Caller, req UpdateProfileRequest) (*User, error) {
	user, err := s.users.GetByID(ctx, caller.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("USER_NOT_FOUND", "User not found")
	}

	if req.Name != nil && *req.Name != "" {
		user.Name = *req.Name
	}
	if req.AvatarURL != nil {
		user.AvatarURL = req.AvatarURL
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetRole promotes or demotes a user. Admin only; the gate is enforced here
// as well as in routing.
func (s *Service) SetRole(ctx context.Context, caller access.Caller, userID string, role access.Role) (*User, error) {
	if !caller.IsAdmin() {
		return nil, apperr.Forbidden("FORBIDDEN", "Only admins can change roles")
	}
	if !role.Valid() {
		return nil, apperr.Validation(map[string]string{"role": "must be one of: ADMIN EDITOR GUEST"})
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("USER_NOT_FOUND", "User not found")
	}

	user.Role = role
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	s.log.Info("user role changed", zap.String("user_id", userID), zap.String("role", string(role)))
	return user, nil
}

// Exists reports whether a user id refers to an existing account. Used by
// other domains to validate assignment targets.
func (s *Service) Exists(ctx context.Context, id string) (bool, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// ApproverIDs returns the ids of every editor and admin, the audience for
// approval request notifications.
func (s *Service) ApproverIDs(ctx context.Context) ([]string, error) {
	users, err := s.users.ListByRoles(ctx, []access.Role{access.RoleAdmin, access.RoleEditor})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids, nil
}
