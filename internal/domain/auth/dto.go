package auth

// RegisterRequest creates a new account. Role defaults to GUEST; only an
// existing admin can promote users afterwards.
type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}

type UpdateProfileRequest struct {
	Name      *string `json:"name,omitempty"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

type SetRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=ADMIN EDITOR GUEST"`
}

// TokenResponse is the login/register payload.
type TokenResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
