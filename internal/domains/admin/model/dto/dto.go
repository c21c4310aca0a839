package dto

import (
	"time"

	"charter/infras/jwt"
	"charter/internal/domains/admin/model"
	gDto "charter/shared/dto"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type UpdatePasswordRequest struct {
	Password string `db:"password" json:"password" validate:"required,min=8"`
}

type UpdateProfileRequest struct {
	Username string `db:"username" json:"username" validate:"omitempty,max=100"`
	Email    string `db:"email"    json:"email"    validate:"omitempty,email"`
}

type RequestResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token           string `json:"token"            validate:"required"`
	NewPassword     string `json:"new_password"     validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// SetResetTokenRequest carries the reset token columns for a patch update.
type SetResetTokenRequest struct {
	ResetPasswordToken   *string    `db:"reset_password_token"   json:"reset_password_token"`
	ResetPasswordExpires *time.Time `db:"reset_password_expires" json:"reset_password_expires"`
}

type AdminResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	gDto.Metadata
}

func (r *AdminResponse) FromModel(mod model.Admin) {
	r.ID = mod.ID
	r.Username = mod.Username
	r.Email = mod.Email
	r.Metadata.FromModel(mod.Metadata)
}
