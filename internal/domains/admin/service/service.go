package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"charter/config"
	"charter/infras/jwt"
	"charter/infras/otel"
	"charter/internal/domains/admin/model"
	"charter/internal/domains/admin/model/dto"
	"charter/internal/domains/admin/repository"
	"charter/internal/notification"
	"charter/shared"
	"charter/shared/constant"
	gDto "charter/shared/dto"
	"charter/shared/failure"
	"charter/shared/password"
	"charter/shared/timezone"
)

const resetTokenTTL = time.Hour

type Admin interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, adminID string) error
	Get(ctx context.Context, adminID string) (dto.AdminResponse, error)
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest, adminID string) (dto.AdminResponse, error)
	RequestReset(ctx context.Context, req dto.RequestResetRequest) error
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error
}

type serviceImpl struct {
	repo       repository.Admin
	cfg        *config.Config
	otel       otel.Otel
	jwtService jwt.JWT
	email      notification.Sink
}

func New(repo repository.Admin, cfg *config.Config, otel otel.Otel, jwt jwt.JWT, email notification.Sink) Admin {
	return &serviceImpl{
		repo:       repo,
		cfg:        cfg,
		otel:       otel,
		jwtService: jwt,
		email:      email,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, err := s.repo.Get(ctx, emailFilter(req.Email))
	if err != nil || admin.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.BadRequestFromString("invalid email or password") //nolint:wrapcheck
	}

	if err = password.Verify(req.Password, admin.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid email or password") //nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(admin.ID, admin.Email, constant.RoleAdmin)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") //nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, adminID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.NewPassword != req.ConfirmPassword {
		return failure.BadRequestFromString("password confirmation does not match") //nolint:wrapcheck
	}

	admin, err := s.repo.Get(ctx, shared.FilterByID(adminID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == constant.Empty {
		return failure.NotFound("admin not found") //nolint:wrapcheck
	}

	if err = password.Verify(req.CurrentPassword, admin.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatedFields := shared.TransformFields(dto.UpdatePasswordRequest{Password: hashedPassword}, admin.Email)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(adminID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update password")

		return fmt.Errorf("failed to update password: %w", err)
	}

	return nil
}

func (s *serviceImpl) Get(ctx context.Context, adminID string) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, err := s.repo.Get(ctx, shared.FilterByID(adminID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == constant.Empty {
		return res, failure.NotFound("admin not found") //nolint:wrapcheck
	}

	res.FromModel(admin)

	return res, nil
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest, adminID string) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProfile")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, err := s.repo.Get(ctx, shared.FilterByID(adminID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == constant.Empty {
		return res, failure.NotFound("admin not found") //nolint:wrapcheck
	}

	if req.Email != constant.Empty && req.Email != admin.Email {
		taken, existErr := s.repo.Exist(ctx, emailFilter(req.Email))
		if existErr != nil {
			log.Error().Err(existErr).Msg("failed to check if email is taken")

			return res, fmt.Errorf("failed to check if email is taken: %w", existErr)
		}

		if taken {
			return res, failure.Conflict("email already used by another admin") //nolint:wrapcheck
		}
	}

	updatedFields := shared.TransformFields(req, admin.Email)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(adminID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update admin profile")

		return res, fmt.Errorf("failed to update admin profile: %w", err)
	}

	admin, err = s.repo.Get(ctx, shared.FilterByID(adminID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to reload admin")

		return res, fmt.Errorf("failed to reload admin: %w", err)
	}

	res.FromModel(admin)

	return res, nil
}

// RequestReset issues a one-hour reset token and mails it to the admin.
func (s *serviceImpl) RequestReset(ctx context.Context, req dto.RequestResetRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RequestReset")
	defer scope.End()
	defer scope.TraceIfError(err)

	admin, err := s.repo.Get(ctx, emailFilter(req.Email))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == constant.Empty {
		return failure.NotFound("admin not found") //nolint:wrapcheck
	}

	token := uuid.NewString()
	expires := timezone.Now().Add(resetTokenTTL)

	updatedFields := shared.TransformFields(dto.SetResetTokenRequest{
		ResetPasswordToken:   &token,
		ResetPasswordExpires: &expires,
	}, admin.Email)

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(admin.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to store reset token")

		return fmt.Errorf("failed to store reset token: %w", err)
	}

	err = s.email.Send(ctx, notification.Message{
		Channel:     notification.ChannelEmail,
		Destination: admin.Email,
		Subject:     "Password reset",
		Body:        fmt.Sprintf("A password reset was requested for your account.<br>Reset token: %s<br>The token expires in one hour.", token),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to send reset email")

		return fmt.Errorf("failed to send reset email: %w", err)
	}

	return nil
}

// ResetPassword consumes a reset token. The token is single-use: both reset
// columns are cleared in the same update that writes the new hash.
func (s *serviceImpl) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResetPassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.NewPassword != req.ConfirmPassword {
		return failure.BadRequestFromString("password confirmation does not match") //nolint:wrapcheck
	}

	admin, err := s.repo.Get(ctx, tokenFilter(req.Token))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin by reset token")

		return fmt.Errorf("failed to get admin by reset token: %w", err)
	}

	if admin.ID == constant.Empty {
		return failure.BadRequestFromString("invalid or expired reset token") //nolint:wrapcheck
	}

	if admin.ResetPasswordExpires == nil || timezone.Now().After(*admin.ResetPasswordExpires) {
		return failure.BadRequestFromString("invalid or expired reset token") //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatedFields := map[string]any{
		model.FieldPassword:             hashedPassword,
		model.FieldResetPasswordToken:   nil,
		model.FieldResetPasswordExpires: nil,
		constant.FieldModifiedAt:        timezone.Now(),
		constant.FieldModifiedBy:        admin.Email,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(admin.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to reset password")

		return fmt.Errorf("failed to reset password: %w", err)
	}

	return nil
}

func emailFilter(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    email,
				Table:    model.TableName,
			},
		},
	}
}

func tokenFilter(token string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldResetPasswordToken,
				Operator: gDto.FilterOperatorEq,
				Value:    token,
				Table:    model.TableName,
			},
		},
	}
}
