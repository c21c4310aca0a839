package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"charter/infras/otel"
	"charter/internal/domains/admin/model/dto"
	"charter/internal/domains/admin/service"
	"charter/shared/constant"
	"charter/shared/validator"
	"charter/transport/http/response"
)

type Handler struct {
	service service.Admin
	otel    otel.Otel
}

func New(service service.Admin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// AuthRouter registers the unauthenticated auth endpoints.
func (handler *Handler) AuthRouter(r chi.Router) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", handler.Login)
		r.Post("/refresh", handler.RefreshToken)
		r.Post("/reset-request", handler.RequestReset)
		r.Post("/reset", handler.ResetPassword)
	})
}

// Router registers the authenticated profile endpoints.
func (handler *Handler) Router(r chi.Router) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/profile", handler.GetProfile)
		r.Patch("/profile", handler.UpdateProfile)
		r.Post("/password", handler.ChangePassword)
	})
}

// Login handles admin login
// @Summary Login an admin
// @Description Login an admin with the provided credentials.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse "Admin logged in successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/login [post]
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to login admin")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin logged in successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// RefreshToken handles token refresh
// @Summary Refresh admin token
// @Description Refresh admin token using the provided refresh token.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} dto.RefreshTokenResponse "Token refreshed successfully"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/refresh [post]
func (handler *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RefreshToken")
	defer scope.End()

	req := dto.RefreshTokenRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RefreshToken(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to refresh token")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Token refreshed successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// RequestReset starts the password reset flow
// @Summary Request a password reset
// @Description Issue a reset token and mail it to the admin.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.RequestResetRequest true "Reset Request"
// @Success 200 {object} response.Message "Reset email sent"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/reset-request [post]
func (handler *Handler) RequestReset(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestReset")
	defer scope.End()

	req := dto.RequestResetRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.RequestReset(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to request password reset")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reset email sent")

	response.WithMessage(w, http.StatusOK, "Reset email sent")
}

// ResetPassword completes the password reset flow
// @Summary Reset the password
// @Description Reset the admin password using a reset token.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Reset Password Request"
// @Success 200 {object} response.Message "Password reset successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auth/reset [post]
func (handler *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ResetPassword")
	defer scope.End()

	req := dto.ResetPasswordRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ResetPassword(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reset password")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Password reset successfully")

	response.WithMessage(w, http.StatusOK, "Password reset successfully")
}

// GetProfile returns the authenticated admin's profile
// @Summary Get the admin profile
// @Description Retrieve the authenticated admin's profile.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} dto.AdminResponse "Admin profile"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/profile [get]
func (handler *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProfile")
	defer scope.End()

	adminID, _ := ctx.Value(constant.ContextKeyAdminID).(string)

	res, err := handler.service.Get(ctx, adminID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get admin profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin profile retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// UpdateProfile patches the authenticated admin's profile
// @Summary Update the admin profile
// @Description Update the authenticated admin's username or email.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Profile Update Request"
// @Success 200 {object} dto.AdminResponse "Updated admin profile"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/profile [patch]
func (handler *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProfile")
	defer scope.End()

	adminID, _ := ctx.Value(constant.ContextKeyAdminID).(string)

	req := dto.UpdateProfileRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UpdateProfile(ctx, req, adminID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update admin profile")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Admin profile updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// ChangePassword changes the authenticated admin's password
// @Summary Change the admin password
// @Description Change the authenticated admin's password.
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Change Password Request"
// @Success 200 {object} response.Message "Password changed successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/password [post]
func (handler *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ChangePassword")
	defer scope.End()

	adminID, _ := ctx.Value(constant.ContextKeyAdminID).(string)

	req := dto.ChangePasswordRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.ChangePassword(ctx, req, adminID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to change password")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Password changed successfully")

	response.WithMessage(w, http.StatusOK, "Password changed successfully")
}
