package lead

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"charter/infras/otel"
	leadDto "charter/internal/domains/lead/model/dto"
	leadService "charter/internal/domains/lead/service"
	tripModel "charter/internal/domains/trip/model"
	tripService "charter/internal/domains/trip/service"
	"charter/shared/constant"
	gDto "charter/shared/dto"
	"charter/shared/validator"
	"charter/transport/http/response"
)

type Handler struct {
	tripService tripService.Trip
	leadService leadService.Lead
	otel        otel.Otel
}

func New(tripService tripService.Trip, leadService leadService.Lead, otel otel.Otel) Handler {
	return Handler{
		tripService: tripService,
		leadService: leadService,
		otel:        otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/leads", func(r chi.Router) {
		r.Get("/", handler.GetLeads)
		r.Get("/archived", handler.GetArchivedLeads)
		r.Get("/{id}", handler.GetLeadByID)
		r.Post("/{id}/status", handler.UpdateStatus)
		r.Delete("/{id}", handler.SoftDelete)
		r.Post("/{id}/restore", handler.Restore)
	})
}

// GetLeads retrieves active leads with their aggregated details
// @Summary List active leads
// @Description Retrieve active leads joined with stops, timing and contact details.
// @Tags Lead
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by lead status"
// @Success 200 {object} dto.GetLeadsResponse "List of leads"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/leads [get]
func (handler *Handler) GetLeads(w http.ResponseWriter, r *http.Request) {
	handler.getLeads(w, r, false, "GetLeads")
}

// GetArchivedLeads retrieves soft-deleted leads
// @Summary List archived leads
// @Description Retrieve soft-deleted leads joined with stops, timing and contact details.
// @Tags Lead
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} dto.GetLeadsResponse "List of archived leads"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/leads/archived [get]
func (handler *Handler) GetArchivedLeads(w http.ResponseWriter, r *http.Request) {
	handler.getLeads(w, r, true, "GetArchivedLeads")
}

func (handler *Handler) getLeads(w http.ResponseWriter, r *http.Request, archived bool, operation string) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+operation)
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    tripModel.FieldIsDeleted,
				Operator: gDto.FilterOperatorEq,
				Value:    archived,
				Table:    tripModel.TableName,
			},
		},
	}

	if status := r.URL.Query().Get(tripModel.FieldStatus); status != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    tripModel.FieldStatus,
			ArgName:  "status_filter",
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    tripModel.TableName,
		})
	}

	leads, err := handler.tripService.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get leads")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Leads retrieved successfully")

	response.WithJSON(w, http.StatusOK, leads)
}

// GetLeadByID retrieves a single lead with its aggregated details
// @Summary Get a lead by ID
// @Description Retrieve a lead joined with stops, timing and contact details.
// @Tags Lead
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} dto.DetailedTripResponse "Lead details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/leads/{id} [get]
func (handler *Handler) GetLeadByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLeadByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	lead, err := handler.tripService.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get lead")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Lead retrieved successfully")

	response.WithJSON(w, http.StatusOK, lead)
}

// UpdateStatus applies an admin decision to a pending lead
// @Summary Decide a lead
// @Description Accept or reject a pending lead and notify the customer.
// @Tags Lead
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body dto.UpdateStatusRequest true "Status Update Request"
// @Success 200 {object} dto.TransitionResult "Lead status updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/leads/{id}/status [post]
func (handler *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	admin, _ := ctx.Value(constant.ContextKeyAdminEmail).(string)

	req := leadDto.UpdateStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.leadService.Transition(ctx, id, req.Status, admin)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update lead status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Lead status updated successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// SoftDelete hides a lead from active listings
// @Summary Soft delete a lead
// @Description Mark a lead deleted without destroying the record.
// @Tags Lead
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} response.Message "Lead deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/leads/{id} [delete]
func (handler *Handler) SoftDelete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SoftDelete")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	admin, _ := ctx.Value(constant.ContextKeyAdminEmail).(string)

	if err := handler.leadService.SoftDelete(ctx, id, admin); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete lead")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Lead deleted successfully")

	response.WithMessage(w, http.StatusOK, "Lead deleted successfully")
}

// Restore brings a soft-deleted lead back as pending
// @Summary Restore a lead
// @Description Restore a soft-deleted lead to the pending state.
// @Tags Lead
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} response.Message "Lead restored successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/leads/{id}/restore [post]
func (handler *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Restore")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	admin, _ := ctx.Value(constant.ContextKeyAdminEmail).(string)

	if err := handler.leadService.Restore(ctx, id, admin); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to restore lead")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Lead restored successfully")

	response.WithMessage(w, http.StatusOK, "Lead restored successfully")
}
