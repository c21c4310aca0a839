package template

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"charter/infras/otel"
	"charter/internal/domains/template/model"
	"charter/internal/domains/template/model/dto"
	"charter/internal/domains/template/service"
	"charter/shared/constant"
	gDto "charter/shared/dto"
	"charter/shared/validator"
	"charter/transport/http/response"
)

type Handler struct {
	service service.Template
	otel    otel.Otel
}

func New(service service.Template, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/templates", func(r chi.Router) {
		r.Post("/", handler.Create)
		r.Get("/", handler.GetTemplates)
		r.Get("/{id}", handler.GetTemplateByID)
		r.Patch("/{id}", handler.Update)
		r.Delete("/{id}", handler.Delete)
	})
}

// Create registers a notification template
// @Summary Create a template
// @Description Create a notification template for a lead status.
// @Tags Template
// @Accept json
// @Produce json
// @Param request body dto.CreateTemplateRequest true "Template Request"
// @Success 201 {object} dto.TemplateResponse "Template created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/templates [post]
func (handler *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Create")
	defer scope.End()

	admin, _ := ctx.Value(constant.ContextKeyAdminEmail).(string)

	req := dto.CreateTemplateRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req, admin)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create template")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Template created successfully")

	response.WithJSON(w, http.StatusCreated, res)
}

// GetTemplates lists notification templates
// @Summary List templates
// @Description Retrieve notification templates.
// @Tags Template
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param type query string false "Filter by template type"
// @Success 200 {object} dto.GetTemplatesResponse "List of templates"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/templates [get]
func (handler *Handler) GetTemplates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTemplates")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
	}

	if templateType := r.URL.Query().Get(model.FieldType); templateType != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldType,
			Operator: gDto.FilterOperatorEq,
			Value:    templateType,
			Table:    model.TableName,
		})
	}

	templates, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get templates")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Templates retrieved successfully")

	response.WithJSON(w, http.StatusOK, templates)
}

// GetTemplateByID retrieves a template by its ID
// @Summary Get a template by ID
// @Description Retrieve a notification template by its unique identifier.
// @Tags Template
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} dto.TemplateResponse "Template details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/templates/{id} [get]
func (handler *Handler) GetTemplateByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTemplateByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get template")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Template retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Update patches a template
// @Summary Update a template
// @Description Update the name, subject or body of a template.
// @Tags Template
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param request body dto.UpdateTemplateRequest true "Template Update Request"
// @Success 200 {object} response.Message "Template updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/templates/{id} [patch]
func (handler *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Update")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	admin, _ := ctx.Value(constant.ContextKeyAdminEmail).(string)

	req := dto.UpdateTemplateRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, id, req, admin); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update template")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Template updated successfully")

	response.WithMessage(w, http.StatusOK, "Template updated successfully")
}

// Delete removes a template
// @Summary Delete a template
// @Description Delete a notification template.
// @Tags Template
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} response.Message "Template deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/templates/{id} [delete]
func (handler *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Delete")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete template")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Template deleted successfully")

	response.WithMessage(w, http.StatusOK, "Template deleted successfully")
}
