package trip

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"charter/infras/otel"
	"charter/internal/domains/trip/model/dto"
	"charter/internal/domains/trip/service"
	"charter/shared/constant"
	"charter/shared/validator"
	"charter/transport/http/response"
)

type Handler struct {
	service service.Trip
	otel    otel.Otel
}

func New(service service.Trip, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(r chi.Router) {
	r.Route("/trips", func(r chi.Router) {
		r.Post("/", handler.Submit)
	})
}

// Submit handles a customer trip quote submission
// @Summary Submit a trip quote
// @Description Submit a charter trip quote with stops, timing and contact details.
// @Tags Trip
// @Accept json
// @Produce json
// @Param request body dto.CreateTripRequest true "Trip Quote Request"
// @Success 201 {object} dto.CreateTripResponse "Trip quote submitted successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trips [post]
func (handler *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Submit")
	defer scope.End()

	req := dto.CreateTripRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Submit(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to submit trip quote")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Trip quote submitted successfully")

	response.WithJSON(w, http.StatusCreated, res)
}
