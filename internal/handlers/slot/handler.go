package slot

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"wander/infras/otel"
	"wander/internal/domains/slot/model/dto"
	"wander/internal/domains/slot/service"
	"wander/shared/constant"
	"wander/shared/validator"
	"wander/transport/http/response"
)

type Handler struct {
	service service.Slot
	otel    otel.Otel
}

func New(service service.Slot, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/slots", func(routerGroup chi.Router) {
		routerGroup.Get("/{experienceId}/{date}", handler.GetAvailability)
		routerGroup.Post("/check", handler.CheckAvailability)
	})
}

// GetAvailability lists every time slot of the day with live counts.
// @Summary Get slot availability
// @Description Retrieve availability for all time slots of an experience on a given date.
// @Tags Slot
// @Accept json
// @Produce json
// @Param experienceId path string true "Experience ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[[]dto.SlotView] "Slot availability"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/slots/{experienceId}/{date} [get]
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	experienceID := chi.URLParam(r, constant.RequestParamExperienceID)
	date := chi.URLParam(r, constant.RequestParamDate)

	views, err := handler.service.Availability(ctx, experienceID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get slot availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Slot availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, views)
}

// CheckAvailability answers whether the requested seats fit without reserving.
// @Summary Check slot availability
// @Description Check whether a quantity of seats fits into a specific time slot.
// @Tags Slot
// @Accept json
// @Produce json
// @Param request body dto.CheckAvailabilityRequest true "Check Availability Request"
// @Success 200 {object} response.Data[dto.CheckAvailabilityResponse] "Availability result"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/slots/check [post]
func (handler *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CheckAvailability")
	defer scope.End()

	req := dto.CheckAvailabilityRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Check(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check slot availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Slot availability checked successfully")

	response.WithJSON(w, http.StatusOK, res)
}
