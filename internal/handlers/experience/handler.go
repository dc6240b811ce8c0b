package experience

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"wander/infras/otel"
	"wander/internal/domains/experience/model"
	"wander/internal/domains/experience/model/dto"
	"wander/internal/domains/experience/service"
	"wander/shared/constant"
	"wander/shared/validator"
	"wander/transport/http/response"

	gDto "wander/shared/dto"
)

type Handler struct {
	service service.Experience
	otel    otel.Otel
}

func New(service service.Experience, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/experiences", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateExperience)
		routerGroup.Get("/", handler.GetExperiences)
		routerGroup.Get("/{id}", handler.GetExperienceByID)
		routerGroup.Patch("/{id}", handler.UpdateExperience)
		routerGroup.Delete("/{id}", handler.DeleteExperience)
	})
}

// CreateExperience handles the creation of a new experience.
// @Summary Create a new experience
// @Description Create a new experience. The image may be a hosted URL or a base64 data URI.
// @Tags Experience
// @Accept json
// @Produce json
// @Param request body dto.CreateExperienceRequest true "Create Experience Request"
// @Success 201 {object} response.Message "Experience created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/experiences [post]
func (handler *Handler) CreateExperience(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateExperience")
	defer scope.End()

	req := dto.CreateExperienceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create experience")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Experience created successfully")

	response.WithMessage(w, http.StatusCreated, "Experience created successfully")
}

// GetExperiences retrieves all experiences based on query parameters.
// @Summary Get all experiences
// @Description Retrieve all experiences with optional filtering and pagination.
// @Tags Experience
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param category query string false "Filter by category (adventure, nature, cultural, water-sports)"
// @Param location query string false "Filter by location (substring match)"
// @Success 200 {object} response.Data[dto.GetExperiencesResponse] "List of experiences"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/experiences [get]
func (handler *Handler) GetExperiences(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExperiences")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	category := r.URL.Query().Get(model.FieldCategory)
	location := r.URL.Query().Get(model.FieldLocation)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	if location != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorLike,
			Value:    location,
			Table:    model.TableName,
		})
	}

	experiences, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get experiences")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Experiences retrieved successfully")

	response.WithJSON(w, http.StatusOK, experiences)
}

// GetExperienceByID retrieves an experience by its ID.
// @Summary Get an experience by ID
// @Description Retrieve an experience by its unique identifier.
// @Tags Experience
// @Accept json
// @Produce json
// @Param id path string true "Experience ID"
// @Success 200 {object} response.Data[dto.ExperienceResponse] "Experience details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/experiences/{id} [get]
func (handler *Handler) GetExperienceByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExperienceByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	experience, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get experience by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Experience retrieved successfully")

	response.WithJSON(w, http.StatusOK, experience)
}

// UpdateExperience updates an existing experience by its ID.
// @Summary Update an experience by ID
// @Description Update the details of an existing experience.
// @Tags Experience
// @Accept json
// @Produce json
// @Param id path string true "Experience ID"
// @Param request body dto.UpdateExperienceRequest true "Update Experience Request"
// @Success 200 {object} response.Message "Experience updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/experiences/{id} [patch]
func (handler *Handler) UpdateExperience(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateExperience")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateExperienceRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update experience")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Experience updated successfully")

	response.WithMessage(w, http.StatusOK, "Experience updated successfully")
}

// DeleteExperience deletes an experience by its ID.
// @Summary Delete an experience by ID
// @Description Delete an experience using its unique identifier.
// @Tags Experience
// @Accept json
// @Produce json
// @Param id path string true "Experience ID"
// @Success 200 {object} response.Message "Experience deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/experiences/{id} [delete]
func (handler *Handler) DeleteExperience(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteExperience")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete experience")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Experience deleted successfully")

	response.WithMessage(w, http.StatusOK, "Experience deleted successfully")
}
