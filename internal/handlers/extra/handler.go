package extra

import (
	"net/http"
	"pms/infras/otel"
	"pms/internal/domains/extra/model"
	"pms/internal/domains/extra/model/dto"
	"pms/internal/domains/extra/service"
	"pms/shared"
	"pms/shared/constant"
	gDto "pms/shared/dto"
	"pms/shared/validator"
	"pms/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Extra
	otel    otel.Otel
}

func New(service service.Extra, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/extras", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateExtra)
		routerGroup.Get("/", handler.GetExtras)
		routerGroup.Get("/{id}", handler.GetExtraByID)
		routerGroup.Patch("/{id}", handler.UpdateExtra)
		routerGroup.Delete("/{id}", handler.DeleteExtra)
	})
}

// CreateExtra adds a new add-on service to the catalog.
// @Summary Create a new extra
// @Description Create an add-on service billable once per stay or per night.
// @Tags Extra
// @Accept json
// @Produce json
// @Param request body dto.CreateExtraRequest true "Extra payload"
// @Success 201 {object} response.Message "Extra created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/extras [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateExtra(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateExtra")
	defer scope.End()

	var req dto.CreateExtraRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create extra")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Extra created successfully")

	response.WithMessage(w, http.StatusCreated, "Extra created successfully")
}

// GetExtras retrieves the extras catalog.
// @Summary Get all extras
// @Description Retrieve all extras with optional filtering and pagination.
// @Tags Extra
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param category query string false "Filter by category"
// @Param active query boolean false "Filter by active status"
// @Success 200 {object} response.Data[dto.GetExtrasResponse] "List of extras"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/extras [get]
func (handler *Handler) GetExtras(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExtras")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	category := r.URL.Query().Get(model.FieldCategory)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if category != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	extras, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get extras")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Extras retrieved successfully")

	response.WithJSON(w, http.StatusOK, extras)
}

// GetExtraByID retrieves an extra by its ID.
// @Summary Get an extra by ID
// @Description Retrieve an extra by its unique identifier.
// @Tags Extra
// @Accept json
// @Produce json
// @Param id path string true "Extra ID"
// @Success 200 {object} response.Data[dto.ExtraResponse] "Extra details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/extras/{id} [get]
func (handler *Handler) GetExtraByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetExtraByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	extra, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get extra by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Extra retrieved successfully")

	response.WithJSON(w, http.StatusOK, extra)
}

// UpdateExtra updates an existing extra by its ID.
// @Summary Update an extra by ID
// @Description Update the details of an existing extra.
// @Tags Extra
// @Accept json
// @Produce json
// @Param id path string true "Extra ID"
// @Param request body dto.UpdateExtraRequest true "Fields to update"
// @Success 200 {object} response.Message "Extra updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/extras/{id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateExtra(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateExtra")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	var req dto.UpdateExtraRequest
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update extra")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Extra updated successfully")

	response.WithMessage(w, http.StatusOK, "Extra updated successfully")
}

// DeleteExtra deletes an extra by its ID.
// @Summary Delete an extra by ID
// @Description Delete an extra using its unique identifier.
// @Tags Extra
// @Accept json
// @Produce json
// @Param id path string true "Extra ID"
// @Success 200 {object} response.Message "Extra deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/extras/{id} [delete]
// @Security ApiKeyAuth
func (handler *Handler) DeleteExtra(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteExtra")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete extra")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Extra deleted successfully")

	response.WithMessage(w, http.StatusOK, "Extra deleted successfully")
}
