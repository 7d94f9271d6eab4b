package resource

import (
	"net/http"
	"reserva/infras/otel"
	"reserva/internal/domains/resource/model/dto"
	"reserva/internal/domains/resource/service"
	"reserva/shared/constant"
	"reserva/shared/validator"
	"reserva/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Resource
	otel    otel.Otel
}

func New(service service.Resource, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/resources", func(routerGroup chi.Router) {
		routerGroup.Get("/availability", handler.GetAvailability)
	})
}

// GetAvailability lists every resource of a category annotated with its
// availability for the requested stay.
// @Summary Get resource availability
// @Description List all non-maintenance resources of a category annotated with availability for an interval. is_available reflects bookings only; administrative blocks are reported separately via the blocked, block_type and reason fields.
// @Tags Resource
// @Accept json
// @Produce json
// @Param X-Tenant-ID header string true "Tenant ID"
// @Param category query string true "Resource category code"
// @Param checkin query string true "Checkin date (YYYY-MM-DD)"
// @Param checkout query string true "Checkout date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.AvailabilityResponse] "Availability per resource"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/resources/availability [get]
func (handler *Handler) GetAvailability(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	tenantID, _ := ctx.Value(constant.ContextKeyTenantID).(string)

	req := dto.AvailabilityRequest{
		TenantID: tenantID,
		Category: request.URL.Query().Get(constant.RequestParamCategory),
		Checkin:  request.URL.Query().Get(constant.RequestParamCheckin),
		Checkout: request.URL.Query().Get(constant.RequestParamCheckout),
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate availability request")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Availability(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to resolve availability")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
