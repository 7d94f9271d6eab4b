package router

import (
	"reserva/internal/handlers/booking"
	"reserva/internal/handlers/customer"
	"reserva/internal/handlers/resource"
	"reserva/internal/handlers/tariff"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Resource resource.Handler
	Tariff   tariff.Handler
	Booking  booking.Handler
	Customer customer.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Resource.Router(routerGroup)
		r.DomainHandlers.Tariff.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
