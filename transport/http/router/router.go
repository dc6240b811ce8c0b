package router

import (
	"github.com/go-chi/chi/v5"

	"wander/internal/handlers/booking"
	"wander/internal/handlers/experience"
	"wander/internal/handlers/slot"
	"wander/internal/handlers/user"
)

type DomainHandlers struct {
	Experience experience.Handler
	User       user.Handler
	Slot       slot.Handler
	Booking    booking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Experience.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Slot.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
