package router

import (
	"github.com/go-chi/chi/v5"

	"adspot/internal/handlers/auth"
	"adspot/internal/handlers/availability"
	"adspot/internal/handlers/booking"
	"adspot/internal/handlers/space"
	"adspot/internal/handlers/user"
	"adspot/transport/http/middleware"
)

type DomainHandlers struct {
	Auth         auth.Handler
	User         user.Handler
	Space        space.Handler
	Booking      booking.Handler
	Availability availability.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.APIKey)
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
		r.DomainHandlers.Space.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Availability.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
