package router

import (
	"github.com/go-chi/chi/v5"

	"charter/internal/handlers/admin"
	"charter/internal/handlers/lead"
	"charter/internal/handlers/template"
	"charter/internal/handlers/trip"
	"charter/transport/http/middleware"
)

type DomainHandlers struct {
	Trip     trip.Handler
	Lead     lead.Handler
	Template template.Handler
	Admin    admin.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AppMiddleware  middleware.AppMiddleware
	AuthMiddleware middleware.Auth
}

// SetupRoutes mounts the API under /v1. Quote submission and the auth
// endpoints are public; everything else sits behind JWT auth.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(r.AppMiddleware.Tracing)
	router.Use(r.AppMiddleware.CORS())
	router.Use(r.AppMiddleware.RateLimit())

	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Group(func(public chi.Router) {
			r.DomainHandlers.Trip.Router(public)
			r.DomainHandlers.Admin.AuthRouter(public)
		})

		routerGroup.Group(func(private chi.Router) {
			private.Use(r.AuthMiddleware.Auth)

			r.DomainHandlers.Lead.Router(private)
			r.DomainHandlers.Template.Router(private)
			r.DomainHandlers.Admin.Router(private)
		})
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware, authMiddleware middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AppMiddleware:  appMiddleware,
		AuthMiddleware: authMiddleware,
	}
}
