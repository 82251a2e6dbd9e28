package router

import (
	"arcade/internal/handlers/auth"
	"arcade/internal/handlers/booking"
	"arcade/internal/handlers/branch"
	"arcade/internal/handlers/cashdrawer"
	"arcade/internal/handlers/customer"
	"arcade/internal/handlers/device"
	"arcade/internal/handlers/pricing"
	"arcade/internal/handlers/session"
	"arcade/internal/handlers/user"
	"arcade/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth       auth.Handler
	Branch     branch.Handler
	Customer   customer.Handler
	Device     device.Handler
	Pricing    pricing.Handler
	Session    session.Handler
	Booking    booking.Handler
	CashDrawer cashdrawer.Handler
	User       user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	AuthRole       middleware.AuthRole
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.AuthRole.Auth)
		routerGroup.Use(r.AuthRole.RBAC)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Branch.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Device.Router(routerGroup)
		r.DomainHandlers.Pricing.Router(routerGroup)
		r.DomainHandlers.Session.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.CashDrawer.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, authRole middleware.AuthRole) Router {
	return Router{
		DomainHandlers: domainHandlers,
		AuthRole:       authRole,
	}
}
