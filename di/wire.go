//go:build wireinject
// +build wireinject

package di

import (
	"arcade/config"
	"arcade/infras/jwt"
	"arcade/infras/kafka"
	"arcade/infras/otel"
	"arcade/infras/postgres"
	"arcade/infras/redis"
	"arcade/permissions"
	"arcade/shared/cache"
	"arcade/transport/http"
	"arcade/transport/http/middleware"
	"arcade/transport/http/router"

	authService "arcade/internal/domains/auth/service"
	bookingRepository "arcade/internal/domains/booking/repository"
	bookingService "arcade/internal/domains/booking/service"
	branchRepository "arcade/internal/domains/branch/repository"
	branchService "arcade/internal/domains/branch/service"
	cashdrawerRepository "arcade/internal/domains/cashdrawer/repository"
	cashdrawerService "arcade/internal/domains/cashdrawer/service"
	customerRepository "arcade/internal/domains/customer/repository"
	customerService "arcade/internal/domains/customer/service"
	deviceRepository "arcade/internal/domains/device/repository"
	deviceService "arcade/internal/domains/device/service"
	pricingRepository "arcade/internal/domains/pricing/repository"
	pricingService "arcade/internal/domains/pricing/service"
	sessionRepository "arcade/internal/domains/session/repository"
	sessionService "arcade/internal/domains/session/service"
	userRepository "arcade/internal/domains/user/repository"
	userService "arcade/internal/domains/user/service"

	authHandler "arcade/internal/handlers/auth"
	bookingHandler "arcade/internal/handlers/booking"
	branchHandler "arcade/internal/handlers/branch"
	cashdrawerHandler "arcade/internal/handlers/cashdrawer"
	customerHandler "arcade/internal/handlers/customer"
	deviceHandler "arcade/internal/handlers/device"
	pricingHandler "arcade/internal/handlers/pricing"
	sessionHandler "arcade/internal/handlers/session"
	userHandler "arcade/internal/handlers/user"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	authService.New,
)

var branchDomain = wire.NewSet(
	branchRepository.New,
	branchService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var deviceDomain = wire.NewSet(
	deviceRepository.New,
	deviceService.New,
)

var pricingDomain = wire.NewSet(
	pricingRepository.New,
	pricingService.New,
)

var sessionDomain = wire.NewSet(
	sessionRepository.New,
	sessionService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var cashdrawerDomain = wire.NewSet(
	cashdrawerRepository.NewDrawer,
	cashdrawerRepository.NewCashLog,
	cashdrawerService.New,
)

var userDomain = wire.NewSet(
	userRepository.New,
	userService.New,
)

var domains = wire.NewSet(
	authDomain,
	branchDomain,
	customerDomain,
	deviceDomain,
	pricingDomain,
	sessionDomain,
	bookingDomain,
	cashdrawerDomain,
	userDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	branchHandler.New,
	customerHandler.New,
	deviceHandler.New,
	pricingHandler.New,
	sessionHandler.New,
	bookingHandler.New,
	cashdrawerHandler.New,
	userHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
