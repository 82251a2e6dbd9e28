// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package di

import (
	"arcade/config"
	"arcade/infras/jwt"
	"arcade/infras/kafka"
	"arcade/infras/otel"
	"arcade/infras/postgres"
	"arcade/infras/redis"
	"arcade/internal/domains/auth/service"
	repository8 "arcade/internal/domains/booking/repository"
	service8 "arcade/internal/domains/booking/service"
	repository2 "arcade/internal/domains/branch/repository"
	service2 "arcade/internal/domains/branch/service"
	repository7 "arcade/internal/domains/cashdrawer/repository"
	service6 "arcade/internal/domains/cashdrawer/service"
	repository3 "arcade/internal/domains/customer/repository"
	service3 "arcade/internal/domains/customer/service"
	repository4 "arcade/internal/domains/device/repository"
	service4 "arcade/internal/domains/device/service"
	repository5 "arcade/internal/domains/pricing/repository"
	service5 "arcade/internal/domains/pricing/service"
	repository6 "arcade/internal/domains/session/repository"
	service7 "arcade/internal/domains/session/service"
	"arcade/internal/domains/user/repository"
	service9 "arcade/internal/domains/user/service"
	"arcade/internal/handlers/auth"
	"arcade/internal/handlers/booking"
	"arcade/internal/handlers/branch"
	"arcade/internal/handlers/cashdrawer"
	"arcade/internal/handlers/customer"
	"arcade/internal/handlers/device"
	"arcade/internal/handlers/pricing"
	"arcade/internal/handlers/session"
	"arcade/internal/handlers/user"
	"arcade/permissions"
	"arcade/shared/cache"
	"arcade/transport/http"
	"arcade/transport/http/middleware"
	"arcade/transport/http/router"
	"github.com/google/wire"
)

// Injectors from wire.go:

func InitializeService() *http.HTTP {
	configConfig := config.Get()
	connection := postgres.New(configConfig)
	otelOtel := otel.New(configConfig)
	repositoryUser := repository.New(connection, otelOtel)
	jwtJWT := jwt.New(configConfig)
	serviceAuth := service.New(repositoryUser, configConfig, otelOtel, jwtJWT)
	handler := auth.New(serviceAuth, otelOtel)
	repositoryBranch := repository2.New(connection, otelOtel)
	client := redis.New(configConfig)
	redisCache := cache.NewRedisCache(client, otelOtel)
	serviceBranch := service2.New(repositoryBranch, configConfig, redisCache, otelOtel)
	branchHandler := branch.New(serviceBranch, otelOtel)
	repositoryCustomer := repository3.New(connection, otelOtel)
	serviceCustomer := service3.New(repositoryCustomer, configConfig, redisCache, otelOtel)
	customerHandler := customer.New(serviceCustomer, otelOtel)
	repositoryDevice := repository4.New(connection, otelOtel)
	serviceDevice := service4.New(repositoryDevice, configConfig, redisCache, otelOtel)
	deviceHandler := device.New(serviceDevice, otelOtel)
	repositoryPricing := repository5.New(connection, otelOtel)
	servicePricing := service5.New(repositoryPricing, configConfig, redisCache, otelOtel)
	pricingHandler := pricing.New(servicePricing, otelOtel)
	repositorySession := repository6.New(connection, otelOtel)
	drawer := repository7.NewDrawer(connection, otelOtel)
	cashLog := repository7.NewCashLog(connection, otelOtel)
	cashDrawer := service6.New(drawer, cashLog, configConfig, otelOtel)
	kafkaClient := kafka.New(configConfig)
	serviceSession := service7.New(repositorySession, serviceDevice, servicePricing, repositoryCustomer, cashDrawer, kafkaClient, configConfig, redisCache, otelOtel)
	sessionHandler := session.New(serviceSession, otelOtel)
	advanceBooking := repository8.New(connection, otelOtel)
	serviceAdvanceBooking := service8.New(advanceBooking, repositoryCustomer, configConfig, redisCache, otelOtel)
	bookingHandler := booking.New(serviceAdvanceBooking, otelOtel)
	cashdrawerHandler := cashdrawer.New(cashDrawer, otelOtel)
	serviceUser := service9.New(repositoryUser, configConfig, redisCache, otelOtel)
	userHandler := user.New(serviceUser, otelOtel)
	domainHandlers := router.DomainHandlers{
		Auth:       handler,
		Branch:     branchHandler,
		Customer:   customerHandler,
		Device:     deviceHandler,
		Pricing:    pricingHandler,
		Session:    sessionHandler,
		Booking:    bookingHandler,
		CashDrawer: cashdrawerHandler,
		User:       userHandler,
	}
	permissionData := permissions.Get()
	authRole := middleware.NewAuthRoleMiddleware(jwtJWT, otelOtel, permissionData, configConfig)
	routerRouter := router.New(domainHandlers, authRole)
	appMiddleware := middleware.NewAppMiddleware(otelOtel, configConfig, redisCache)
	httpHTTP := http.New(configConfig, routerRouter, appMiddleware)
	return httpHTTP
}

// wire.go:

var configurations = wire.NewSet(config.Get, permissions.Get)

var infrastructures = wire.NewSet(postgres.New, otel.New, redis.New, jwt.New, kafka.New)

var middlewares = wire.NewSet(middleware.NewAppMiddleware, middleware.NewAuthRoleMiddleware)

var sharedHelpers = wire.NewSet(cache.NewRedisCache)

var authDomain = wire.NewSet(service.New)

var branchDomain = wire.NewSet(repository2.New, service2.New)

var customerDomain = wire.NewSet(repository3.New, service3.New)

var deviceDomain = wire.NewSet(repository4.New, service4.New)

var pricingDomain = wire.NewSet(repository5.New, service5.New)

var sessionDomain = wire.NewSet(repository6.New, service7.New)

var bookingDomain = wire.NewSet(repository8.New, service8.New)

var cashdrawerDomain = wire.NewSet(repository7.NewDrawer, repository7.NewCashLog, service6.New)

var userDomain = wire.NewSet(repository.New, service9.New)

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

var routing = wire.NewSet(wire.Struct(new(router.DomainHandlers), "*"), auth.New, branch.New, customer.New, device.New, pricing.New, session.New, booking.New, cashdrawer.New, user.New, router.New)
