//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"charter/config"
	"charter/infras/jwt"
	"charter/infras/otel"
	"charter/infras/postgres"
	"charter/infras/redis"
	"charter/internal/notification"
	"charter/shared/cache"
	"charter/transport/http"
	"charter/transport/http/middleware"
	"charter/transport/http/router"

	adminRepository "charter/internal/domains/admin/repository"
	templateRepository "charter/internal/domains/template/repository"
	templateService "charter/internal/domains/template/service"
	tripRepository "charter/internal/domains/trip/repository"
	tripService "charter/internal/domains/trip/service"

	adminHandler "charter/internal/handlers/admin"
	leadHandler "charter/internal/handlers/lead"
	templateHandler "charter/internal/handlers/template"
	tripHandler "charter/internal/handlers/trip"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var notifications = wire.NewSet(
	notification.NewWhatsAppSink,
	notification.NewEmailSink,
)

var tripDomain = wire.NewSet(
	tripRepository.New,
	tripRepository.NewStop,
	tripRepository.NewTiming,
	tripRepository.NewUser,
	tripService.New,
)

var leadDomain = wire.NewSet(
	provideLeadService,
)

var templateDomain = wire.NewSet(
	templateRepository.New,
	templateService.New,
)

var adminDomain = wire.NewSet(
	adminRepository.New,
	provideAdminService,
)

var domains = wire.NewSet(
	tripDomain,
	leadDomain,
	templateDomain,
	adminDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	tripHandler.New,
	leadHandler.New,
	templateHandler.New,
	adminHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		notifications,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
