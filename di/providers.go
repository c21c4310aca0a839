package di

import (
	"charter/config"
	"charter/infras/jwt"
	"charter/infras/otel"
	"charter/internal/notification"
	"charter/shared/cache"

	adminRepository "charter/internal/domains/admin/repository"
	adminService "charter/internal/domains/admin/service"
	leadService "charter/internal/domains/lead/service"
	templateService "charter/internal/domains/template/service"
	tripRepository "charter/internal/domains/trip/repository"
	tripService "charter/internal/domains/trip/service"
)

// provideLeadService hands the two sinks to the lead service as their shared
// interface; wire cannot pick between two notification.Sink bindings on its
// own.
func provideLeadService(
	tripRepo tripRepository.Trip,
	tripSvc tripService.Trip,
	templateSvc templateService.Template,
	whatsapp *notification.WhatsAppSink,
	email *notification.EmailSink,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) leadService.Lead {
	return leadService.New(tripRepo, tripSvc, templateSvc, whatsapp, email, cfg, cache, otel)
}

func provideAdminService(
	repo adminRepository.Admin,
	cfg *config.Config,
	otel otel.Otel,
	jwtService jwt.JWT,
	email *notification.EmailSink,
) adminService.Admin {
	return adminService.New(repo, cfg, otel, jwtService, email)
}
