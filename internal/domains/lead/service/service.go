package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"charter/config"
	"charter/infras/otel"
	"charter/internal/domains/lead/model/dto"
	templateModel "charter/internal/domains/template/model"
	templateService "charter/internal/domains/template/service"
	tripModel "charter/internal/domains/trip/model"
	"charter/internal/domains/trip/repository"
	tripService "charter/internal/domains/trip/service"
	"charter/internal/notification"
	"charter/shared"
	"charter/shared/cache"
	"charter/shared/constant"
	gDto "charter/shared/dto"
	"charter/shared/failure"
	"charter/shared/timezone"
)

const (
	cacheGetLead    = "lead:get"
	cacheGetAllLead = "lead:gets"
	cacheCountLead  = "lead:count"
)

type Lead interface {
	Transition(ctx context.Context, tripID, target, decidedBy string) (dto.TransitionResult, error)
	SoftDelete(ctx context.Context, tripID, deletedBy string) error
	Restore(ctx context.Context, tripID, restoredBy string) error
}

type serviceImpl struct {
	tripRepo    repository.Trip
	tripSvc     tripService.Trip
	templateSvc templateService.Template
	whatsapp    notification.Sink
	email       notification.Sink
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	tripRepo repository.Trip,
	tripSvc tripService.Trip,
	templateSvc templateService.Template,
	whatsapp notification.Sink,
	email notification.Sink,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Lead {
	return &serviceImpl{
		tripRepo:    tripRepo,
		tripSvc:     tripSvc,
		templateSvc: templateSvc,
		whatsapp:    whatsapp,
		email:       email,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

// Transition applies an admin decision to a pending lead. The write is a
// conditional update so only one of two racing admins wins; the loser gets an
// InvalidTransition with the status that beat them. Notification happens after
// the commit and never rolls it back.
func (s *serviceImpl) Transition(ctx context.Context, tripID, target, decidedBy string) (res dto.TransitionResult, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Transition")
	defer scope.End()
	defer scope.TraceIfError(err)

	if !tripModel.IsDecision(target) {
		return res, failure.BadRequestFromString("status must be Accepted or Rejected") //nolint:wrapcheck
	}

	mod := map[string]any{
		tripModel.FieldStatus:    target,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: decidedBy,
	}

	affected, err := s.tripRepo.UpdateChecked(ctx, mod, pendingFilter(tripID))
	if err != nil {
		log.Error().Err(err).Msg("failed to update lead status")

		return res, fmt.Errorf("failed to update lead status: %w", err)
	}

	if affected == 0 {
		trip, getErr := s.tripRepo.Get(ctx, shared.FilterByID(tripID, tripModel.FieldID, tripModel.TableName))
		if getErr != nil {
			log.Error().Err(getErr).Msg("failed to get lead after losing status update")

			return res, fmt.Errorf("failed to get lead: %w", getErr)
		}

		if trip.ID == constant.Empty || trip.IsDeleted {
			return res, failure.NotFound("lead not found") //nolint:wrapcheck
		}

		res.CurrentStatus = trip.Status

		return res, failure.InvalidTransition(trip.Status) //nolint:wrapcheck
	}

	res.StatusUpdated = true
	res.CurrentStatus = target

	s.invalidate(ctx, tripID)

	trip, err := s.tripRepo.Get(ctx, shared.FilterByID(tripID, tripModel.FieldID, tripModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to reload lead for notification")

		res.NotifyError = "failed to reload lead for notification"

		return res, nil
	}

	res.Notified, res.NotifyError = s.notify(ctx, trip, target)

	return res, nil
}

// notify renders the template wired to the decided status and fans out to
// every channel the submitter left a destination for. Failures are reported
// in the result, not as errors: the status change already committed.
func (s *serviceImpl) notify(ctx context.Context, trip tripModel.Trip, status string) (notified bool, notifyErr string) {
	detailed, err := s.tripSvc.Detail(ctx, trip)
	if err != nil {
		log.Error().Err(err).Str("tripID", trip.ID).Msg("failed to aggregate lead for notification")

		return false, "failed to aggregate lead for notification"
	}

	if detailed.User == nil {
		log.Warn().Str("tripID", trip.ID).Msg("lead has no contact details, skipping notification")

		return false, "lead has no contact details"
	}

	tpl, err := s.templateSvc.ResolveByStatus(ctx, status)
	if err != nil {
		if !failure.IsCode(err, http.StatusNotFound) {
			log.Error().Err(err).Str("status", status).Msg("failed to resolve notification template")

			return false, "failed to resolve template for status " + status
		}

		log.Warn().Str("status", status).Msg("no template configured, using built-in notification body")

		tpl = fallbackTemplate(status)
	}

	rctx := templateService.NewRenderContext(detailed, status)

	var failures []string

	if detailed.User.PhoneNumber != constant.Empty {
		_, body := templateService.Render(tpl, rctx, notification.ChannelWhatsApp)

		err = s.whatsapp.Send(ctx, notification.Message{
			Channel:     notification.ChannelWhatsApp,
			Destination: detailed.User.PhoneNumber,
			Body:        body,
		})
		if err != nil {
			log.Error().Err(err).Str("tripID", trip.ID).Msg("failed to send whatsapp notification")

			failures = append(failures, "whatsapp: "+err.Error())
		}
	}

	if detailed.User.Email != constant.Empty {
		subject, body := templateService.Render(tpl, rctx, notification.ChannelEmail)

		err = s.email.Send(ctx, notification.Message{
			Channel:     notification.ChannelEmail,
			Destination: detailed.User.Email,
			Subject:     subject,
			Body:        body,
		})
		if err != nil {
			log.Error().Err(err).Str("tripID", trip.ID).Msg("failed to send email notification")

			failures = append(failures, "email: "+err.Error())
		}
	}

	if len(failures) > 0 {
		return false, strings.Join(failures, "; ")
	}

	return true, constant.Empty
}

// fallbackTemplate is the built-in notification used when no template is
// configured for the decided status.
func fallbackTemplate(status string) templateModel.EmailTemplate {
	return templateModel.EmailTemplate{
		Name:    "built-in",
		Type:    status,
		Subject: "Your trip request has been {{status}}",
		Body: "Hello {{userName}}!\n\n" +
			"Trip Type: {{tripType}}\n" +
			"Pickup: {{pickup}}\n" +
			"Destination: {{destination}}\n" +
			"Departure: {{departureDate}} at {{departureTime}}\n" +
			"Return: {{returnDate}} at {{returnTime}}\n\n" +
			"Going Stops: {{goingStops}}\n" +
			"Return Stops: {{returnStops}}\n\n" +
			"Passengers: {{passengers}}\n" +
			"Status: {{status}}",
	}
}

// SoftDelete hides a lead from listings without destroying the record.
// Deleting an already-deleted lead is a no-op success.
func (s *serviceImpl) SoftDelete(ctx context.Context, tripID, deletedBy string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SoftDelete")
	defer scope.End()
	defer scope.TraceIfError(err)

	trip, err := s.tripRepo.Get(ctx, shared.FilterByID(tripID, tripModel.FieldID, tripModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get lead")

		return fmt.Errorf("failed to get lead: %w", err)
	}

	if trip.ID == constant.Empty {
		return failure.NotFound("lead not found") //nolint:wrapcheck
	}

	if trip.IsDeleted {
		return nil
	}

	mod := map[string]any{
		tripModel.FieldStatus:    tripModel.StatusDeleted,
		tripModel.FieldIsDeleted: true,
		tripModel.FieldDeletedAt: timezone.Now(),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: deletedBy,
	}

	if err = s.tripRepo.Update(ctx, mod, shared.FilterByID(tripID, tripModel.FieldID, tripModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to soft delete lead")

		return fmt.Errorf("failed to soft delete lead: %w", err)
	}

	s.invalidate(ctx, tripID)

	return nil
}

// Restore brings a soft-deleted lead back as Pending. The update is
// conditional on the deleted flag, so restoring an active or absent lead both
// come back as NotFound.
func (s *serviceImpl) Restore(ctx context.Context, tripID, restoredBy string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Restore")
	defer scope.End()
	defer scope.TraceIfError(err)

	mod := map[string]any{
		tripModel.FieldStatus:    tripModel.StatusPending,
		tripModel.FieldIsDeleted: false,
		tripModel.FieldDeletedAt: nil,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: restoredBy,
	}

	affected, err := s.tripRepo.UpdateChecked(ctx, mod, deletedFilter(tripID))
	if err != nil {
		log.Error().Err(err).Msg("failed to restore lead")

		return fmt.Errorf("failed to restore lead: %w", err)
	}

	if affected == 0 {
		return failure.NotFound("no deleted lead to restore") //nolint:wrapcheck
	}

	s.invalidate(ctx, tripID)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, tripID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetLead, tripID))
		shared.InvalidateCaches(c, s.cache, cacheGetAllLead)
		shared.InvalidateCaches(c, s.cache, cacheCountLead)
	}()
}

func pendingFilter(tripID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    tripModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    tripID,
				Table:    tripModel.TableName,
			},
			gDto.Filter{
				Field:    tripModel.FieldStatus,
				ArgName:  "status_filter",
				Operator: gDto.FilterOperatorEq,
				Value:    tripModel.StatusPending,
				Table:    tripModel.TableName,
			},
		},
	}
}

func deletedFilter(tripID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    tripModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    tripID,
				Table:    tripModel.TableName,
			},
			gDto.Filter{
				Field:    tripModel.FieldIsDeleted,
				ArgName:  "is_deleted_filter",
				Operator: gDto.FilterOperatorEq,
				Value:    true,
				Table:    tripModel.TableName,
			},
		},
	}
}
