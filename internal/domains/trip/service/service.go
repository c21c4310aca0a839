package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"charter/config"
	"charter/infras/otel"
	"charter/internal/domains/trip/model"
	"charter/internal/domains/trip/model/dto"
	"charter/internal/domains/trip/repository"
	"charter/shared"
	"charter/shared/cache"
	"charter/shared/constant"
	gDto "charter/shared/dto"
	"charter/shared/failure"
	"charter/shared/password"
)

const (
	cacheGetLead    = "lead:get"
	cacheGetAllLead = "lead:gets"
	cacheCountLead  = "lead:count"
)

type Trip interface {
	Submit(ctx context.Context, req dto.CreateTripRequest) (dto.CreateTripResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetLeadsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.DetailedTripResponse, error)
	Detail(ctx context.Context, trip model.Trip) (model.DetailedTrip, error)
}

type serviceImpl struct {
	repo       repository.Trip
	stopRepo   repository.Stop
	timingRepo repository.Timing
	userRepo   repository.User
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Trip,
	stopRepo repository.Stop,
	timingRepo repository.Timing,
	userRepo repository.User,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Trip {
	return &serviceImpl{
		repo:       repo,
		stopRepo:   stopRepo,
		timingRepo: timingRepo,
		userRepo:   userRepo,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

// Submit persists a customer trip quote together with its stops, timing and
// contact details in one transaction. The quote always starts Pending.
func (s *serviceImpl) Submit(ctx context.Context, req dto.CreateTripRequest) (res dto.CreateTripResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Submit")
	defer scope.End()
	defer scope.TraceIfError(err)

	emailFilter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.UserFieldEmail,
				Operator: gDto.FilterOperatorEq,
				Value:    req.User.Email,
				Table:    model.UserTableName,
			},
		},
	}

	exists, err := s.userRepo.Exist(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if submitter email exists")

		return res, fmt.Errorf("failed to check if submitter email exists: %w", err)
	}

	if exists {
		return res, failure.BadRequestFromString("email already used by another submission") //nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.User.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash submitter password")

		return res, fmt.Errorf("failed to hash submitter password: %w", err)
	}

	trip := req.ToTripModel(constant.ContextGuest)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin submission transaction")

		return res, fmt.Errorf("failed to begin submission transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				log.Error().Err(rollbackErr).Msg("failed to roll back submission transaction")
			}
		}
	}()

	if err = s.repo.InsertTx(ctx, tx, trip); err != nil {
		log.Error().Err(err).Msg("failed to insert trip")

		return res, fmt.Errorf("failed to insert trip: %w", err)
	}

	if stops := req.ToStopModels(trip.ID, constant.ContextGuest); len(stops) > 0 {
		if err = s.stopRepo.InsertBulkTx(ctx, tx, stops); err != nil {
			log.Error().Err(err).Msg("failed to insert trip stops")

			return res, fmt.Errorf("failed to insert trip stops: %w", err)
		}
	}

	if timing := req.ToTimingModel(trip.ID, constant.ContextGuest); timing != nil {
		if err = s.timingRepo.InsertTx(ctx, tx, *timing); err != nil {
			log.Error().Err(err).Msg("failed to insert trip timing")

			return res, fmt.Errorf("failed to insert trip timing: %w", err)
		}
	}

	if err = s.userRepo.InsertTx(ctx, tx, req.ToUserModel(trip.ID, hashedPassword, constant.ContextGuest)); err != nil {
		log.Error().Err(err).Msg("failed to insert trip user details")

		return res, fmt.Errorf("failed to insert trip user details: %w", err)
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit submission transaction")

		return res, fmt.Errorf("failed to commit submission transaction: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllLead)
		shared.InvalidateCaches(c, s.cache, cacheCountLead)
	}()

	res.ID = trip.ID
	res.Status = trip.Status

	return res, nil
}

// Detail joins a trip with its stops, timing and user. The three sub-fetches
// are independent reads and run concurrently. Missing related rows are not an
// error: they come back as empty slices or nil pointers.
func (s *serviceImpl) Detail(ctx context.Context, trip model.Trip) (res model.DetailedTrip, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Detail")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.Trip = trip

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		stops, stopErr := s.stopRepo.GetAll(groupCtx, stopOrdering(), stopFilter(trip.ID, model.StopTypeGoing))
		if stopErr != nil {
			return fmt.Errorf("failed to get going stops: %w", stopErr)
		}

		res.GoingStops = stops

		return nil
	})

	group.Go(func() error {
		stops, stopErr := s.stopRepo.GetAll(groupCtx, stopOrdering(), stopFilter(trip.ID, model.StopTypeReturn))
		if stopErr != nil {
			return fmt.Errorf("failed to get return stops: %w", stopErr)
		}

		res.ReturnStops = stops

		return nil
	})

	group.Go(func() error {
		timing, timingErr := s.timingRepo.Get(groupCtx, shared.FilterByID(trip.ID, model.TimingFieldTripID, model.TimingTableName))
		if timingErr != nil {
			return fmt.Errorf("failed to get trip timing: %w", timingErr)
		}

		if timing.ID != constant.Empty {
			res.Timing = &timing
		}

		return nil
	})

	group.Go(func() error {
		user, userErr := s.userRepo.Get(groupCtx, shared.FilterByID(trip.ID, model.UserFieldTripID, model.UserTableName))
		if userErr != nil {
			return fmt.Errorf("failed to get trip user details: %w", userErr)
		}

		if user.ID != constant.Empty {
			res.User = &user
		}

		return nil
	})

	if err = group.Wait(); err != nil {
		return res, err
	}

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetLeadsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllLead, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for leads")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count leads")

		return res, fmt.Errorf("failed to count leads: %w", err)
	}

	trips, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get leads")

		return res, fmt.Errorf("failed to get leads: %w", err)
	}

	detailed := make([]model.DetailedTrip, len(trips))

	for i, trip := range trips {
		aggregate, detailErr := s.Detail(ctx, trip)
		if detailErr != nil {
			// One broken lead must not take the whole listing down. Serve the
			// bare trip and keep the related records empty.
			log.Warn().Err(detailErr).Str("tripID", trip.ID).Msg("failed to aggregate lead, serving bare trip")

			aggregate = model.DetailedTrip{Trip: trip}
		}

		detailed[i] = aggregate
	}

	res.FromModels(detailed, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save leads to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountLead, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for lead count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count leads")

		return res, fmt.Errorf("failed to count leads: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save lead count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.DetailedTripResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetLead, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for lead")

		return res, nil
	}

	trip, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get lead")

		return res, fmt.Errorf("failed to get lead: %w", err)
	}

	if trip.ID == constant.Empty {
		return res, failure.NotFound("lead not found") //nolint:wrapcheck
	}

	detailed, err := s.Detail(ctx, trip)
	if err != nil {
		log.Error().Err(err).Msg("failed to aggregate lead")

		return res, fmt.Errorf("failed to aggregate lead: %w", err)
	}

	res.FromModel(detailed)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save lead to cache")
		}
	}()

	return res, nil
}

// stopOrdering pins stop listings to insertion order.
func stopOrdering() gDto.QueryParams {
	return gDto.QueryParams{
		SortBy:  constant.FieldCreatedAt,
		SortDir: gDto.SortDirAsc,
	}
}

func stopFilter(tripID, stopType string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.StopFieldTripID,
				Operator: gDto.FilterOperatorEq,
				Value:    tripID,
				Table:    model.StopTableName,
			},
			gDto.Filter{
				Field:    model.StopFieldStopType,
				ArgName:  "stop_type_filter",
				Operator: gDto.FilterOperatorEq,
				Value:    stopType,
				Table:    model.StopTableName,
			},
		},
	}
}
