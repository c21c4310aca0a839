package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"charter/config"
	"charter/infras/otel"
	"charter/internal/domains/template/model"
	"charter/internal/domains/template/model/dto"
	"charter/internal/domains/template/repository"
	"charter/shared"
	"charter/shared/cache"
	"charter/shared/constant"
	gDto "charter/shared/dto"
	"charter/shared/failure"
)

const (
	cacheGetTemplate    = "template:get"
	cacheGetAllTemplate = "template:gets"
	cacheCountTemplate  = "template:count"
)

type Template interface {
	Create(ctx context.Context, req dto.CreateTemplateRequest, createdBy string) (dto.TemplateResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTemplatesResponse, error)
	Get(ctx context.Context, id string) (dto.TemplateResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateTemplateRequest, modifiedBy string) error
	Delete(ctx context.Context, id string) error
	ResolveByStatus(ctx context.Context, status string) (model.EmailTemplate, error)
}

type serviceImpl struct {
	repo  repository.Template
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Template, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Template {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTemplateRequest, createdBy string) (res dto.TemplateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, typeFilter(req.Type))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if template type exists")

		return res, fmt.Errorf("failed to check if template type exists: %w", err)
	}

	if exists {
		return res, failure.Conflict(fmt.Sprintf("a template for status %s already exists", req.Type)) //nolint:wrapcheck
	}

	mod := req.ToModel(createdBy)

	if err = s.repo.Insert(ctx, mod); err != nil {
		log.Error().Err(err).Msg("failed to insert template")

		return res, fmt.Errorf("failed to insert template: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTemplate)
		shared.InvalidateCaches(c, s.cache, cacheCountTemplate)
	}()

	res.FromModel(mod)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTemplatesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTemplate, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for templates")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count templates")

		return res, fmt.Errorf("failed to count templates: %w", err)
	}

	templates, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get templates")

		return res, fmt.Errorf("failed to get templates: %w", err)
	}

	res.FromModels(templates, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save templates to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TemplateResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTemplate, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for template")

		return res, nil
	}

	mod, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get template")

		return res, fmt.Errorf("failed to get template: %w", err)
	}

	if mod.ID == constant.Empty {
		return res, failure.NotFound("template not found") //nolint:wrapcheck
	}

	res.FromModel(mod)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save template to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateTemplateRequest, modifiedBy string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if template exists")

		return fmt.Errorf("failed to check if template exists: %w", err)
	}

	if !exists {
		return failure.NotFound("template not found") //nolint:wrapcheck
	}

	fields := shared.TransformFields(req, modifiedBy)

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update template")

		return fmt.Errorf("failed to update template: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exists, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if template exists")

		return fmt.Errorf("failed to check if template exists: %w", err)
	}

	if !exists {
		return failure.NotFound("template not found") //nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete template")

		return fmt.Errorf("failed to delete template: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// ResolveByStatus finds the template wired to a lead status. Decision
// notifications depend on it, so a missing template is a NotFound the caller
// must surface instead of sending an empty message.
func (s *serviceImpl) ResolveByStatus(ctx context.Context, status string) (res model.EmailTemplate, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ResolveByStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Get(ctx, typeFilter(status))
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve template by status")

		return res, fmt.Errorf("failed to resolve template by status: %w", err)
	}

	if res.ID == constant.Empty {
		return res, failure.NotFound(fmt.Sprintf("no template configured for status %s", status)) //nolint:wrapcheck
	}

	return res, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetTemplate, id))
		shared.InvalidateCaches(c, s.cache, cacheGetAllTemplate)
		shared.InvalidateCaches(c, s.cache, cacheCountTemplate)
	}()
}

func typeFilter(templateType string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldType,
				Operator: gDto.FilterOperatorEq,
				Value:    templateType,
				Table:    model.TableName,
			},
		},
	}
}
