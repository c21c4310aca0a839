package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"charter/infras/otel"
	"charter/infras/postgres"
	"charter/internal/domains/template/model"
	gDto "charter/shared/dto"
	gRepo "charter/shared/repository"
)

type Template interface {
	Insert(ctx context.Context, model model.EmailTemplate) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.EmailTemplate, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.EmailTemplate, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.EmailTemplate]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Template {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.EmailTemplate](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
