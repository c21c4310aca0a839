package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"charter/infras/otel"
	"charter/infras/postgres"
	"charter/internal/domains/trip/model"
	gDto "charter/shared/dto"
	gRepo "charter/shared/repository"
)

type Trip interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	Insert(ctx context.Context, model model.Trip) error
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.Trip) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Trip, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Trip, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	UpdateChecked(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Stop interface {
	InsertBulkTx(ctx context.Context, tx *sqlx.Tx, models []model.Stop) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Stop, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type Timing interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.TripTiming) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.TripTiming, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type User interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, model model.UserDetails) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.UserDetails, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type tripRepositoryImpl struct {
	gRepo.Repository[model.Trip]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Trip {
	return &tripRepositoryImpl{
		Repository: gRepo.NewRepository[model.Trip](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// BeginTx opens a write transaction so a submission can persist the trip and
// its owned rows atomically.
func (repo *tripRepositoryImpl) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction (%s): %w", model.EntityName, err)
	}

	return tx, nil
}

type stopRepositoryImpl struct {
	gRepo.Repository[model.Stop]
	db   *postgres.Connection
	otel otel.Otel
}

func NewStop(db *postgres.Connection, otel otel.Otel) Stop {
	return &stopRepositoryImpl{
		Repository: gRepo.NewRepository[model.Stop](model.StopEntityName, model.StopTableName, model.StopFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type timingRepositoryImpl struct {
	gRepo.Repository[model.TripTiming]
	db   *postgres.Connection
	otel otel.Otel
}

func NewTiming(db *postgres.Connection, otel otel.Otel) Timing {
	return &timingRepositoryImpl{
		Repository: gRepo.NewRepository[model.TripTiming](model.TimingEntityName, model.TimingTableName, model.TimingFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type userRepositoryImpl struct {
	gRepo.Repository[model.UserDetails]
	db   *postgres.Connection
	otel otel.Otel
}

func NewUser(db *postgres.Connection, otel otel.Otel) User {
	return &userRepositoryImpl{
		Repository: gRepo.NewRepository[model.UserDetails](model.UserEntityName, model.UserTableName, model.UserFieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
