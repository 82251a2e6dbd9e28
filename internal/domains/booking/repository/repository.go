package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"arcade/infras/otel"
	"arcade/infras/postgres"
	"arcade/internal/domains/booking/model"
	gDto "arcade/shared/dto"
	gRepo "arcade/shared/repository"
)

type AdvanceBooking interface {
	Insert(ctx context.Context, model model.AdvanceBooking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.AdvanceBooking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.AdvanceBooking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateGuarded(ctx context.Context, req map[string]any, filter gDto.FilterGroup) (int64, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.AdvanceBooking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) AdvanceBooking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.AdvanceBooking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
