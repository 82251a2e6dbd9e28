package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"arcade/infras/otel"
	"arcade/infras/postgres"
	"arcade/internal/domains/pricing/model"
	gDto "arcade/shared/dto"
	gRepo "arcade/shared/repository"
)

type Pricing interface {
	Insert(ctx context.Context, model model.PriceTier) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.PriceTier, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PriceTier, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.PriceTier]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Pricing {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PriceTier](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
