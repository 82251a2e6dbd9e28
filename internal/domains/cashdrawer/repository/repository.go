package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"arcade/infras/otel"
	"arcade/infras/postgres"
	"arcade/internal/domains/cashdrawer/model"
	gDto "arcade/shared/dto"
	gRepo "arcade/shared/repository"
)

type Drawer interface {
	Insert(ctx context.Context, model model.CashDrawer) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.CashDrawer, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CashDrawer, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateExpr(ctx context.Context, exprs []string, exprArgs map[string]any, filter gDto.FilterGroup) (int64, error)
}

type CashLog interface {
	Insert(ctx context.Context, model model.CashLog) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.CashLog, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type drawerRepositoryImpl struct {
	gRepo.Repository[model.CashDrawer]
	db   *postgres.Connection
	otel otel.Otel
}

func NewDrawer(db *postgres.Connection, otel otel.Otel) Drawer {
	return &drawerRepositoryImpl{
		Repository: gRepo.NewRepository[model.CashDrawer](model.DrawerEntityName, model.DrawerTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

type cashLogRepositoryImpl struct {
	gRepo.Repository[model.CashLog]
	db   *postgres.Connection
	otel otel.Otel
}

func NewCashLog(db *postgres.Connection, otel otel.Otel) CashLog {
	return &cashLogRepositoryImpl{
		Repository: gRepo.NewRepository[model.CashLog](model.LogEntityName, model.LogTableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
