package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"arcade/infras/otel"
	"arcade/infras/postgres"
	"arcade/internal/domains/customer/model"
	"arcade/shared/constant"
	gDto "arcade/shared/dto"
	"arcade/shared/failure"
	"arcade/shared/logger"
	gRepo "arcade/shared/repository"
	"arcade/shared/timezone"
)

type Customer interface {
	Insert(ctx context.Context, model model.Customer) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Customer, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Customer, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	AdjustPoints(ctx context.Context, customerID string, delta int64, modifiedBy string) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Customer]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Customer {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Customer](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// AdjustPoints applies a net point delta to a customer balance as a single
// guarded update. The WHERE clause keeps the resulting balance non-negative,
// so a zero affected count tells the caller the balance moved underneath it.
func (repo *repositoryImpl) AdjustPoints(ctx context.Context, customerID string, delta int64, modifiedBy string) (int64, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".customer.AdjustPoints")
	defer scope.End()

	query := fmt.Sprintf(
		"UPDATE %s SET %s = %s + :delta, %s = :modified_at, %s = :modified_by WHERE %s = :id AND %s + :delta >= 0",
		model.TableName,
		model.FieldGGPointsBalance, model.FieldGGPointsBalance,
		constant.FieldModifiedAt, constant.FieldModifiedBy,
		model.FieldID, model.FieldGGPointsBalance,
	)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"id":          customerID,
		"delta":       delta,
		"modified_at": timezone.Now(),
		"modified_by": modifiedBy,
	}

	result, err := repo.db.Write.NamedExecContext(ctx, query, args)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		if errors.Is(err, context.DeadlineExceeded) {
			return 0, failure.UpstreamTimeout("failed to adjust customer points") // nolint:wrapcheck
		}

		return 0, fmt.Errorf("failed to adjust customer points: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to read affected rows (customer): %w", err)
	}

	return affected, nil
}
