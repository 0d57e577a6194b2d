package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"adspot/infras/otel"
	"adspot/infras/postgres"
	"adspot/internal/domains/space/model"
	gDto "adspot/shared/dto"
	gRepo "adspot/shared/repository"
)

// NotDeletedByID filters a space by id, excluding soft-deleted rows. Soft
// deletion is an explicit filter, never ambient query rewriting.
func NotDeletedByID(id string) gDto.FilterGroup {
	return NotDeleted(gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Value:    id,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	})
}

// NotDeleted appends the soft-delete exclusion to an existing filter group.
func NotDeleted(filter gDto.FilterGroup) gDto.FilterGroup {
	filter.Filters = append(filter.Filters, gDto.Filter{
		Field:    model.FieldDeletedAt,
		Operator: gDto.FilterIsNull,
		Table:    model.TableName,
	})

	if filter.Operator == "" {
		filter.Operator = gDto.FilterGroupOperatorAnd
	}

	return filter
}

type Space interface {
	Insert(ctx context.Context, model model.Space) error
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Space, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Space, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Space]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Space {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Space](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
