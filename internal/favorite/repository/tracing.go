package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kelvinmusselli/favoriteProducts/internal/favorite/domain"
)

var tracer = otel.Tracer("favorite-repository")

// TracingFavoriteRepository decorates a FavoriteRepository with spans
type TracingFavoriteRepository struct {
	next domain.FavoriteRepository
}

// NewTracingFavoriteRepository wraps a repository with tracing
func NewTracingFavoriteRepository(next domain.FavoriteRepository) *TracingFavoriteRepository {
	return &TracingFavoriteRepository{next: next}
}

func (r *TracingFavoriteRepository) Create(ctx context.Context, favorite *domain.Favorite) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(
			attribute.Int("customer.id", int(favorite.CustomerID)),
			attribute.Int("product.id", int(favorite.ProductID)),
		))
	defer span.End()

	err := r.next.Create(ctx, favorite)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (r *TracingFavoriteRepository) FindByPair(ctx context.Context, customerID, productID uint) (*domain.Favorite, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByPair",
		trace.WithAttributes(
			attribute.Int("customer.id", int(customerID)),
			attribute.Int("product.id", int(productID)),
		))
	defer span.End()

	favorite, err := r.next.FindByPair(ctx, customerID, productID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Bool("result.found", favorite != nil))
	return favorite, nil
}

func (r *TracingFavoriteRepository) FindByCustomer(ctx context.Context, customerID uint, limit, offset int) ([]domain.Favorite, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByCustomer",
		trace.WithAttributes(
			attribute.Int("customer.id", int(customerID)),
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		))
	defer span.End()

	favorites, err := r.next.FindByCustomer(ctx, customerID, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("result.count", len(favorites)))
	return favorites, nil
}

func (r *TracingFavoriteRepository) Delete(ctx context.Context, customerID, productID uint) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(
			attribute.Int("customer.id", int(customerID)),
			attribute.Int("product.id", int(productID)),
		))
	defer span.End()

	err := r.next.Delete(ctx, customerID, productID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (r *TracingFavoriteRepository) DeleteByCustomer(ctx context.Context, customerID uint) error {
	ctx, span := tracer.Start(ctx, "repository.DeleteByCustomer",
		trace.WithAttributes(attribute.Int("customer.id", int(customerID))))
	defer span.End()

	err := r.next.DeleteByCustomer(ctx, customerID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (r *TracingFavoriteRepository) CountByCustomer(ctx context.Context, customerID uint) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.CountByCustomer",
		trace.WithAttributes(attribute.Int("customer.id", int(customerID))))
	defer span.End()

	count, err := r.next.CountByCustomer(ctx, customerID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}
	span.SetAttributes(attribute.Int64("result.count", count))
	return count, nil
}
