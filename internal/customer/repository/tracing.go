package repository

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/kelvinmusselli/favoriteProducts/internal/customer/domain"
)

var tracer = otel.Tracer("customer-repository")

// TracingCustomerRepository decorates a CustomerRepository with spans
type TracingCustomerRepository struct {
	next domain.CustomerRepository
}

// NewTracingCustomerRepository wraps a repository with tracing
func NewTracingCustomerRepository(next domain.CustomerRepository) *TracingCustomerRepository {
	return &TracingCustomerRepository{next: next}
}

func (r *TracingCustomerRepository) Create(ctx context.Context, customer *domain.Customer) error {
	ctx, span := tracer.Start(ctx, "repository.Create",
		trace.WithAttributes(attribute.String("customer.email", customer.Email)))
	defer span.End()

	err := r.next.Create(ctx, customer)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	span.SetAttributes(attribute.Int("customer.id", int(customer.ID)))
	return nil
}

func (r *TracingCustomerRepository) FindByID(ctx context.Context, id uint) (*domain.Customer, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByID",
		trace.WithAttributes(attribute.Int("customer.id", int(id))))
	defer span.End()

	customer, err := r.next.FindByID(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return customer, nil
}

func (r *TracingCustomerRepository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	ctx, span := tracer.Start(ctx, "repository.FindByEmail",
		trace.WithAttributes(attribute.String("customer.email", email)))
	defer span.End()

	customer, err := r.next.FindByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	return customer, nil
}

func (r *TracingCustomerRepository) FindAll(ctx context.Context, limit, offset int) ([]domain.Customer, error) {
	ctx, span := tracer.Start(ctx, "repository.FindAll",
		trace.WithAttributes(
			attribute.Int("query.limit", limit),
			attribute.Int("query.offset", offset),
		))
	defer span.End()

	customers, err := r.next.FindAll(ctx, limit, offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("result.count", len(customers)))
	return customers, nil
}

func (r *TracingCustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	ctx, span := tracer.Start(ctx, "repository.Update",
		trace.WithAttributes(attribute.Int("customer.id", int(customer.ID))))
	defer span.End()

	err := r.next.Update(ctx, customer)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (r *TracingCustomerRepository) Delete(ctx context.Context, id uint) error {
	ctx, span := tracer.Start(ctx, "repository.Delete",
		trace.WithAttributes(attribute.Int("customer.id", int(id))))
	defer span.End()

	err := r.next.Delete(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (r *TracingCustomerRepository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "repository.Count")
	defer span.End()

	count, err := r.next.Count(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return 0, err
	}

	span.SetAttributes(attribute.Int64("result.count", count))
	return count, nil
}
