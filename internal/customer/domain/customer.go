package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for the customer lifecycle. Handlers map these to
// status codes; anything else is an unexpected storage failure.
var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("customer not found")
	ErrDuplicateEmail = errors.New("duplicated email")
	ErrRegistration   = errors.New("error registering customer")
)

// Customer represents a customer account (domain model)
type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // Never expose the hash in JSON
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Customer) TableName() string {
	return "customers"
}

// CustomerRepository defines the contract for customer data access.
// FindByEmail and FindByID return ErrNotFound when no row matches;
// Create and Update return ErrDuplicateEmail when the unique email
// index fires, so racing writers surface the same error as the
// service-level pre-check.
type CustomerRepository interface {
	Create(ctx context.Context, customer *Customer) error
	FindByID(ctx context.Context, id uint) (*Customer, error)
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	FindAll(ctx context.Context, limit, offset int) ([]Customer, error)
	Update(ctx context.Context, customer *Customer) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}
