package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// RegisterSwaggerDocs registers Swagger documentation routes
// @Summary Swagger documentation
// @Description Swagger API documentation
// @Tags Swagger
// @Success 200 {string} string "Swagger UI"
// @Router /swagger/ [get]
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	// Swagger UI
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}

// Login godoc
// @Summary Customer login
// @Description Authenticate customer and get JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Login credentials"
// @Success 200 {object} object{token=string,customer=object}
// @Failure 401 {object} object{message=string}
// @Router /auth/login [post]
func (h *CustomerHandler) LoginDoc() {}

// CreateCustomer godoc
// @Summary Create a new customer
// @Description Register a customer with a unique email
// @Tags Customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,password=string} true "Customer data"
// @Success 201 {object} object{id=int,name=string,email=string,created_at=string,updated_at=string}
// @Failure 400 {object} object{message=string}
// @Router /customers [post]
func (h *CustomerHandler) CreateCustomerDoc() {}

// ListCustomers godoc
// @Summary List customers
// @Description Paginated customer listing
// @Tags Customers
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page (default 1)"
// @Param perPage query int false "Page size (default 10)"
// @Success 200 {object} object{data=array,page=int,perPage=int,lastPage=int,total=int}
// @Router /customers [get]
func (h *CustomerHandler) ListCustomersDoc() {}

// GetCustomer godoc
// @Summary Get customer by ID
// @Description Get a single customer record
// @Tags Customers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} object{id=int,name=string,email=string}
// @Failure 404 {object} object{message=string}
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomerDoc() {}

// UpdateCustomer godoc
// @Summary Update customer
// @Description Update a customer's name, email or password
// @Tags Customers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Customer ID"
// @Param request body object{name=string,email=string,password=string} true "Update data"
// @Success 200 {object} object{id=int,name=string,email=string}
// @Failure 400 {object} object{message=string}
// @Failure 404 {object} object{message=string}
// @Router /customers/{id} [put]
func (h *CustomerHandler) UpdateCustomerDoc() {}

// DeleteCustomer godoc
// @Summary Delete customer
// @Description Remove a customer record
// @Tags Customers
// @Security BearerAuth
// @Produce json
// @Param id path int true "Customer ID"
// @Success 200 {object} object{}
// @Failure 404 {object} object{message=string}
// @Router /customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomerDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string}
// @Failure 503 {object} object{status=string,error=string}
// @Router /health [get]
func (h *CustomerHandler) HealthCheckDoc() {}
