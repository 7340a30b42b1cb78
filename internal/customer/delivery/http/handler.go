package http

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kelvinmusselli/favoriteProducts/internal/customer/domain"
	"github.com/kelvinmusselli/favoriteProducts/internal/customer/usecase/command"
	"github.com/kelvinmusselli/favoriteProducts/internal/customer/usecase/query"
)

// EventPublisher publishes customer lifecycle events
type EventPublisher interface {
	command.CustomerCreatedPublisher
	command.CustomerDeletedPublisher
}

var (
	metricsOnce    sync.Once
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	totalCustomers prometheus.Gauge
)

// registerMetrics initializes the Prometheus collectors once per process
// so handler construction stays safe in tests.
func registerMetrics() {
	metricsOnce.Do(func() {
		requestCounter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "customer_service_requests_total",
				Help: "Total number of requests to customer service",
			},
			[]string{"method", "endpoint", "status"},
		)

		requestLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "customer_service_request_duration_seconds",
				Help:    "Duration of customer service requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		)

		totalCustomers = prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "customer_service_customers_total",
				Help: "Number of customers in the system",
			},
		)

		prometheus.MustRegister(requestCounter)
		prometheus.MustRegister(requestLatency)
		prometheus.MustRegister(totalCustomers)
	})
}

// CustomerHandler handles HTTP requests for customers
type CustomerHandler struct {
	// Command handlers
	createHandler *command.CreateCustomerHandler
	loginHandler  *command.LoginCustomerHandler
	updateHandler *command.UpdateCustomerHandler
	deleteHandler *command.DeleteCustomerHandler

	// Query handlers
	getHandler  *query.GetCustomerHandler
	listHandler *query.ListCustomersHandler

	repo domain.CustomerRepository
}

// NewCustomerHandler creates a new customer handler. events may be nil
// when no broker is configured.
func NewCustomerHandler(repo domain.CustomerRepository, events EventPublisher) *CustomerHandler {
	registerMetrics()

	return &CustomerHandler{
		createHandler: command.NewCreateCustomerHandler(repo, events),
		loginHandler:  command.NewLoginCustomerHandler(repo),
		updateHandler: command.NewUpdateCustomerHandler(repo),
		deleteHandler: command.NewDeleteCustomerHandler(repo, events),
		getHandler:    query.NewGetCustomerHandler(repo),
		listHandler:   query.NewListCustomersHandler(repo),
		repo:          repo,
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CustomerHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// Login handles POST /auth/login
func (h *CustomerHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.LoginCustomerCommand{
		Email:    req.Email,
		Password: req.Password,
	}

	response, err := h.loginHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	h.respondJSON(w, http.StatusOK, response)
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.CreateCustomerCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	customer, err := h.createHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.updateCustomerGauge(r.Context())
	h.respondJSON(w, http.StatusCreated, customer)
}

// GetCustomer handles GET /customers/{id}
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	customer, err := h.getHandler.Handle(r.Context(), query.GetCustomerQuery{ID: id})
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, customer)
}

// ListCustomers handles GET /customers
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	q := query.ListCustomersQuery{
		Page:    r.URL.Query().Get("page"),
		PerPage: r.URL.Query().Get("perPage"),
	}

	page, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.updateCustomerGauge(r.Context())
	h.respondJSON(w, http.StatusOK, page)
}

// UpdateCustomer handles PUT /customers/{id}
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd := command.UpdateCustomerCommand{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	customer, err := h.updateHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /customers/{id}
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(r.Context(), command.DeleteCustomerCommand{ID: id}); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.updateCustomerGauge(r.Context())
	h.respondJSON(w, http.StatusOK, map[string]string{})
}

// HealthCheck handles GET /health
func (h *CustomerHandler) HealthCheck(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if db != nil {
			if err := db.PingContext(ctx); err != nil {
				h.respondJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "unhealthy",
					"error":  err.Error(),
				})
				return
			}
		}

		h.respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}
}

// pathID parses the {id} path variable
func (h *CustomerHandler) pathID(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars[name], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid customer ID")
		return 0, false
	}
	return uint(id), true
}

// updateCustomerGauge refreshes the customers gauge
func (h *CustomerHandler) updateCustomerGauge(ctx context.Context) {
	count, err := h.repo.Count(ctx)
	if err == nil {
		totalCustomers.Set(float64(count))
	}
}

// respondDomainError translates domain errors into the response table
func (h *CustomerHandler) respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		h.respondError(w, http.StatusBadRequest, "Duplicated email")
	case errors.Is(err, domain.ErrNotFound):
		h.respondError(w, http.StatusNotFound, "Customer not found!")
	case errors.Is(err, domain.ErrInvalidInput):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrRegistration):
		h.respondError(w, http.StatusBadRequest, "Error registering customer")
	default:
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// respondJSON sends a JSON response
func (h *CustomerHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *CustomerHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"message": message})
}

// RegisterRoutes registers all customer routes
func (h *CustomerHandler) RegisterRoutes(router *mux.Router) {
	// Public routes
	router.HandleFunc("/auth/login", h.metricsMiddleware("/auth/login", h.Login)).Methods("POST")

	// Customer routes
	router.HandleFunc("/customers", h.metricsMiddleware("/customers", AuthMiddleware(h.CreateCustomer))).Methods("POST")
	router.HandleFunc("/customers", h.metricsMiddleware("/customers", AuthMiddleware(h.ListCustomers))).Methods("GET")
	router.HandleFunc("/customers/{id}", h.metricsMiddleware("/customers/{id}", AuthMiddleware(h.GetCustomer))).Methods("GET")
	router.HandleFunc("/customers/{id}", h.metricsMiddleware("/customers/{id}", AuthMiddleware(h.UpdateCustomer))).Methods("PUT")
	router.HandleFunc("/customers/{id}", h.metricsMiddleware("/customers/{id}", AuthMiddleware(h.DeleteCustomer))).Methods("DELETE")
}

// RegisterHealthCheck registers health check endpoint
func (h *CustomerHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", h.HealthCheck(db)).Methods("GET")
}
