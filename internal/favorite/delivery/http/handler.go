package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	customerhttp "github.com/kelvinmusselli/favoriteProducts/internal/customer/delivery/http"
	"github.com/kelvinmusselli/favoriteProducts/internal/favorite/domain"
	"github.com/kelvinmusselli/favoriteProducts/internal/favorite/usecase/command"
	"github.com/kelvinmusselli/favoriteProducts/internal/favorite/usecase/query"
)

var (
	metricsOnce    sync.Once
	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
)

func registerMetrics() {
	metricsOnce.Do(func() {
		requestCounter = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "favorite_service_requests_total",
				Help: "Total number of requests to favorite service",
			},
			[]string{"method", "endpoint", "status"},
		)

		requestLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "favorite_service_request_duration_seconds",
				Help:    "Duration of favorite service requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		)

		prometheus.MustRegister(requestCounter)
		prometheus.MustRegister(requestLatency)
	})
}

// FavoriteHandler handles HTTP requests for favorite links
type FavoriteHandler struct {
	addHandler    *command.AddFavoriteHandler
	removeHandler *command.RemoveFavoriteHandler
	listHandler   *query.ListFavoritesHandler
}

// NewFavoriteHandler creates a new favorite handler. gate and publisher
// may be nil when no catalog or broker is configured.
func NewFavoriteHandler(repo domain.FavoriteRepository, gate domain.ProductGate, publisher command.ProductFavoritedPublisher) *FavoriteHandler {
	registerMetrics()

	return &FavoriteHandler{
		addHandler:    command.NewAddFavoriteHandler(repo, gate, publisher),
		removeHandler: command.NewRemoveFavoriteHandler(repo),
		listHandler:   query.NewListFavoritesHandler(repo),
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
func (h *FavoriteHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
		requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
	}
}

// AddFavorite handles POST /customers/{id}/products/{productId}/favorites
func (h *FavoriteHandler) AddFavorite(w http.ResponseWriter, r *http.Request) {
	customerID, productID, ok := h.pathPair(w, r)
	if !ok {
		return
	}

	cmd := command.AddFavoriteCommand{
		CustomerID: customerID,
		ProductID:  productID,
	}

	favorite, err := h.addHandler.Handle(r.Context(), cmd)
	if err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, favorite)
}

// RemoveFavorite handles DELETE /customers/{id}/products/{productId}/favorites
func (h *FavoriteHandler) RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	customerID, productID, ok := h.pathPair(w, r)
	if !ok {
		return
	}

	cmd := command.RemoveFavoriteCommand{
		CustomerID: customerID,
		ProductID:  productID,
	}

	if err := h.removeHandler.Handle(r.Context(), cmd); err != nil {
		h.respondDomainError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{})
}

// ListFavorites handles GET /customers/{id}/favorites
func (h *FavoriteHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid customer ID")
		return
	}

	q := query.ListFavoritesQuery{
		CustomerID: uint(customerID),
		Page:       r.URL.Query().Get("page"),
		PerPage:    r.URL.Query().Get("perPage"),
	}

	page, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.respondJSON(w, http.StatusOK, page)
}

// pathPair parses the {id} and {productId} path variables
func (h *FavoriteHandler) pathPair(w http.ResponseWriter, r *http.Request) (uint, uint, bool) {
	vars := mux.Vars(r)

	customerID, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid customer ID")
		return 0, 0, false
	}

	productID, err := strconv.ParseUint(vars["productId"], 10, 32)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid product ID")
		return 0, 0, false
	}

	return uint(customerID), uint(productID), true
}

// respondDomainError translates domain errors into the response table
func (h *FavoriteHandler) respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrAlreadyFavorited):
		h.respondError(w, http.StatusBadRequest, "The product already exists on the customers favorite list!")
	case errors.Is(err, domain.ErrProductNotFound):
		h.respondError(w, http.StatusNotFound, "Product not found!")
	case errors.Is(err, domain.ErrInvalidInput):
		h.respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.respondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// respondJSON sends a JSON response
func (h *FavoriteHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError sends an error response
func (h *FavoriteHandler) respondError(w http.ResponseWriter, status int, message string) {
	h.respondJSON(w, status, map[string]string{"message": message})
}

// RegisterRoutes registers all favorite routes
func (h *FavoriteHandler) RegisterRoutes(router *mux.Router) {
	auth := customerhttp.AuthMiddleware

	router.HandleFunc("/customers/{id}/products/{productId}/favorites",
		h.metricsMiddleware("/customers/{id}/products/{productId}/favorites", auth(h.AddFavorite))).Methods("POST")
	router.HandleFunc("/customers/{id}/products/{productId}/favorites",
		h.metricsMiddleware("/customers/{id}/products/{productId}/favorites", auth(h.RemoveFavorite))).Methods("DELETE")
	router.HandleFunc("/customers/{id}/favorites",
		h.metricsMiddleware("/customers/{id}/favorites", auth(h.ListFavorites))).Methods("GET")
}
