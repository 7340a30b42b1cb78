package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelvinmusselli/favoriteProducts/internal/customer/domain"
	"github.com/kelvinmusselli/favoriteProducts/internal/customer/repository"
	"github.com/kelvinmusselli/favoriteProducts/pkg/auth"
)

func setupRouter(t *testing.T) (*mux.Router, *repository.MemoryCustomerRepository) {
	t.Helper()
	repo := repository.NewMemoryCustomerRepository()
	handler := NewCustomerHandler(repo, nil)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router, repo
}

func doRequest(t *testing.T, router *mux.Router, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func testToken(t *testing.T) string {
	t.Helper()
	token, err := auth.GenerateToken(1, "tester@x.com")
	require.NoError(t, err)
	return token
}

func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["message"]
}

func TestCreateCustomerEndpoint(t *testing.T) {
	router, _ := setupRouter(t)
	token := testToken(t)

	rec := doRequest(t, router, "POST", "/customers", map[string]string{
		"name":     "Ana",
		"email":    "ana@x.com",
		"password": "secret123",
	}, token)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "ana@x.com", created.Email)
	// Password hash never leaves the service
	assert.NotContains(t, rec.Body.String(), "secret123")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestCreateCustomerDuplicateEmailEndpoint(t *testing.T) {
	router, _ := setupRouter(t)
	token := testToken(t)

	rec := doRequest(t, router, "POST", "/customers", map[string]string{
		"name": "Ana", "email": "ana@x.com", "password": "secret123",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, "POST", "/customers", map[string]string{
		"name": "Bia", "email": "ana@x.com", "password": "secret456",
	}, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Duplicated email", decodeMessage(t, rec))
}

func TestCustomerLifecycleEndpoint(t *testing.T) {
	router, _ := setupRouter(t)
	token := testToken(t)

	rec := doRequest(t, router, "POST", "/customers", map[string]string{
		"name": "Ana", "email": "ana@x.com", "password": "secret123",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created domain.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	path := fmt.Sprintf("/customers/%d", created.ID)

	rec = doRequest(t, router, "GET", path, nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, "DELETE", path, nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	// Fetching a destroyed customer reports not found
	rec = doRequest(t, router, "GET", path, nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Customer not found!", decodeMessage(t, rec))

	rec = doRequest(t, router, "DELETE", path, nil, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Customer not found!", decodeMessage(t, rec))
}

func TestUpdateCustomerEndpoint(t *testing.T) {
	router, _ := setupRouter(t)
	token := testToken(t)

	rec := doRequest(t, router, "POST", "/customers", map[string]string{
		"name": "Ana", "email": "ana@x.com", "password": "secret123",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created domain.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doRequest(t, router, "PUT", fmt.Sprintf("/customers/%d", created.ID), map[string]string{
		"name": "Ana Maria",
	}, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated domain.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Ana Maria", updated.Name)
	assert.Equal(t, "ana@x.com", updated.Email)

	rec = doRequest(t, router, "PUT", "/customers/999", map[string]string{
		"name": "Nobody",
	}, token)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Customer not found!", decodeMessage(t, rec))
}

func TestListCustomersEndpoint(t *testing.T) {
	router, _ := setupRouter(t)
	token := testToken(t)

	for i := 1; i <= 12; i++ {
		rec := doRequest(t, router, "POST", "/customers", map[string]string{
			"name":     fmt.Sprintf("Customer %d", i),
			"email":    fmt.Sprintf("customer%d@x.com", i),
			"password": "secret123",
		}, token)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(t, router, "GET", "/customers", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Data     []domain.Customer `json:"data"`
		Page     int               `json:"page"`
		PerPage  int               `json:"perPage"`
		LastPage int               `json:"lastPage"`
		Total    int64             `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 10, page.PerPage)
	assert.Equal(t, 2, page.LastPage)
	assert.Equal(t, int64(12), page.Total)
	assert.Len(t, page.Data, 10)

	rec = doRequest(t, router, "GET", "/customers?page=2&perPage=5", nil, token)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 5, page.PerPage)
	assert.Equal(t, 3, page.LastPage)
}

func TestCustomerEndpointsRequireAuth(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doRequest(t, router, "GET", "/customers", nil, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, "POST", "/customers", map[string]string{
		"name": "Ana", "email": "ana@x.com", "password": "secret123",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest("GET", "/customers", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestLoginEndpoint(t *testing.T) {
	router, _ := setupRouter(t)
	token := testToken(t)

	rec := doRequest(t, router, "POST", "/customers", map[string]string{
		"name": "Ana", "email": "ana@x.com", "password": "secret123",
	}, token)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, router, "POST", "/auth/login", map[string]string{
		"email": "ana@x.com", "password": "secret123",
	}, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Token)

	rec = doRequest(t, router, "POST", "/auth/login", map[string]string{
		"email": "ana@x.com", "password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
