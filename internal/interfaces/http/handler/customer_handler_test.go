package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	partnerapp "github.com/pedidos/backend/internal/application/partner"
	"github.com/pedidos/backend/internal/domain/partner"
	"github.com/pedidos/backend/internal/domain/shared"
	"github.com/pedidos/backend/internal/interfaces/http/dto"
)

// stubCustomerRepository keeps customers in memory
type stubCustomerRepository struct {
	customers map[string]*partner.Customer
	nextID    string
}

func newStubCustomerRepository() *stubCustomerRepository {
	return &stubCustomerRepository{customers: map[string]*partner.Customer{}, nextID: "cust-1"}
}

func (r *stubCustomerRepository) Create(_ context.Context, customer *partner.Customer) (string, error) {
	id := r.nextID
	stored := *customer
	stored.ID = id
	r.customers[id] = &stored
	return id, nil
}

func (r *stubCustomerRepository) FindByID(_ context.Context, id string) (*partner.Customer, error) {
	customer, ok := r.customers[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return customer, nil
}

func (r *stubCustomerRepository) FindAll(_ context.Context) ([]partner.Customer, error) {
	out := make([]partner.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		out = append(out, *c)
	}
	return out, nil
}

func customerTestRouter(repo partner.CustomerRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	api := engine.Group("/api/v1")
	NewCustomerHandler(partnerapp.NewCustomerService(repo)).RegisterRoutes(api)
	return engine
}

func TestCustomerHandler_Create(t *testing.T) {
	t.Run("returns 201 with the stored customer", func(t *testing.T) {
		engine := customerTestRouter(newStubCustomerRepository())

		body := `{"first_name":"Maria","last_name":"Lopez","whatsapp":"+52 55 1234 5678"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/customers", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)

		data := resp.Data.(map[string]any)
		assert.Equal(t, "cust-1", data["id"])
		assert.Equal(t, "Maria Lopez", data["full_name"])
		assert.Equal(t, "525512345678", data["whatsapp"])
	})

	t.Run("returns 400 on missing fields", func(t *testing.T) {
		engine := customerTestRouter(newStubCustomerRepository())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/customers", strings.NewReader(`{"first_name":"Maria"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("returns 400 on invalid phone", func(t *testing.T) {
		engine := customerTestRouter(newStubCustomerRepository())

		body := `{"first_name":"Maria","last_name":"Lopez","whatsapp":"not-a-phone"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/customers", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, "INVALID_WHATSAPP", resp.Error.Code)
	})
}

func TestCustomerHandler_GetByID(t *testing.T) {
	t.Run("returns 404 for unknown customer", func(t *testing.T) {
		engine := customerTestRouter(newStubCustomerRepository())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/ghost", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "NOT_FOUND", resp.Error.Code)
	})
}
