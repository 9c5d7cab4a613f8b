package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/NelushGayashan/demo-api/models"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.User{},
		&models.Order{},
		&models.OrderItem{},
	))

	r := gin.New()
	SetupRoutes(r, db)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestProductEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("create returns 201 with Location", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/v1/products",
			`{"name":"Widget","price":9.99,"category":"Tools","sku":"WID-001"}`, nil)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/v1/products/1", w.Header().Get("Location"))
		resp := decodeEnvelope(t, w)
		assert.True(t, resp.Success)
	})

	t.Run("validation failure returns 400", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/v1/products",
			`{"name":"Freebie","price":0}`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeEnvelope(t, w)
		assert.False(t, resp.Success)
	})

	t.Run("duplicate sku returns 409", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/v1/products",
			`{"name":"Gadget","price":4.99,"sku":"WID-001"}`, nil)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("list echoes tracing headers and total count", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/v1/products?category=tools", "",
			map[string]string{"X-Request-ID": "req-123"})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
		assert.Equal(t, "1.0", w.Header().Get("X-API-Version"))
		assert.Equal(t, "1", w.Header().Get("X-Total-Count"))
	})

	t.Run("missing request id echoes N/A", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/v1/products", "", nil)

		assert.Equal(t, "N/A", w.Header().Get("X-Request-ID"))
	})

	t.Run("unknown id returns 404 envelope", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/v1/products/4242", "", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeEnvelope(t, w)
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Message, "4242")
	})

	t.Run("update missing product returns 404", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPut, "/api/v1/products/4242",
			`{"name":"Ghost","price":1}`, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete then 404 on re-delete", func(t *testing.T) {
		w := doRequest(t, r, http.MethodDelete, "/api/v1/products/1", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		w = doRequest(t, r, http.MethodDelete, "/api/v1/products/1", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProductUpdateConflict(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/v1/products",
		`{"name":"Widget","price":9.99,"sku":"WID-001"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	w = doRequest(t, r, http.MethodPost, "/api/v1/products",
		`{"name":"Gadget","price":4.99,"sku":"GAD-001"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doRequest(t, r, http.MethodPut, "/api/v1/products/2",
		`{"name":"Gadget","price":4.99,"sku":"WID-001"}`, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Success)
}

func TestUserEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w := doRequest(t, r, http.MethodPost, "/api/v1/users",
		`{"username":"alice","email":"alice@example.com","fullName":"Alice Anderson","country":"Sweden"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("invalid email returns 400", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/v1/users",
			`{"username":"bob","email":"not-an-email"}`, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("duplicate username returns 409", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/v1/users",
			`{"username":"alice","email":"alice2@example.com"}`, nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("lookup by username", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/v1/users/username/alice", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("exists probes", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/v1/users/exists/username/alice", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w)
		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, true, data["exists"])

		w = doRequest(t, r, http.MethodGet, "/api/v1/users/exists/email/nobody@example.com", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		resp = decodeEnvelope(t, w)
		data, ok = resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, false, data["exists"])
	})

	t.Run("search requires name", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/v1/users/search", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestOrderEndpoints(t *testing.T) {
	r := newTestRouter(t)

	t.Run("create defaults status to PENDING", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/v1/orders",
			`{"userId":1,"totalAmount":42.5,"items":[{"productId":1,"quantity":2,"unitPrice":10,"subtotal":20}]}`, nil)

		require.Equal(t, http.StatusCreated, w.Code)
		resp := decodeEnvelope(t, w)
		data, ok := resp.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "PENDING", data["status"])
	})

	t.Run("non-positive item quantity returns 400", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/api/v1/orders",
			`{"userId":1,"totalAmount":10,"items":[{"productId":1,"quantity":0,"unitPrice":10,"subtotal":10}]}`, nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("statuses listing", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/v1/orders/statuses", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w)
		assert.Equal(t, []interface{}{"PENDING"}, resp.Data)
	})

	t.Run("health endpoint", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/api/v1/health", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"UP"`)
	})
}
