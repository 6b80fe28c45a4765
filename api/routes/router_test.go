package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lbarreto/stockpilot-backend/internal/dashboard"
	"github.com/lbarreto/stockpilot-backend/internal/products"
	"github.com/lbarreto/stockpilot-backend/internal/sales"
	"github.com/lbarreto/stockpilot-backend/internal/trash"
	"github.com/lbarreto/stockpilot-backend/pkg/config"
	"github.com/lbarreto/stockpilot-backend/pkg/db"
	"github.com/lbarreto/stockpilot-backend/pkg/logger"
	"github.com/lbarreto/stockpilot-backend/pkg/metrics"
)

var testDBSeq int

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:routes_%d?mode=memory&cache=shared", testDBSeq)
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	for _, schema := range []string{
		`CREATE TABLE IF NOT EXISTS products (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  category TEXT NOT NULL,
  purchase_price NUMERIC NOT NULL DEFAULT 0,
  sale_price NUMERIC NOT NULL DEFAULT 0,
  stock_quantity INTEGER NOT NULL DEFAULT 0,
  min_stock_alert INTEGER NOT NULL DEFAULT 1,
  deleted_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`,
		`CREATE TABLE IF NOT EXISTS sales (
  id TEXT PRIMARY KEY,
  product_id TEXT NOT NULL,
  product_name TEXT NOT NULL,
  quantity_sold INTEGER NOT NULL,
  unit_purchase_price NUMERIC NOT NULL,
  unit_sale_price NUMERIC NOT NULL,
  total_amount NUMERIC NOT NULL,
  profit NUMERIC NOT NULL,
  sale_date DATETIME,
  deleted_at DATETIME,
  created_at DATETIME,
  updated_at DATETIME
);`,
	} {
		require.NoError(t, conn.Exec(schema).Error)
	}
	return conn
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	conn := openTestDB(t)
	client := db.NewFromConn(conn)
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})

	productRepo := products.NewRepository(conn)
	productSvc, err := products.NewService(productRepo)
	require.NoError(t, err)

	saleSvc, err := sales.NewService(sales.NewRepository(conn), productRepo, client)
	require.NoError(t, err)

	trashSvc, err := trash.NewService(trash.NewRepository(conn))
	require.NoError(t, err)

	dashSvc, err := dashboard.NewService(dashboard.NewRepository(conn))
	require.NoError(t, err)

	cfg := &config.Config{App: config.AppConfig{Env: "test", Port: "0"}}
	return NewRouter(cfg, logg, client, metrics.NewHTTPMetrics(), productSvc, saleSvc, trashSvc, dashSvc)
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func decodeBody(t *testing.T, resp *httptest.ResponseRecorder, dest any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

func productPayload() map[string]any {
	return map[string]any{
		"name":            "espresso beans",
		"category":        "coffee",
		"purchase_price":  10,
		"sale_price":      15,
		"stock_quantity":  20,
		"min_stock_alert": 5,
	}
}

func createProduct(t *testing.T, router http.Handler) string {
	t.Helper()
	resp := doJSON(t, router, http.MethodPost, "/api/products", productPayload())
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var created struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &created)
	require.NotEmpty(t, created.ID)
	return created.ID
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestMetricsEndpointExposed(t *testing.T) {
	router := newTestRouter(t)

	doJSON(t, router, http.MethodGet, "/health/live", nil)
	resp := doJSON(t, router, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "http_requests_total")
}

func TestProductLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	id := createProduct(t, router)

	resp := doJSON(t, router, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var listed []map[string]any
	decodeBody(t, resp, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, id, listed[0]["id"])

	update := productPayload()
	update["name"] = "decaf beans"
	resp = doJSON(t, router, http.MethodPut, "/api/products/"+id, update)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	// soft delete hides the product from the active list
	resp = doJSON(t, router, http.MethodDelete, "/api/products/"+id, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	resp = doJSON(t, router, http.MethodGet, "/api/products", nil)
	decodeBody(t, resp, &listed)
	assert.Empty(t, listed)

	resp = doJSON(t, router, http.MethodGet, "/api/trash/products", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var trashed []map[string]any
	decodeBody(t, resp, &trashed)
	require.Len(t, trashed, 1)
	assert.Equal(t, "decaf beans", trashed[0]["name"])

	resp = doJSON(t, router, http.MethodPost, "/api/trash/products/"+id+"/restore", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	// a restored product cannot be purged until it is trashed again
	resp = doJSON(t, router, http.MethodDelete, "/api/trash/products/"+id+"/permanent", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = doJSON(t, router, http.MethodDelete, "/api/products/"+id, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	resp = doJSON(t, router, http.MethodDelete, "/api/trash/products/"+id+"/permanent", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/trash/products", nil)
	decodeBody(t, resp, &trashed)
	assert.Empty(t, trashed)
}

func TestProductValidationOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	payload := productPayload()
	payload["name"] = ""
	resp := doJSON(t, router, http.MethodPost, "/api/products", payload)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(t, router, http.MethodPut, "/api/products/not-a-uuid", productPayload())
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(t, router, http.MethodPut, "/api/products/"+uuid.NewString(), productPayload())
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestSaleFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t)
	id := createProduct(t, router)

	resp := doJSON(t, router, http.MethodPost, "/api/sales", map[string]any{
		"product_id":    id,
		"quantity_sold": 3,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var receipt struct {
		Success     bool    `json:"success"`
		TotalAmount float64 `json:"total_amount"`
		Profit      float64 `json:"profit"`
	}
	decodeBody(t, resp, &receipt)
	assert.True(t, receipt.Success)
	assert.Equal(t, 45.0, receipt.TotalAmount)
	assert.Equal(t, 15.0, receipt.Profit)

	resp = doJSON(t, router, http.MethodGet, "/api/products", nil)
	var listed []struct {
		StockQuantity int `json:"stock_quantity"`
	}
	decodeBody(t, resp, &listed)
	require.Len(t, listed, 1)
	assert.Equal(t, 17, listed[0].StockQuantity)

	// oversell is rejected and leaves stock alone
	resp = doJSON(t, router, http.MethodPost, "/api/sales", map[string]any{
		"product_id":    id,
		"quantity_sold": 100,
	})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/api/sales", map[string]any{
		"product_id":    uuid.NewString(),
		"quantity_sold": 1,
	})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/sales", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var salesList []map[string]any
	decodeBody(t, resp, &salesList)
	assert.Len(t, salesList, 1)
}

func TestClearHistoryZerosDashboard(t *testing.T) {
	router := newTestRouter(t)
	id := createProduct(t, router)

	resp := doJSON(t, router, http.MethodPost, "/api/sales", map[string]any{
		"product_id":    id,
		"quantity_sold": 3,
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var stats struct {
		TotalProducts int     `json:"total_products"`
		DailySales    float64 `json:"daily_sales"`
		DailyProfit   float64 `json:"daily_profit"`
	}
	resp = doJSON(t, router, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	decodeBody(t, resp, &stats)
	assert.Equal(t, 1, stats.TotalProducts)
	assert.Equal(t, 45.0, stats.DailySales)
	assert.Equal(t, 15.0, stats.DailyProfit)

	resp = doJSON(t, router, http.MethodDelete, "/api/sales/clear-history", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(t, router, http.MethodGet, "/api/dashboard/stats", nil)
	decodeBody(t, resp, &stats)
	assert.Equal(t, 0.0, stats.DailySales)
	assert.Equal(t, 0.0, stats.DailyProfit)

	resp = doJSON(t, router, http.MethodGet, "/api/trash/sales", nil)
	var trashedSales []map[string]any
	decodeBody(t, resp, &trashedSales)
	assert.Len(t, trashedSales, 1)
}

func TestErrorWireShape(t *testing.T) {
	router := newTestRouter(t)

	resp := doJSON(t, router, http.MethodPost, "/api/sales", map[string]any{
		"product_id":    uuid.NewString(),
		"quantity_sold": 1,
	})
	require.Equal(t, http.StatusNotFound, resp.Code)

	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "product not found", body.Error)
}
