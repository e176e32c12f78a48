package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"restoran/internal/handlers"
	"restoran/internal/models"
	"restoran/internal/repositories"
	"restoran/internal/services"
	"restoran/pkg/telegram"
)

// setupApp builds a Fiber app over an in-memory SQLite store, with the
// order pipeline pointed at the given Telegram stub URL. Routes are
// registered the same way main does: literal routes before the
// category wildcards.
func setupApp(t *testing.T, telegramURL string) (*fiber.App, repositories.ProductRepository) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}))

	productRepo := repositories.NewGORMProductRepository(db)

	notifier := telegram.NewClient(telegram.Config{
		BaseURL: telegramURL,
		Token:   "test-token",
		ChatID:  "42",
	})

	catalogService := services.NewCatalogService(productRepo)
	orderService := services.NewOrderService(notifier, nil)

	catalogHandler := handlers.NewCatalogHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService)

	app := fiber.New()
	orderHandler.RegisterRoutes(app)
	catalogHandler.RegisterRoutes(app)

	seedProductsForTest(t, productRepo)

	return app, productRepo
}

// seedProductsForTest populates the catalog with a known fixture set.
func seedProductsForTest(t *testing.T, repo repositories.ProductRepository) {
	t.Helper()
	products := []models.Product{
		{ID: "food-1", Name: "Osh", Price: 35000, Img: "/images/osh.png", Category: "foods"},
		{ID: "food-2", Name: "Manti", Price: 25000, Img: "/images/manti.png", Category: "foods"},
		{ID: "drink-1", Name: "Tea", Price: 3000, Img: "/images/tea.png", Category: "drinks"},
	}
	require.NoError(t, repo.CreateBatch(products))
}

// telegramStub fakes the Bot API sendMessage endpoint, recording the
// last message text it received.
type telegramStub struct {
	server   *httptest.Server
	status   int
	lastText string
}

func newTelegramStub() *telegramStub {
	stub := &telegramStub{status: http.StatusOK}
	stub.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			ChatID string `json:"chat_id"`
			Text   string `json:"text"`
		}
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &payload)
		stub.lastText = payload.Text
		w.WriteHeader(stub.status)
	}))
	return stub
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
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

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func listCategory(t *testing.T, app *fiber.App, category string) (*http.Response, []models.Product) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/"+category, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var products []models.Product
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if resp.StatusCode == http.StatusOK {
		require.NoError(t, json.Unmarshal(raw, &products))
	}
	return resp, products
}

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestListCategory(t *testing.T) {
	stub := newTelegramStub()
	defer stub.server.Close()
	app, _ := setupApp(t, stub.server.URL)

	resp, products := listCategory(t, app, "foods")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, models.CategoryKey("foods"), p.Category)
	}

	// Unknown categories are empty arrays, not errors.
	resp, products = listCategory(t, app, "pizza")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, products)
}

func TestListReservedOrdersCategory(t *testing.T) {
	stub := newTelegramStub()
	defer stub.server.Close()
	app, _ := setupApp(t, stub.server.URL)

	resp, body := doJSON(t, app, http.MethodGet, "/orders", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "reserved")
}

func TestCreateProduct(t *testing.T) {
	stub := newTelegramStub()
	defer stub.server.Close()
	app, _ := setupApp(t, stub.server.URL)

	// String price is coerced, and the body's category is overridden by
	// the path segment.
	resp, body := doJSON(t, app, http.MethodPost, "/drinks", map[string]interface{}{
		"name":     "Kofe",
		"price":    "15000",
		"img":      "/images/kofe.png",
		"category": "foods",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "drinks", body["category"])
	assert.Equal(t, float64(15000), body["price"])
	assert.NotEmpty(t, body["id"])

	_, products := listCategory(t, app, "drinks")
	assert.Len(t, products, 2)
}

func TestUpdatePriceByName(t *testing.T) {
	stub := newTelegramStub()
	defer stub.server.Close()
	app, _ := setupApp(t, stub.server.URL)

	resp, body := doJSON(t, app, http.MethodPut, "/drinks/update-special", map[string]interface{}{
		"name":  "Tea",
		"price": "20000",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(20000), body["price"])

	// The (category, name) pair must match: right name, wrong category.
	resp, body = doJSON(t, app, http.MethodPut, "/foods/update-special", map[string]interface{}{
		"name":  "Tea",
		"price": "9000",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Product not found", body["message"])
}

func TestUpdateByID_IgnoresPathCategory(t *testing.T) {
	stub := newTelegramStub()
	defer stub.server.Close()
	app, repo := setupApp(t, stub.server.URL)

	// drink-1 is a drinks record, but the path says foods: the id alone
	// picks the target.
	resp, body := doJSON(t, app, http.MethodPut, "/foods/update-by-id/drink-1", map[string]interface{}{
		"price": "4500",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(4500), body["price"])
	// Fields absent from the body are untouched.
	assert.Equal(t, "Tea", body["name"])
	assert.Equal(t, "drinks", body["category"])

	updated, err := repo.GetByID("drink-1")
	require.NoError(t, err)
	assert.Equal(t, models.Price(4500), updated.Price)

	resp, body = doJSON(t, app, http.MethodPut, "/foods/update-by-id/nope", map[string]interface{}{
		"price": "1",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "ID not found", body["message"])
}

func TestUpdateAllPrices(t *testing.T) {
	stub := newTelegramStub()
	defer stub.server.Close()
	app, repo := setupApp(t, stub.server.URL)

	resp, body := doJSON(t, app, http.MethodPut, "/foods/update-all-prices", map[string]interface{}{
		"price": "5000",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "All prices updated", body["message"])

	_, foods := listCategory(t, app, "foods")
	for _, p := range foods {
		assert.Equal(t, models.Price(5000), p.Price)
	}

	// Other categories are untouched.
	drink, err := repo.GetByID("drink-1")
	require.NoError(t, err)
	assert.Equal(t, models.Price(3000), drink.Price)
}

func TestDeleteProduct_IgnoresPathCategory(t *testing.T) {
	stub := newTelegramStub()
	defer stub.server.Close()
	app, repo := setupApp(t, stub.server.URL)

	// Deleting a foods record through the drinks path still deletes it.
	resp, body := doJSON(t, app, http.MethodDelete, "/drinks/food-1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Deleted", body["message"])

	_, err := repo.GetByID("food-1")
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	// Deleting an unknown id is still a confirmation, by contract.
	resp, _ = doJSON(t, app, http.MethodDelete, "/drinks/never-existed", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSubmitOrder(t *testing.T) {
	stub := newTelegramStub()
	defer stub.server.Close()
	app, _ := setupApp(t, stub.server.URL)

	resp, body := doJSON(t, app, http.MethodPost, "/orders/new", map[string]interface{}{
		"customer": map[string]string{
			"name":  "Aziza",
			"phone": "+998901234567",
		},
		"items": []map[string]interface{}{
			{"name": "Osh", "quantity": 2},
			{"name": "Tea", "quantity": 1},
		},
		"totalPrice": 73000,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Order sent to staff", body["message"])

	assert.Contains(t, stub.lastText, "1. Osh x 2")
	assert.Contains(t, stub.lastText, "2. Tea x 1")
	assert.Contains(t, stub.lastText, "73,000 so'm")
	// Address was omitted, so the placeholder shows up.
	assert.Contains(t, stub.lastText, "<b>Address:</b> unknown")
}

func TestSubmitOrder_MissingCustomer(t *testing.T) {
	stub := newTelegramStub()
	defer stub.server.Close()
	app, _ := setupApp(t, stub.server.URL)

	resp, _ := doJSON(t, app, http.MethodPost, "/orders/new", map[string]interface{}{
		"items":      []map[string]interface{}{{"name": "Osh", "quantity": 1}},
		"totalPrice": 35000,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, stub.lastText, "<b>Customer:</b> unknown")
	assert.Contains(t, stub.lastText, "<b>Phone:</b> unknown")
}

func TestSubmitOrder_DispatchFailure(t *testing.T) {
	stub := newTelegramStub()
	defer stub.server.Close()
	app, _ := setupApp(t, stub.server.URL)

	stub.status = http.StatusBadGateway

	resp, body := doJSON(t, app, http.MethodPost, "/orders/new", map[string]interface{}{
		"customer":   map[string]string{"name": "Aziza"},
		"items":      []map[string]interface{}{{"name": "Osh", "quantity": 1}},
		"totalPrice": 35000,
	})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	// The root cause stays server-side; callers get a generic error.
	assert.Equal(t, "Failed to send order notification", body["error"])
}

func TestOrderRouteNotShadowedByCategoryRoutes(t *testing.T) {
	stub := newTelegramStub()
	defer stub.server.Close()
	app, repo := setupApp(t, stub.server.URL)

	before, err := repo.Count()
	require.NoError(t, err)

	resp, _ := doJSON(t, app, http.MethodPost, "/orders/new", map[string]interface{}{
		"customer":   map[string]string{"name": "Aziza"},
		"items":      []map[string]interface{}{{"name": "Osh", "quantity": 1}},
		"totalPrice": 35000,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Order submission never writes to the catalog.
	after, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}
