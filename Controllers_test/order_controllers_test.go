package Controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/kafekita/pos-app/controllers"
	"github.com/kafekita/pos-app/models"
	"github.com/kafekita/pos-app/services"
	"github.com/kafekita/pos-app/storage"
	"github.com/kafekita/pos-app/utils"
)

func setupOrderRouter(store *storage.Gateway, cart *services.Cart) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	svc := services.NewOrderService(store, cart)
	cartCtrl := controllers.NewCartController(store, cart)
	orderCtrl := controllers.NewOrderController(store, svc)
	router.POST("/cart/items", cartCtrl.AddItem)
	router.POST("/checkout", orderCtrl.Checkout)
	router.GET("/orders", orderCtrl.GetAllOrders)
	router.DELETE("/orders/:order_id", orderCtrl.VoidOrder)
	router.GET("/orders/:order_id/receipt", orderCtrl.GetReceipt)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, url string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	req, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	assert.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCheckoutVoidReceiptFlow(t *testing.T) {
	utils.InitLogger()
	store := setupTestStore(t)
	assert.NoError(t, store.SaveProducts([]models.Product{
		{ID: "prod_kopi", Name: "Kopi Susu", Price: 18000, CategoryID: "cat_1", Stock: 10},
	}))
	assert.NoError(t, store.SaveSettings(models.CafeSettings{
		Name:         "KafeKita",
		DiscountType: models.DiscountPercent,
		PrinterType:  models.PrinterBrowser,
		PrinterWidth: 32,
	}))
	cart := services.NewCart()
	router := setupOrderRouter(store, cart)

	// Two units in the cart.
	for i := 0; i < 2; i++ {
		w := postJSON(t, router, "/cart/items", gin.H{"productId": "prod_kopi"})
		assert.Equal(t, http.StatusOK, w.Code)
	}

	// Cash checkout.
	w := postJSON(t, router, "/checkout", gin.H{
		"paymentMethod": "cash",
		"cashReceived":  50000,
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	var createResp map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &createResp)
	assert.NoError(t, err)
	data, ok := createResp["data"].(map[string]interface{})
	assert.True(t, ok, "data response must be a map")
	orderID, ok := data["id"].(string)
	assert.True(t, ok, "order id must be a string")
	assert.True(t, strings.HasPrefix(orderID, "ORD-"))
	assert.Equal(t, float64(36000), data["totalAmount"])

	// Stock went down, cart is empty.
	products, err := store.LoadProducts()
	assert.NoError(t, err)
	assert.Equal(t, 8, products[0].Stock)
	assert.Empty(t, cart.Items())

	// Receipt is printable text.
	req, err := http.NewRequest("GET", "/orders/"+orderID+"/receipt", nil)
	assert.NoError(t, err)
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)
	assert.Contains(t, w2.Body.String(), "Kopi Susu")
	assert.Contains(t, w2.Body.String(), "TOTAL")

	// Void returns the stock and removes the order.
	req, err = http.NewRequest("DELETE", "/orders/"+orderID, nil)
	assert.NoError(t, err)
	w2 = httptest.NewRecorder()
	router.ServeHTTP(w2, req)
	assert.Equal(t, http.StatusOK, w2.Code)

	products, err = store.LoadProducts()
	assert.NoError(t, err)
	assert.Equal(t, 10, products[0].Stock)

	orders, err := store.LoadOrders()
	assert.NoError(t, err)
	assert.Empty(t, orders)
}

func TestCheckoutInsufficientCash(t *testing.T) {
	utils.InitLogger()
	store := setupTestStore(t)
	assert.NoError(t, store.SaveProducts([]models.Product{
		{ID: "prod_kopi", Name: "Kopi Susu", Price: 18000, Stock: 10},
	}))
	cart := services.NewCart()
	router := setupOrderRouter(store, cart)

	w := postJSON(t, router, "/cart/items", gin.H{"productId": "prod_kopi"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, router, "/checkout", gin.H{
		"paymentMethod": "cash",
		"cashReceived":  10000,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Nothing committed: history empty, cart intact.
	orders, err := store.LoadOrders()
	assert.NoError(t, err)
	assert.Empty(t, orders)
	assert.Len(t, cart.Items(), 1)
}

func TestVoidUnknownOrder(t *testing.T) {
	utils.InitLogger()
	store := setupTestStore(t)
	router := setupOrderRouter(store, services.NewCart())

	req, err := http.NewRequest("DELETE", "/orders/ORD-nope", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
