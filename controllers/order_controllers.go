package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kafekita/pos-app/models"
	"github.com/kafekita/pos-app/services"
	"github.com/kafekita/pos-app/storage"
	"github.com/kafekita/pos-app/utils"
)

type OrderController struct {
	Store *storage.Gateway
	Svc   *services.OrderService
}

func NewOrderController(store *storage.Gateway, svc *services.OrderService) *OrderController {
	return &OrderController{Store: store, Svc: svc}
}

// GetAllOrders lists order history, most recent first.
func (oc *OrderController) GetAllOrders(c *gin.Context) {
	orders, err := oc.Store.LoadOrders()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of orders", orders)
}

func (oc *OrderController) GetOrderByID(c *gin.Context) {
	id := c.Param("order_id")

	orders, err := oc.Store.LoadOrders()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	for _, order := range orders {
		if order.ID == id {
			utils.RespondJSON(c, http.StatusOK, "Order detail", order)
			return
		}
	}
	respondServiceError(c, services.ErrOrderNotFound)
}

// Checkout commits the current cart as a new order.
func (oc *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Svc.Checkout(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %s committed, total %s", order.ID, utils.FormatCurrencyIDR(order.TotalAmount))
	utils.RespondJSON(c, http.StatusCreated, "Order created", order)
}

// UpdateOrder replaces an order's item list and payment fields,
// reconciling stock by the quantity difference.
func (oc *OrderController) UpdateOrder(c *gin.Context) {
	var edited models.Order
	if err := c.ShouldBindJSON(&edited); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	edited.ID = c.Param("order_id")

	order, reconciliation, err := oc.Svc.Update(edited)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Order updated", gin.H{
		"order":          order,
		"reconciliation": reconciliation,
	})
}

// VoidOrder deletes an order and returns its stock. Reaching this
// endpoint is the confirmed intent; the blocking "are you sure" prompt
// lives in the UI.
func (oc *OrderController) VoidOrder(c *gin.Context) {
	id := c.Param("order_id")

	reconciliation, err := oc.Svc.Void(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Order %s voided, stock returned", id)
	utils.RespondJSON(c, http.StatusOK, "Order voided", gin.H{
		"id":             id,
		"reconciliation": reconciliation,
	})
}

// GetReceipt renders the order as printable fixed-width text.
func (oc *OrderController) GetReceipt(c *gin.Context) {
	id := c.Param("order_id")

	orders, err := oc.Store.LoadOrders()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	settings, err := oc.Store.LoadSettings()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	for _, order := range orders {
		if order.ID == id {
			c.String(http.StatusOK, services.RenderReceipt(order, settings))
			return
		}
	}
	respondServiceError(c, services.ErrOrderNotFound)
}
