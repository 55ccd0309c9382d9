package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kafekita/pos-app/services"
	"github.com/kafekita/pos-app/storage"
	"github.com/kafekita/pos-app/utils"
)

type CartController struct {
	Store *storage.Gateway
	Cart  *services.Cart
}

func NewCartController(store *storage.Gateway, cart *services.Cart) *CartController {
	return &CartController{Store: store, Cart: cart}
}

// GetCart returns the pending lines plus a totals preview under the
// current settings. The preview is display-only; checkout recomputes.
func (cc *CartController) GetCart(c *gin.Context) {
	items := cc.Cart.Items()

	settings, err := cc.Store.LoadSettings()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	lines := make([]services.PriceLine, len(items))
	for i, it := range items {
		lines[i] = services.PriceLine{Price: it.Price, Quantity: it.Quantity}
	}
	totals := services.ComputeTotals(lines, services.PricingConfigFromSettings(settings))

	utils.RespondJSON(c, http.StatusOK, "Cart contents", gin.H{
		"items":  items,
		"totals": totals,
	})
}

// AddItem puts one unit of a catalog product in the cart.
func (cc *CartController) AddItem(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	products, err := cc.Store.LoadProducts()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	for _, p := range products {
		if p.ID == input.ProductID {
			if err := cc.Cart.AddItem(p); err != nil {
				respondServiceError(c, err)
				return
			}
			utils.RespondJSON(c, http.StatusOK, "Item added", cc.Cart.Items())
			return
		}
	}
	respondServiceError(c, services.ErrProductNotFound)
}

func (cc *CartController) UpdateQuantity(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId" binding:"required"`
		Delta     int    `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := cc.Cart.UpdateQuantity(input.ProductID, input.Delta); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Cart updated", cc.Cart.Items())
}

func (cc *CartController) ClearCart(c *gin.Context) {
	cc.Cart.Clear()
	utils.RespondJSON(c, http.StatusOK, "Cart cleared", nil)
}
