package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kafekita/pos-app/models"
	"github.com/kafekita/pos-app/services"
	"github.com/kafekita/pos-app/storage"
	"github.com/kafekita/pos-app/utils"
)

type ProductController struct {
	Store *storage.Gateway
}

func NewProductController(store *storage.Gateway) *ProductController {
	return &ProductController{Store: store}
}

func (pc *ProductController) GetAllProducts(c *gin.Context) {
	products, err := pc.Store.LoadProducts()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of products", products)
}

func validateProduct(p *models.Product) error {
	if p.Name == "" {
		return errors.New("product name is required")
	}
	if p.Price < 0 {
		return errors.New("price must not be negative")
	}
	if p.Stock < 0 || p.InitialStock < 0 {
		return errors.New("stock must not be negative")
	}
	return nil
}

func (pc *ProductController) CreateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if err := validateProduct(&product); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if product.ID == "" {
		product.ID = fmt.Sprintf("prod_%d", time.Now().UnixMilli())
	}

	products, err := pc.Store.LoadProducts()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	for i := range products {
		if products[i].ID == product.ID {
			utils.RespondError(c, http.StatusConflict, errors.New("product id already exists"))
			return
		}
	}

	products = append(products, product)
	if err := pc.Store.SaveProducts(products); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Product created", product)
}

func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id := c.Param("product_id")

	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	product.ID = id
	if err := validateProduct(&product); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	products, err := pc.Store.LoadProducts()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	for i := range products {
		if products[i].ID == id {
			products[i] = product
			if err := pc.Store.SaveProducts(products); err != nil {
				respondServiceError(c, err)
				return
			}
			utils.RespondJSON(c, http.StatusOK, "Product updated", product)
			return
		}
	}
	respondServiceError(c, services.ErrProductNotFound)
}

// DeleteProduct removes a catalog entry. Historical orders keep their
// denormalized item snapshots, so no cascade is needed; stock
// reconciliation for those orders will skip the missing product.
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id := c.Param("product_id")

	products, err := pc.Store.LoadProducts()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	for i := range products {
		if products[i].ID == id {
			products = append(products[:i], products[i+1:]...)
			if err := pc.Store.SaveProducts(products); err != nil {
				respondServiceError(c, err)
				return
			}
			utils.RespondJSON(c, http.StatusOK, "Product deleted", gin.H{"id": id})
			return
		}
	}
	respondServiceError(c, services.ErrProductNotFound)
}
