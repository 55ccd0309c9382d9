package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kafekita/pos-app/models"
	"github.com/kafekita/pos-app/storage"
	"github.com/kafekita/pos-app/utils"
)

type CategoryController struct {
	Store *storage.Gateway
}

func NewCategoryController(store *storage.Gateway) *CategoryController {
	return &CategoryController{Store: store}
}

func (cc *CategoryController) GetAllCategories(c *gin.Context) {
	categories, err := cc.Store.LoadCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of categories", categories)
}

func (cc *CategoryController) CreateCategory(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	if category.Name == "" {
		utils.RespondError(c, http.StatusBadRequest, errors.New("category name is required"))
		return
	}
	if category.ID == "" {
		category.ID = fmt.Sprintf("cat_%d", time.Now().UnixMilli())
	}

	categories, err := cc.Store.LoadCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	categories = append(categories, category)
	if err := cc.Store.SaveCategories(categories); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusCreated, "Category created", category)
}

// DeleteCategory removes a category without touching its products;
// orphaned categoryId references are tolerated and shown as
// "Uncategorized" by the UI.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id := c.Param("cat_id")

	categories, err := cc.Store.LoadCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	for i := range categories {
		if categories[i].ID == id {
			categories = append(categories[:i], categories[i+1:]...)
			if err := cc.Store.SaveCategories(categories); err != nil {
				respondServiceError(c, err)
				return
			}
			utils.RespondJSON(c, http.StatusOK, "Category deleted", gin.H{"id": id})
			return
		}
	}
	utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
}
