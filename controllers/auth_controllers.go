package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/kafekita/pos-app/storage"
	"github.com/kafekita/pos-app/utils"
)

// defaultPassword applies until the operator sets their own.
const defaultPassword = "admin"

type AuthController struct {
	Store *storage.Gateway
}

func NewAuthController(store *storage.Gateway) *AuthController {
	return &AuthController{Store: store}
}

func (ac *AuthController) checkPassword(input string) (bool, error) {
	hash, ok, err := ac.Store.LoadPasswordHash()
	if err != nil {
		return false, err
	}
	if !ok {
		return input == defaultPassword, nil
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(input)) == nil, nil
}

// Login checks the till password and returns a session token.
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ok, err := ac.checkPassword(input.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken("admin")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Println("Operator logged in")
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{"token": token})
}

// ChangePassword replaces the stored credential after verifying the
// current one.
func (ac *AuthController) ChangePassword(c *gin.Context) {
	var input struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required,min=4"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ok, err := ac.checkPassword(input.CurrentPassword)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := ac.Store.SavePasswordHash(string(hashed)); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Password updated", nil)
}
