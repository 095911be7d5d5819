// Package handlers はHTTPリクエストをリポジトリ操作へつなぐGinハンドラーを提供します。
// ハンドラーは具体的なバックエンドではなく、リポジトリインターフェースに対して書かれています。
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lumenyuto/todo/internal/models"
	"github.com/lumenyuto/todo/internal/repositories"
)

// UserHandler はユーザー関連のハンドラーを管理します。
type UserHandler struct {
	userRepo repositories.UserRepository
}

// NewUserHandler は新しいUserHandlerを作成します。
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// CreateUserHandler は POST /users を処理します。
func (h *UserHandler) CreateUserHandler(c *gin.Context) {
	var payload models.CreateUser
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	user, err := h.userRepo.Create(&payload)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// GetUsersHandler は GET /users を処理します。
func (h *UserHandler) GetUsersHandler(c *gin.Context) {
	users, err := h.userRepo.All()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// FindUserHandler は GET /users/:name を処理します。名前は完全一致です。
func (h *UserHandler) FindUserHandler(c *gin.Context) {
	user, err := h.userRepo.FindByName(c.Param("name"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, user)
}
