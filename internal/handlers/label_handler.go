package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lumenyuto/todo/internal/models"
	"github.com/lumenyuto/todo/internal/repositories"
)

// userIDFromQuery は user_id クエリパラメータを解決します。
// 不正な場合は400を書き込んで false を返します。
func userIDFromQuery(c *gin.Context) (int, bool) {
	userID, err := strconv.Atoi(c.Query("user_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user_id query parameter"})
		return 0, false
	}
	return userID, true
}

// LabelHandler はラベル関連のハンドラーを管理します。
type LabelHandler struct {
	labelRepo repositories.LabelRepository
}

// NewLabelHandler は新しいLabelHandlerを作成します。
func NewLabelHandler(labelRepo repositories.LabelRepository) *LabelHandler {
	return &LabelHandler{labelRepo: labelRepo}
}

// CreateLabelHandler は POST /labels?user_id= を処理します。
func (h *LabelHandler) CreateLabelHandler(c *gin.Context) {
	userID, ok := userIDFromQuery(c)
	if !ok {
		return
	}

	var payload models.CreateLabel
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	label, err := h.labelRepo.Create(userID, &payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create label"})
		return
	}

	c.JSON(http.StatusCreated, label)
}

// GetLabelsHandler は GET /labels?user_id= を処理します。
func (h *LabelHandler) GetLabelsHandler(c *gin.Context) {
	userID, ok := userIDFromQuery(c)
	if !ok {
		return
	}

	labels, err := h.labelRepo.All(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch labels"})
		return
	}

	c.JSON(http.StatusOK, labels)
}

// DeleteLabelHandler は DELETE /labels/:id?user_id= を処理します。
func (h *LabelHandler) DeleteLabelHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	userID, ok := userIDFromQuery(c)
	if !ok {
		return
	}

	if err := h.labelRepo.Delete(id, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Label not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete label"})
		return
	}

	c.Status(http.StatusNoContent)
}
