package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lumenyuto/todo/internal/models"
	"github.com/lumenyuto/todo/internal/repositories"
)

// TodoHandler はTodo関連のハンドラーを管理します。
type TodoHandler struct {
	todoRepo repositories.TodoRepository
}

// NewTodoHandler は新しいTodoHandlerを作成します。
func NewTodoHandler(todoRepo repositories.TodoRepository) *TodoHandler {
	return &TodoHandler{todoRepo: todoRepo}
}

// CreateTodoHandler は POST /todos を処理します。所有ユーザーはボディのuser_idです。
func (h *TodoHandler) CreateTodoHandler(c *gin.Context) {
	var payload models.CreateTodo
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	todo, err := h.todoRepo.Create(&payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create todo"})
		return
	}

	c.JSON(http.StatusCreated, todo)
}

// GetTodosHandler は GET /todos?user_id= を処理します。
func (h *TodoHandler) GetTodosHandler(c *gin.Context) {
	userID, ok := userIDFromQuery(c)
	if !ok {
		return
	}

	todos, err := h.todoRepo.All(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch todos"})
		return
	}

	c.JSON(http.StatusOK, todos)
}

// GetTodoByIDHandler は GET /todos/:id を処理します。
func (h *TodoHandler) GetTodoByIDHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	todo, err := h.todoRepo.Find(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch todo"})
		return
	}

	c.JSON(http.StatusOK, todo)
}

// UpdateTodoHandler は PATCH /todos/:id を処理します。
// ボディに含まれないフィールドは更新されません。
func (h *TodoHandler) UpdateTodoHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	var payload models.UpdateTodo
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "details": err.Error()})
		return
	}

	todo, err := h.todoRepo.Update(id, &payload)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update todo"})
		return
	}

	c.JSON(http.StatusOK, todo)
}

// DeleteTodoHandler は DELETE /todos/:id を処理します。
func (h *TodoHandler) DeleteTodoHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format"})
		return
	}

	if err := h.todoRepo.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Todo not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete todo"})
		return
	}

	c.Status(http.StatusNoContent)
}
