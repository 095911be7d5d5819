// Package routesはroutingを行います。
package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/lumenyuto/todo/internal/handlers"
	"github.com/lumenyuto/todo/internal/repositories"
)

// SetupRouter はGinルーターをセットアップし、すべてのエンドポイントを登録します。
// ハンドラーはリポジトリインターフェースに対して配線されるため、
// MySQLバックエンドとインメモリバックエンドのどちらでも同じルーターが動きます。
func SetupRouter(
	todoRepo repositories.TodoRepository,
	labelRepo repositories.LabelRepository,
	userRepo repositories.UserRepository,
) *gin.Engine {
	r := gin.Default()

	// CORS対策 (フロントエンドは localhost:3001 で動作)
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3001"}
	config.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	r.Use(cors.New(config))
	r.Use(RequestIDMiddleware())

	todoHandler := handlers.NewTodoHandler(todoRepo)
	labelHandler := handlers.NewLabelHandler(labelRepo)
	userHandler := handlers.NewUserHandler(userRepo)

	r.GET("/", rootHandler)

	r.POST("/todos", todoHandler.CreateTodoHandler)
	r.GET("/todos", todoHandler.GetTodosHandler)
	r.GET("/todos/:id", todoHandler.GetTodoByIDHandler)
	r.PATCH("/todos/:id", todoHandler.UpdateTodoHandler)
	r.DELETE("/todos/:id", todoHandler.DeleteTodoHandler)

	r.POST("/labels", labelHandler.CreateLabelHandler)
	r.GET("/labels", labelHandler.GetLabelsHandler)
	r.DELETE("/labels/:id", labelHandler.DeleteLabelHandler)

	r.POST("/users", userHandler.CreateUserHandler)
	r.GET("/users", userHandler.GetUsersHandler)
	r.GET("/users/:name", userHandler.FindUserHandler)

	return r
}

func rootHandler(c *gin.Context) {
	c.String(http.StatusOK, "Hello, World!")
}
