package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/lumenyuto/todo/internal/database"
	"github.com/lumenyuto/todo/internal/repositories"
	"github.com/lumenyuto/todo/internal/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db := database.InitDB()
	defer db.Close()

	if err := database.InitSchema(db); err != nil {
		log.Fatalf("Fatal: Failed to initialize schema: %v", err)
	}

	r := routes.SetupRouter(
		repositories.NewMySQLTodoRepository(db),
		repositories.NewMySQLLabelRepository(db),
		repositories.NewMySQLUserRepository(db),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// サーバー起動
	log.Printf("Server listening on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
