// Package testutil はテスト用のセットアップヘルパーを提供します。
package testutil

import (
	"database/sql"
	"fmt"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/lumenyuto/todo/internal/database"
	"github.com/lumenyuto/todo/internal/models"
	"github.com/lumenyuto/todo/internal/repositories"
	"github.com/lumenyuto/todo/internal/routes"
)

// SetupTestDB はテスト用のデータベース接続を確立し、テーブルを作り直します。
// TEST_DB_HOST が設定されていない環境ではテストをスキップします。
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	_ = godotenv.Load("../../.env")

	dbHost := os.Getenv("TEST_DB_HOST")
	if dbHost == "" {
		t.Skip("TEST_DB_HOST not set, skipping database test")
	}
	dbUser := os.Getenv("TEST_DB_USER")
	dbPass := os.Getenv("TEST_DB_PASS")
	dbPort := os.Getenv("TEST_DB_PORT")
	dbName := os.Getenv("TEST_DB_NAME")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true", dbUser, dbPass, dbHost, dbPort, dbName)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("Failed to open database connection: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Fatalf("Failed to ping database: %v", err)
	}

	// 毎回クリーンな状態から始めるため、子テーブルから順に削除して作り直す
	for _, table := range []string{"todo_labels", "todos", "labels", "users"} {
		if _, err := db.Exec("DROP TABLE IF EXISTS " + table); err != nil {
			t.Fatalf("Failed to drop table %s: %v", table, err)
		}
	}
	if err := database.InitSchema(db); err != nil {
		t.Fatalf("Failed to create tables: %v", err)
	}

	return db
}

// SetupMemoryRouter はインメモリバックエンドで配線したルーターとリポジトリを返します。
// MySQL実装と同じ契約を満たすため、ハンドラーテストはこちらで実行できます。
func SetupMemoryRouter() (*gin.Engine, *repositories.InMemoryTodoRepository, *repositories.InMemoryLabelRepository, *repositories.InMemoryUserRepository) {
	gin.SetMode(gin.TestMode)

	labelRepo := repositories.NewInMemoryLabelRepository()
	todoRepo := repositories.NewInMemoryTodoRepository(labelRepo)
	userRepo := repositories.NewInMemoryUserRepository()

	router := routes.SetupRouter(todoRepo, labelRepo, userRepo)
	return router, todoRepo, labelRepo, userRepo
}

// CreateTestUser はテスト用ユーザーを作成します。
func CreateTestUser(t *testing.T, userRepo repositories.UserRepository, name string) *models.User {
	t.Helper()

	user, err := userRepo.Create(&models.CreateUser{Name: name})
	require.NoError(t, err)
	require.NotZero(t, user.ID)
	return user
}

// CreateTestLabel はテスト用ラベルを作成します。
func CreateTestLabel(t *testing.T, labelRepo repositories.LabelRepository, userID int, name string) *models.Label {
	t.Helper()

	label, err := labelRepo.Create(userID, &models.CreateLabel{Name: name})
	require.NoError(t, err)
	require.NotZero(t, label.ID)
	return label
}
