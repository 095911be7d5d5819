package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/go-sql-driver/mysql"

	"github.com/lumenyuto/todo/internal/models"
)

// UserRepository はユーザーの永続化操作の契約です。
type UserRepository interface {
	Create(payload *models.CreateUser) (*models.User, error)
	All() ([]*models.User, error)
	FindByName(name string) (*models.User, error)
}

// MySQLUserRepository はUserRepositoryのMySQL実装です。
type MySQLUserRepository struct {
	DB *sql.DB
}

// NewMySQLUserRepository は新しいMySQLUserRepositoryインスタンスを作成します。
func NewMySQLUserRepository(db *sql.DB) *MySQLUserRepository {
	return &MySQLUserRepository{DB: db}
}

// Create は新しいユーザーを挿入します。同名ユーザーが既に存在する場合はErrDuplicateを返します。
// 事前チェックと挿入の間の隙間は users.name のUNIQUE制約(エラーコード1062)で塞ぎます。
func (r *MySQLUserRepository) Create(payload *models.CreateUser) (*models.User, error) {
	var existingID int
	err := r.DB.QueryRow("SELECT id FROM users WHERE name = ?", payload.Name).Scan(&existingID)
	if err == nil {
		return nil, ErrDuplicate
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Printf("Failed to query user by name: %v", err)
		return nil, fmt.Errorf("could not query user: %w", err)
	}

	result, err := r.DB.Exec("INSERT INTO users (name) VALUES (?)", payload.Name)
	if err != nil {
		if mysqlErr, ok := err.(*mysql.MySQLError); ok && mysqlErr.Number == 1062 {
			return nil, ErrDuplicate
		}
		log.Printf("Failed to insert user: %v", err)
		return nil, fmt.Errorf("could not insert user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not get last insert ID: %w", err)
	}

	return &models.User{ID: int(id), Name: payload.Name}, nil
}

// All はすべてのユーザーをid昇順で取得します。
func (r *MySQLUserRepository) All() ([]*models.User, error) {
	rows, err := r.DB.Query("SELECT id, name FROM users ORDER BY id ASC")
	if err != nil {
		log.Printf("Failed to query users: %v", err)
		return nil, fmt.Errorf("could not query users: %w", err)
	}
	defer rows.Close()

	users := []*models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, fmt.Errorf("could not scan user: %w", err)
		}
		users = append(users, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}

	return users, nil
}

// FindByName は名前の完全一致でユーザーを検索します。見つからない場合はErrNotFoundを返します。
func (r *MySQLUserRepository) FindByName(name string) (*models.User, error) {
	var u models.User
	err := r.DB.QueryRow("SELECT id, name FROM users WHERE name = ?", name).Scan(&u.ID, &u.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		log.Printf("Failed to query user by name: %v", err)
		return nil, fmt.Errorf("could not query user: %w", err)
	}

	return &u, nil
}
