package repositories

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/lumenyuto/todo/internal/models"
)

// LabelRepository はラベルの永続化操作の契約です。
// すべての操作は所有ユーザーのスコープ内で行われます。
type LabelRepository interface {
	Create(userID int, payload *models.CreateLabel) (*models.Label, error)
	All(userID int) ([]*models.Label, error)
	Delete(id, userID int) error
}

// MySQLLabelRepository はLabelRepositoryのMySQL実装です。
type MySQLLabelRepository struct {
	DB *sql.DB
}

// NewMySQLLabelRepository は新しいMySQLLabelRepositoryインスタンスを作成します。
func NewMySQLLabelRepository(db *sql.DB) *MySQLLabelRepository {
	return &MySQLLabelRepository{DB: db}
}

// Create は (user_id, name) をキーにupsertします。同名ラベルが既に存在する場合は
// 既存行のidを LAST_INSERT_ID(id) 経由で受け取り、その行を返します。
// リトライで二重送信されても同じ結果になります。
func (r *MySQLLabelRepository) Create(userID int, payload *models.CreateLabel) (*models.Label, error) {
	query := `INSERT INTO labels (user_id, name) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE id = LAST_INSERT_ID(id), name = VALUES(name)`

	result, err := r.DB.Exec(query, userID, payload.Name)
	if err != nil {
		log.Printf("Failed to upsert label: %v", err)
		return nil, fmt.Errorf("could not upsert label: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("could not get last insert ID: %w", err)
	}

	return &models.Label{ID: int(id), Name: payload.Name, UserID: userID}, nil
}

// All は指定ユーザーが所有するラベルをid昇順で取得します。
func (r *MySQLLabelRepository) All(userID int) ([]*models.Label, error) {
	rows, err := r.DB.Query(
		"SELECT id, name, user_id FROM labels WHERE user_id = ? ORDER BY id ASC", userID)
	if err != nil {
		log.Printf("Failed to query labels: %v", err)
		return nil, fmt.Errorf("could not query labels: %w", err)
	}
	defer rows.Close()

	labels := []*models.Label{}
	for rows.Next() {
		var l models.Label
		if err := rows.Scan(&l.ID, &l.Name, &l.UserID); err != nil {
			return nil, fmt.Errorf("could not scan label: %w", err)
		}
		labels = append(labels, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating labels: %w", err)
	}

	return labels, nil
}

// Delete はidと所有ユーザーの両方が一致するラベルを削除します。
// 行が存在しない場合も所有者が違う場合も、等しくErrNotFoundです。
func (r *MySQLLabelRepository) Delete(id, userID int) error {
	result, err := r.DB.Exec("DELETE FROM labels WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		log.Printf("Failed to delete label: %v", err)
		return fmt.Errorf("could not delete label: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("could not get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
