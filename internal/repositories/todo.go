package repositories

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/lumenyuto/todo/internal/models"
)

// TodoRepository はTodo集約の永続化操作の契約です。
// 読み取り操作はラベルリストまで組み立てた集約を返します。
type TodoRepository interface {
	Create(payload *models.CreateTodo) (*models.Todo, error)
	Find(id int) (*models.Todo, error)
	All(userID int) ([]*models.Todo, error)
	Update(id int, payload *models.UpdateTodo) (*models.Todo, error)
	Delete(id int) error
}

// todoLabelRow は todos から labels への左外部結合の1行分です。
// 関連ラベルを持たないTodoの行では、ラベル3列はすべてNULLになります。
type todoLabelRow struct {
	id          int
	text        string
	completed   bool
	userID      int
	labelID     sql.NullInt64
	labelName   sql.NullString
	labelUserID sql.NullInt64
}

// foldTodoRows は結合結果の平坦な行列を、ラベルリストを保持したTodoの列に畳み込みます。
// 出力順は各todo idが入力に最初に現れた順です(idのソート順ではありません)。
// 同一todoの行は実際には連続して並びますが、離れていても正しく畳み込まれます。
func foldTodoRows(rows []todoLabelRow) []*models.Todo {
	accum := []*models.Todo{}
outer:
	for _, row := range rows {
		for _, todo := range accum {
			if todo.ID == row.id {
				if row.labelID.Valid {
					todo.Labels = append(todo.Labels, models.Label{
						ID:     int(row.labelID.Int64),
						Name:   row.labelName.String,
						UserID: int(row.labelUserID.Int64),
					})
				}
				continue outer
			}
		}

		todo := &models.Todo{
			ID:        row.id,
			Text:      row.text,
			Completed: row.completed,
			UserID:    row.userID,
			Labels:    []models.Label{},
		}
		if row.labelID.Valid {
			todo.Labels = append(todo.Labels, models.Label{
				ID:     int(row.labelID.Int64),
				Name:   row.labelName.String,
				UserID: int(row.labelUserID.Int64),
			})
		}
		accum = append(accum, todo)
	}
	return accum
}

// MySQLTodoRepository はTodoRepositoryのMySQL実装です。
type MySQLTodoRepository struct {
	DB *sql.DB
}

// NewMySQLTodoRepository は新しいMySQLTodoRepositoryインスタンスを作成します。
func NewMySQLTodoRepository(db *sql.DB) *MySQLTodoRepository {
	return &MySQLTodoRepository{DB: db}
}

const todoWithLabelQuery = `
SELECT todos.id, todos.text, todos.completed, todos.user_id,
       labels.id AS label_id, labels.name AS label_name, labels.user_id AS label_user_id
FROM todos
LEFT OUTER JOIN todo_labels tl ON todos.id = tl.todo_id
LEFT OUTER JOIN labels ON labels.id = tl.label_id`

func (r *MySQLTodoRepository) queryTodoRows(query string, args ...interface{}) ([]todoLabelRow, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		log.Printf("Failed to query todos: %v", err)
		return nil, fmt.Errorf("could not query todos: %w", err)
	}
	defer rows.Close()

	var result []todoLabelRow
	for rows.Next() {
		var row todoLabelRow
		err := rows.Scan(
			&row.id, &row.text, &row.completed, &row.userID,
			&row.labelID, &row.labelName, &row.labelUserID,
		)
		if err != nil {
			return nil, fmt.Errorf("could not scan todo: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating todos: %w", err)
	}

	return result, nil
}

// insertTodoLabels はラベルとの関連行を与えられたidの順に挿入します。
// labelsに存在しないidは INSERT ... SELECT が0行になるため黙って読み飛ばされます。
func insertTodoLabels(tx *sql.Tx, todoID int, labelIDs []int) error {
	query := "INSERT INTO todo_labels (todo_id, label_id) SELECT ?, id FROM labels WHERE id = ?"
	for _, labelID := range labelIDs {
		if _, err := tx.Exec(query, todoID, labelID); err != nil {
			return fmt.Errorf("could not insert todo label: %w", err)
		}
	}
	return nil
}

// Create は新しいTodoを completed=false で挿入し、ラベル関連を張ります。
// 挿入と関連付けは1つのトランザクションで行い、レスポンスには永続化された状態を
// そのまま反映するためコミット後に再読込した集約を返します。
func (r *MySQLTodoRepository) Create(payload *models.CreateTodo) (*models.Todo, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}

	result, err := tx.Exec(
		"INSERT INTO todos (text, completed, user_id) VALUES (?, false, ?)",
		payload.Text, payload.UserID,
	)
	if err != nil {
		tx.Rollback()
		log.Printf("Failed to insert todo: %v", err)
		return nil, fmt.Errorf("could not insert todo: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("could not get last insert ID: %w", err)
	}

	if err := insertTodoLabels(tx, int(id), payload.LabelIDs); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	return r.Find(int(id))
}

// Find は指定idのTodoを結合+畳み込みで取得します。見つからない場合はErrNotFoundを返します。
func (r *MySQLTodoRepository) Find(id int) (*models.Todo, error) {
	rows, err := r.queryTodoRows(todoWithLabelQuery+" WHERE todos.id = ?", id)
	if err != nil {
		return nil, err
	}

	todos := foldTodoRows(rows)
	if len(todos) == 0 {
		return nil, ErrNotFound
	}
	return todos[0], nil
}

// All は指定ユーザーのTodoをid降順(新しい順)で取得します。
// ラベル一覧の昇順とは異なりますが、この並びは意図的なものです。
func (r *MySQLTodoRepository) All(userID int) ([]*models.Todo, error) {
	rows, err := r.queryTodoRows(
		todoWithLabelQuery+" WHERE todos.user_id = ? ORDER BY todos.id DESC", userID)
	if err != nil {
		return nil, err
	}

	return foldTodoRows(rows), nil
}

// Update は部分更新です。nilのフィールドは現在値を維持し、LabelIDsが非nilの場合は
// 関連を全削除してから挿入し直します(マージではなく置き換え)。
// 置き換えの途中状態が他の読み取りから見えないよう、全体を1つのトランザクションで行います。
func (r *MySQLTodoRepository) Update(id int, payload *models.UpdateTodo) (*models.Todo, error) {
	current, err := r.Find(id)
	if err != nil {
		return nil, err
	}

	text := current.Text
	if payload.Text != nil {
		text = *payload.Text
	}
	completed := current.Completed
	if payload.Completed != nil {
		completed = *payload.Completed
	}

	tx, err := r.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}

	if _, err := tx.Exec(
		"UPDATE todos SET text = ?, completed = ? WHERE id = ?", text, completed, id,
	); err != nil {
		tx.Rollback()
		log.Printf("Failed to update todo: %v", err)
		return nil, fmt.Errorf("could not update todo: %w", err)
	}

	if payload.LabelIDs != nil {
		if _, err := tx.Exec("DELETE FROM todo_labels WHERE todo_id = ?", id); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("could not delete todo labels: %w", err)
		}
		if err := insertTodoLabels(tx, id, payload.LabelIDs); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}

	return r.Find(id)
}

// Delete は関連行を削除してからTodo本体を削除します。両方が同時にコミットされるため、
// どの失敗経路でも関連行が宙に浮くことはありません。
func (r *MySQLTodoRepository) Delete(id int) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM todo_labels WHERE todo_id = ?", id); err != nil {
		tx.Rollback()
		log.Printf("Failed to delete todo labels: %v", err)
		return fmt.Errorf("could not delete todo labels: %w", err)
	}

	result, err := tx.Exec("DELETE FROM todos WHERE id = ?", id)
	if err != nil {
		tx.Rollback()
		log.Printf("Failed to delete todo: %v", err)
		return fmt.Errorf("could not delete todo: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("could not get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		tx.Rollback()
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit transaction: %w", err)
	}

	return nil
}
