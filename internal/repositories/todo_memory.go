package repositories

import (
	"sort"
	"sync"

	"github.com/lumenyuto/todo/internal/models"
)

// InMemoryTodoRepository はTodoRepositoryのインメモリ実装です。
// ラベルIDの解決には同じプロセス内のInMemoryLabelRepositoryを参照します。
// 更新・削除は1つのクリティカルセクション内で完結するため、
// 関連の置き換え途中の状態が他の呼び出しから見えることはありません。
type InMemoryTodoRepository struct {
	mu     sync.RWMutex
	store  map[int]*models.Todo
	nextID int
	labels *InMemoryLabelRepository
}

// NewInMemoryTodoRepository は新しいInMemoryTodoRepositoryインスタンスを作成します。
func NewInMemoryTodoRepository(labels *InMemoryLabelRepository) *InMemoryTodoRepository {
	return &InMemoryTodoRepository{
		store:  map[int]*models.Todo{},
		nextID: 1,
		labels: labels,
	}
}

// resolveLabels はラベルidの列をLabelの列へ、与えられた順のまま解決します。
// 存在しないidはMySQL実装と同様に黙って読み飛ばします。
func (r *InMemoryTodoRepository) resolveLabels(labelIDs []int) []models.Label {
	labels := []models.Label{}
	for _, id := range labelIDs {
		if label, ok := r.labels.findByID(id); ok {
			labels = append(labels, label)
		}
	}
	return labels
}

func cloneTodo(t *models.Todo) *models.Todo {
	copied := *t
	copied.Labels = append([]models.Label{}, t.Labels...)
	return &copied
}

// Create は新しいTodoを completed=false で登録します。
func (r *InMemoryTodoRepository) Create(payload *models.CreateTodo) (*models.Todo, error) {
	labels := r.resolveLabels(payload.LabelIDs)

	r.mu.Lock()
	defer r.mu.Unlock()

	todo := &models.Todo{
		ID:        r.nextID,
		Text:      payload.Text,
		Completed: false,
		UserID:    payload.UserID,
		Labels:    labels,
	}
	r.store[todo.ID] = todo
	r.nextID++

	return cloneTodo(todo), nil
}

// Find は指定idのTodoを返します。見つからない場合はErrNotFoundを返します。
func (r *InMemoryTodoRepository) Find(id int) (*models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todo, ok := r.store[id]
	if !ok {
		return nil, ErrNotFound
	}

	return cloneTodo(todo), nil
}

// All は指定ユーザーのTodoをid降順(新しい順)で返します。
func (r *InMemoryTodoRepository) All(userID int) ([]*models.Todo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	todos := []*models.Todo{}
	for _, t := range r.store {
		if t.UserID == userID {
			todos = append(todos, cloneTodo(t))
		}
	}
	sort.Slice(todos, func(i, j int) bool { return todos[i].ID > todos[j].ID })

	return todos, nil
}

// Update は部分更新です。nilのフィールドは現在値を維持し、
// LabelIDsが非nilの場合は関連を丸ごと置き換えます。
func (r *InMemoryTodoRepository) Update(id int, payload *models.UpdateTodo) (*models.Todo, error) {
	var labels []models.Label
	if payload.LabelIDs != nil {
		labels = r.resolveLabels(payload.LabelIDs)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	todo, ok := r.store[id]
	if !ok {
		return nil, ErrNotFound
	}

	if payload.Text != nil {
		todo.Text = *payload.Text
	}
	if payload.Completed != nil {
		todo.Completed = *payload.Completed
	}
	if payload.LabelIDs != nil {
		todo.Labels = labels
	}

	return cloneTodo(todo), nil
}

// Delete は指定idのTodoを削除します。見つからない場合はErrNotFoundを返します。
func (r *InMemoryTodoRepository) Delete(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[id]; !ok {
		return ErrNotFound
	}
	delete(r.store, id)

	return nil
}
