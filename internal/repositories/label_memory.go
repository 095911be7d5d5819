package repositories

import (
	"sort"
	"sync"

	"github.com/lumenyuto/todo/internal/models"
)

// InMemoryLabelRepository はLabelRepositoryのインメモリ実装です。
// 重複ポリシーはMySQL実装と同じupsertです(同じ所有者+名前なら既存行を返す)。
type InMemoryLabelRepository struct {
	mu     sync.RWMutex
	store  map[int]*models.Label
	nextID int
}

// NewInMemoryLabelRepository は新しいInMemoryLabelRepositoryインスタンスを作成します。
func NewInMemoryLabelRepository() *InMemoryLabelRepository {
	return &InMemoryLabelRepository{
		store:  map[int]*models.Label{},
		nextID: 1,
	}
}

// Create は (user_id, name) をキーにupsertします。
func (r *InMemoryLabelRepository) Create(userID int, payload *models.CreateLabel) (*models.Label, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range r.store {
		if l.UserID == userID && l.Name == payload.Name {
			l.Name = payload.Name
			copied := *l
			return &copied, nil
		}
	}

	label := &models.Label{ID: r.nextID, Name: payload.Name, UserID: userID}
	r.store[label.ID] = label
	r.nextID++

	copied := *label
	return &copied, nil
}

// All は指定ユーザーが所有するラベルをid昇順で返します。
func (r *InMemoryLabelRepository) All(userID int) ([]*models.Label, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	labels := []*models.Label{}
	for _, l := range r.store {
		if l.UserID == userID {
			copied := *l
			labels = append(labels, &copied)
		}
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i].ID < labels[j].ID })

	return labels, nil
}

// Delete はidと所有ユーザーの両方が一致するラベルを削除します。
// 所有者の不一致もErrNotFound扱いです。
func (r *InMemoryLabelRepository) Delete(id, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	label, ok := r.store[id]
	if !ok || label.UserID != userID {
		return ErrNotFound
	}
	delete(r.store, id)

	return nil
}

// findByID はTodoリポジトリのラベル解決用です。呼び出し側のロックとは独立しています。
func (r *InMemoryLabelRepository) findByID(id int) (models.Label, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	label, ok := r.store[id]
	if !ok {
		return models.Label{}, false
	}
	return *label, true
}
