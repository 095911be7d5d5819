package repositories

import (
	"sort"
	"sync"

	"github.com/lumenyuto/todo/internal/models"
)

// InMemoryUserRepository はUserRepositoryのインメモリ実装です。
// ハンドラーテストでMySQL実装と差し替えて使います。
// マップはRWMutexで保護し、ロックの保持はマップ操作の間だけです。
type InMemoryUserRepository struct {
	mu     sync.RWMutex
	store  map[int]*models.User
	nextID int
}

// NewInMemoryUserRepository は新しいInMemoryUserRepositoryインスタンスを作成します。
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		store:  map[int]*models.User{},
		nextID: 1,
	}
}

// Create は新しいユーザーを登録します。同名ユーザーが既に存在する場合はErrDuplicateを返します。
func (r *InMemoryUserRepository) Create(payload *models.CreateUser) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.store {
		if u.Name == payload.Name {
			return nil, ErrDuplicate
		}
	}

	user := &models.User{ID: r.nextID, Name: payload.Name}
	r.store[user.ID] = user
	r.nextID++

	copied := *user
	return &copied, nil
}

// All はすべてのユーザーをid昇順で返します。
func (r *InMemoryUserRepository) All() ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := []*models.User{}
	for _, u := range r.store {
		copied := *u
		users = append(users, &copied)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users, nil
}

// FindByName は名前の完全一致でユーザーを検索します。見つからない場合はErrNotFoundを返します。
func (r *InMemoryUserRepository) FindByName(name string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.store {
		if u.Name == name {
			copied := *u
			return &copied, nil
		}
	}

	return nil, ErrNotFound
}
