package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenyuto/todo/internal/models"
)

func setupTodoMemoryRepos(t *testing.T) (*InMemoryTodoRepository, *InMemoryLabelRepository) {
	t.Helper()
	labelRepo := NewInMemoryLabelRepository()
	return NewInMemoryTodoRepository(labelRepo), labelRepo
}

func TestInMemoryTodoRepository_CrudScenario(t *testing.T) {
	todoRepo, labelRepo := setupTodoMemoryRepos(t)
	userID := 1

	label, err := labelRepo.Create(userID, &models.CreateLabel{Name: "test label"})
	require.NoError(t, err)

	// create
	created, err := todoRepo.Create(&models.CreateTodo{
		Text:     "todo text",
		LabelIDs: []int{label.ID},
		UserID:   userID,
	})
	require.NoError(t, err)
	assert.Equal(t, "todo text", created.Text)
	assert.False(t, created.Completed)
	assert.Equal(t, []models.Label{*label}, created.Labels)

	// find
	found, err := todoRepo.Find(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	// all
	todos, err := todoRepo.All(userID)
	require.NoError(t, err)
	assert.Equal(t, []*models.Todo{created}, todos)

	// update
	text := "update todo text"
	completed := true
	updated, err := todoRepo.Update(created.ID, &models.UpdateTodo{
		Text:      &text,
		Completed: &completed,
		LabelIDs:  []int{},
	})
	require.NoError(t, err)
	assert.Equal(t, text, updated.Text)
	assert.True(t, updated.Completed)
	assert.Empty(t, updated.Labels)

	// delete
	err = todoRepo.Delete(created.ID)
	require.NoError(t, err)
	_, err = todoRepo.Find(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

// 存在しないラベルidはエラーにならず黙って読み飛ばされること
func TestInMemoryTodoRepository_CreateDropsUnknownLabelIDs(t *testing.T) {
	todoRepo, labelRepo := setupTodoMemoryRepos(t)
	userID := 1

	label1, err := labelRepo.Create(userID, &models.CreateLabel{Name: "work"})
	require.NoError(t, err)
	label2, err := labelRepo.Create(userID, &models.CreateLabel{Name: "home"})
	require.NoError(t, err)

	created, err := todoRepo.Create(&models.CreateTodo{
		Text:     "round trip",
		LabelIDs: []int{label1.ID, 999, label2.ID},
		UserID:   userID,
	})
	require.NoError(t, err)

	found, err := todoRepo.Find(created.ID)
	require.NoError(t, err)
	// 並びは関連を張った順
	assert.Equal(t, []models.Label{*label1, *label2}, found.Labels)
}

// completedだけを送った更新でtextとラベルが変わらないこと
func TestInMemoryTodoRepository_PartialUpdateKeepsOmittedFields(t *testing.T) {
	todoRepo, labelRepo := setupTodoMemoryRepos(t)
	userID := 1

	label, err := labelRepo.Create(userID, &models.CreateLabel{Name: "keep"})
	require.NoError(t, err)

	created, err := todoRepo.Create(&models.CreateTodo{
		Text:     "original text",
		LabelIDs: []int{label.ID},
		UserID:   userID,
	})
	require.NoError(t, err)

	completed := true
	updated, err := todoRepo.Update(created.ID, &models.UpdateTodo{Completed: &completed})
	require.NoError(t, err)

	assert.Equal(t, "original text", updated.Text)
	assert.True(t, updated.Completed)
	assert.Equal(t, []models.Label{*label}, updated.Labels)
}

// 空のlabel_idsは「変更なし」ではなく全関連の削除であること
func TestInMemoryTodoRepository_EmptyLabelIDsReplacesAll(t *testing.T) {
	todoRepo, labelRepo := setupTodoMemoryRepos(t)
	userID := 1

	label, err := labelRepo.Create(userID, &models.CreateLabel{Name: "gone"})
	require.NoError(t, err)

	created, err := todoRepo.Create(&models.CreateTodo{
		Text:     "will lose labels",
		LabelIDs: []int{label.ID},
		UserID:   userID,
	})
	require.NoError(t, err)

	_, err = todoRepo.Update(created.ID, &models.UpdateTodo{LabelIDs: []int{}})
	require.NoError(t, err)

	found, err := todoRepo.Find(created.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.Label{}, found.Labels)
}

func TestInMemoryTodoRepository_AllOrderedByIDDescAndScoped(t *testing.T) {
	todoRepo, _ := setupTodoMemoryRepos(t)

	for _, text := range []string{"first", "second", "third"} {
		_, err := todoRepo.Create(&models.CreateTodo{Text: text, UserID: 1})
		require.NoError(t, err)
	}
	_, err := todoRepo.Create(&models.CreateTodo{Text: "someone else's", UserID: 2})
	require.NoError(t, err)

	todos, err := todoRepo.All(1)
	require.NoError(t, err)
	require.Len(t, todos, 3)
	// 新しい順
	assert.Equal(t, "third", todos[0].Text)
	assert.Equal(t, "second", todos[1].Text)
	assert.Equal(t, "first", todos[2].Text)
}

func TestInMemoryTodoRepository_NotFoundPropagation(t *testing.T) {
	todoRepo, _ := setupTodoMemoryRepos(t)

	_, err := todoRepo.Find(42)
	assert.ErrorIs(t, err, ErrNotFound)

	completed := true
	_, err = todoRepo.Update(42, &models.UpdateTodo{Completed: &completed})
	assert.ErrorIs(t, err, ErrNotFound)

	err = todoRepo.Delete(42)
	assert.ErrorIs(t, err, ErrNotFound)

	// Todoを持たないユーザーの一覧はエラーではなく空列
	todos, err := todoRepo.All(1)
	require.NoError(t, err)
	assert.Empty(t, todos)
}
