package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenyuto/todo/internal/models"
	"github.com/lumenyuto/todo/testutil"
)

func TestCreateUserHandler(t *testing.T) {
	router, _, _, _ := testutil.SetupMemoryRouter()

	resp := doJSON(t, router, http.MethodPost, "/users", `{"name": "alice"}`)
	assert.Equal(t, http.StatusCreated, resp.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &user))
	assert.Equal(t, models.User{ID: 1, Name: "alice"}, user)

	// 同名ユーザーは409
	resp = doJSON(t, router, http.MethodPost, "/users", `{"name": "alice"}`)
	assert.Equal(t, http.StatusConflict, resp.Code)

	// name無しは400
	resp = doJSON(t, router, http.MethodPost, "/users", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetUsersHandler(t *testing.T) {
	router, _, _, userRepo := testutil.SetupMemoryRouter()

	testutil.CreateTestUser(t, userRepo, "alice")
	testutil.CreateTestUser(t, userRepo, "bob")

	resp := doJSON(t, router, http.MethodGet, "/users", "")
	assert.Equal(t, http.StatusOK, resp.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &users))
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Name)
	assert.Equal(t, "bob", users[1].Name)
}

func TestFindUserHandler(t *testing.T) {
	router, _, _, userRepo := testutil.SetupMemoryRouter()

	created := testutil.CreateTestUser(t, userRepo, "alice")

	resp := doJSON(t, router, http.MethodGet, "/users/alice", "")
	assert.Equal(t, http.StatusOK, resp.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &user))
	assert.Equal(t, *created, user)

	// 完全一致のみ (大文字小文字を区別する)
	resp = doJSON(t, router, http.MethodGet, "/users/Alice", "")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
