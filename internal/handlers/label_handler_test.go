package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumenyuto/todo/internal/models"
	"github.com/lumenyuto/todo/testutil"
)

func TestCreateLabelHandler(t *testing.T) {
	router, _, _, _ := testutil.SetupMemoryRouter()

	resp := doJSON(t, router, http.MethodPost, "/labels?user_id=1",
		`{"name": "should_create_label"}`)
	assert.Equal(t, http.StatusCreated, resp.Code)

	var label models.Label
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &label))
	assert.Equal(t, models.Label{ID: 1, Name: "should_create_label", UserID: 1}, label)

	// user_idクエリパラメータ無しは400
	resp = doJSON(t, router, http.MethodPost, "/labels", `{"name": "no owner"}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	// name無しは400
	resp = doJSON(t, router, http.MethodPost, "/labels?user_id=1", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetLabelsHandler(t *testing.T) {
	router, _, labelRepo, _ := testutil.SetupMemoryRouter()

	created := testutil.CreateTestLabel(t, labelRepo, 1, "should_get_all_label")
	testutil.CreateTestLabel(t, labelRepo, 2, "other user's label")

	resp := doJSON(t, router, http.MethodGet, "/labels?user_id=1", "")
	assert.Equal(t, http.StatusOK, resp.Code)

	var labels []models.Label
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &labels))
	assert.Equal(t, []models.Label{*created}, labels)

	// ラベルを持たないユーザーは空のJSON配列
	resp = doJSON(t, router, http.MethodGet, "/labels?user_id=99", "")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestDeleteLabelHandler(t *testing.T) {
	router, _, labelRepo, _ := testutil.SetupMemoryRouter()

	created := testutil.CreateTestLabel(t, labelRepo, 1, "should_delete_label")

	// 所有者が違えば404
	resp := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/labels/%d?user_id=2", created.ID), "")
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/labels/%d?user_id=1", created.ID), "")
	assert.Equal(t, http.StatusNoContent, resp.Code)

	labels, err := labelRepo.All(1)
	require.NoError(t, err)
	assert.Empty(t, labels)
}
