package models

// Label はTodoに付けるラベルを表します。(user_id, name) の組で一意です。
type Label struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	UserID int    `json:"user_id"`
}

// CreateLabel はラベル作成リクエストのボディです。
// 所有ユーザーは user_id クエリパラメータで渡されます。
type CreateLabel struct {
	Name string `json:"name" binding:"required,max=100"`
}
