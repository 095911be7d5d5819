package models

// Todo はラベルリストを含む集約済みのToDoタスクを表します。
// Labels は todo_labels の関連から読み取り時に組み立てられるもので、
// todos テーブル自体には保存されません。
type Todo struct {
	ID        int     `json:"id"`
	Text      string  `json:"text"`
	Completed bool    `json:"completed"`
	UserID    int     `json:"user_id"`
	Labels    []Label `json:"labels"`
}

// CreateTodo はTodo作成リクエストのボディです。
// 存在しないラベルIDはエラーにせず黙って読み飛ばされます。
type CreateTodo struct {
	Text     string `json:"text" binding:"required,max=100"`
	LabelIDs []int  `json:"label_ids"`
	UserID   int    `json:"user_id" binding:"required"`
}

// UpdateTodo は部分更新(PATCH)のボディです。nilのフィールドは現在値を維持します。
// LabelIDs が非nilの場合は空スライスであっても関連を丸ごと置き換えます。
type UpdateTodo struct {
	Text      *string `json:"text" binding:"omitempty,min=1,max=100"`
	Completed *bool   `json:"completed"`
	LabelIDs  []int   `json:"label_ids"`
}
