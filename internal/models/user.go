// Package models はAPIで扱うエンティティとリクエストペイロードを定義します。
// JSONタグ: クライアントとの通信用
// bindingタグ: Ginでのリクエストバリデーション用 (例: nameは必須・100文字以内)
package models

// User はユーザーを表します。nameはユーザー全体で一意です。
// 作成後の更新・削除操作は存在しません。
type User struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CreateUser はユーザー作成リクエストのボディです。
type CreateUser struct {
	Name string `json:"name" binding:"required,max=100"`
}
