// Package repositories はデータベース操作を行うリポジトリを提供します。
// 各エンティティごとにインターフェースを定義し、MySQL実装とインメモリ実装の
// 2つのバックエンドが同じ契約を満たします。
package repositories

import "errors"

// リポジトリ操作が失敗したとき、呼び出し側が判別する必要があるのは以下の2種類です。
// ここに該当しない失敗(接続断など)は fmt.Errorf でラップしてそのまま返します。
var (
	// ErrNotFound は対象の行が存在しない、または所有者が一致しない場合のエラーです。
	ErrNotFound = errors.New("not found")

	// ErrDuplicate は作成時に一意制約と衝突した場合のエラーです。
	ErrDuplicate = errors.New("duplicate")
)
