package storage

import (
	"context"
	"encoding/json"
	"log"
)

// LoadJSON はキーの値を v に読み込み、使える値を読めたときだけ true を返す。
// キーが無い・壊れている場合は false（呼び出し側が既定値に切り替える）。
// 壊れた値はログだけ出して失敗にしない。false のとき v の中身は使わないこと。
// 種データを v に入れたまま上書き読みすると、保存時に省略されたフィールドが
// 種の値のまま残ってしまうので、v は必ず空で渡す。
func LoadJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		log.Printf("storage: broken value for %q, using default: %v", key, err)
		return false, nil
	}
	return true, nil
}

// SaveJSON はコレクション全体を書き戻す。
func SaveJSON(ctx context.Context, s Store, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, raw)
}
