package repository

import (
	"context"
	"errors"

	"pslab/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// カタログ（検査・パッケージ）の永続化だけを約束。
// 公開フィルタは usecase 側の責務。
type CatalogRepository interface {
	List(ctx context.Context, kind model.ItemKind) ([]model.CatalogItem, error)
	FindByID(ctx context.Context, kind model.ItemKind, id int64) (model.CatalogItem, error)

	// idが無ければ挿入、あれば置き換え
	Upsert(ctx context.Context, item model.CatalogItem) error
	SetPublished(ctx context.Context, kind model.ItemKind, id int64, published bool) error
	Remove(ctx context.Context, kind model.ItemKind, id int64) error
}
