package repository

import (
	"context"

	"pslab/internal/domain/model"
)

// カート明細の永続化（挿入順を保つ）。
type CartRepository interface {
	Items(ctx context.Context) ([]model.CartLineItem, error)
	Append(ctx context.Context, item model.CartLineItem) error
	Remove(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
}
