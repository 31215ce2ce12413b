package repository

import (
	"context"

	"pslab/internal/domain/model"
	"pslab/internal/infra/storage"
)

type CartKVRepository struct {
	store storage.Store
}

func NewCartKVRepository(store storage.Store) *CartKVRepository {
	return &CartKVRepository{store: store}
}

func (r *CartKVRepository) load(ctx context.Context) ([]model.CartLineItem, error) {
	var items []model.CartLineItem
	ok, err := storage.LoadJSON(ctx, r.store, storage.KeyCartItems, &items)
	if err != nil || !ok {
		return []model.CartLineItem{}, err
	}
	return items, nil
}

func (r *CartKVRepository) Items(ctx context.Context) ([]model.CartLineItem, error) {
	return r.load(ctx)
}

func (r *CartKVRepository) Append(ctx context.Context, item model.CartLineItem) error {
	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	items = append(items, item)
	return storage.SaveJSON(ctx, r.store, storage.KeyCartItems, items)
}

// 無いidは何もしない
func (r *CartKVRepository) Remove(ctx context.Context, id int64) error {
	items, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	return storage.SaveJSON(ctx, r.store, storage.KeyCartItems, kept)
}

func (r *CartKVRepository) Clear(ctx context.Context) error {
	return storage.SaveJSON(ctx, r.store, storage.KeyCartItems, []model.CartLineItem{})
}
