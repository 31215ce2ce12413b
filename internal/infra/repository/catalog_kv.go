package repository

import (
	"context"

	"pslab/internal/domain/model"
	"pslab/internal/infra/storage"
	repo "pslab/internal/repository"
)

type CatalogKVRepository struct {
	store storage.Store
}

// DI
func NewCatalogKVRepository(store storage.Store) *CatalogKVRepository {
	return &CatalogKVRepository{store: store}
}

func catalogKey(kind model.ItemKind) string {
	if kind == model.ItemKindPackage {
		return storage.KeyHealthPackages
	}
	return storage.KeyBloodTests
}

// キーが無い・壊れているときだけ既定データに戻す。
// 既定データへの上書き読みはしない（保存値に無いフィールドが種の値で残るため）。
func (r *CatalogKVRepository) load(ctx context.Context, kind model.ItemKind) ([]model.CatalogItem, error) {
	var items []model.CatalogItem
	ok, err := storage.LoadJSON(ctx, r.store, catalogKey(kind), &items)
	if err != nil {
		return nil, err
	}
	if !ok {
		if kind == model.ItemKindPackage {
			return DefaultHealthPackages(), nil
		}
		return DefaultBloodTests(), nil
	}
	return items, nil
}

func (r *CatalogKVRepository) save(ctx context.Context, kind model.ItemKind, items []model.CatalogItem) error {
	return storage.SaveJSON(ctx, r.store, catalogKey(kind), items)
}

func (r *CatalogKVRepository) List(ctx context.Context, kind model.ItemKind) ([]model.CatalogItem, error) {
	return r.load(ctx, kind)
}

func (r *CatalogKVRepository) FindByID(ctx context.Context, kind model.ItemKind, id int64) (model.CatalogItem, error) {
	items, err := r.load(ctx, kind)
	if err != nil {
		return model.CatalogItem{}, err
	}
	for _, it := range items {
		if it.ID == id {
			return it, nil
		}
	}
	return model.CatalogItem{}, repo.ErrNotFound
}

func (r *CatalogKVRepository) Upsert(ctx context.Context, item model.CatalogItem) error {
	items, err := r.load(ctx, item.Kind)
	if err != nil {
		return err
	}
	for i, it := range items {
		if it.ID == item.ID {
			items[i] = item
			return r.save(ctx, item.Kind, items)
		}
	}
	items = append(items, item)
	return r.save(ctx, item.Kind, items)
}

func (r *CatalogKVRepository) SetPublished(ctx context.Context, kind model.ItemKind, id int64, published bool) error {
	items, err := r.load(ctx, kind)
	if err != nil {
		return err
	}
	for i, it := range items {
		if it.ID == id {
			items[i].Published = published
			return r.save(ctx, kind, items)
		}
	}
	return repo.ErrNotFound
}

func (r *CatalogKVRepository) Remove(ctx context.Context, kind model.ItemKind, id int64) error {
	items, err := r.load(ctx, kind)
	if err != nil {
		return err
	}
	for i, it := range items {
		if it.ID == id {
			items = append(items[:i], items[i+1:]...)
			return r.save(ctx, kind, items)
		}
	}
	return repo.ErrNotFound
}
