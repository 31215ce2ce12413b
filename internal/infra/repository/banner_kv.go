package repository

import (
	"context"

	"pslab/internal/domain/model"
	"pslab/internal/infra/storage"
	repo "pslab/internal/repository"
)

type BannerKVRepository struct {
	store storage.Store
}

func NewBannerKVRepository(store storage.Store) *BannerKVRepository {
	return &BannerKVRepository{store: store}
}

func (r *BannerKVRepository) load(ctx context.Context) ([]model.Banner, error) {
	var banners []model.Banner
	ok, err := storage.LoadJSON(ctx, r.store, storage.KeyBanners, &banners)
	if err != nil || !ok {
		return []model.Banner{}, err
	}
	return banners, nil
}

func (r *BannerKVRepository) save(ctx context.Context, banners []model.Banner) error {
	return storage.SaveJSON(ctx, r.store, storage.KeyBanners, banners)
}

func (r *BannerKVRepository) List(ctx context.Context) ([]model.Banner, error) {
	return r.load(ctx)
}

func (r *BannerKVRepository) Create(ctx context.Context, b model.Banner) error {
	banners, err := r.load(ctx)
	if err != nil {
		return err
	}
	banners = append(banners, b)
	return r.save(ctx, banners)
}

func (r *BannerKVRepository) Update(ctx context.Context, b model.Banner) error {
	banners, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, existing := range banners {
		if existing.ID == b.ID {
			banners[i] = b
			return r.save(ctx, banners)
		}
	}
	return repo.ErrNotFound
}

func (r *BannerKVRepository) Delete(ctx context.Context, id string) error {
	banners, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, b := range banners {
		if b.ID == id {
			banners = append(banners[:i], banners[i+1:]...)
			return r.save(ctx, banners)
		}
	}
	return repo.ErrNotFound
}

func (r *BannerKVRepository) ReplaceAll(ctx context.Context, banners []model.Banner) error {
	return r.save(ctx, banners)
}
