package repository

import (
	"context"
	"time"

	"pslab/internal/domain/model"
	"pslab/internal/infra/storage"
	repo "pslab/internal/repository"
)

type HomeCollectionKVRepository struct {
	store storage.Store
}

func NewHomeCollectionKVRepository(store storage.Store) *HomeCollectionKVRepository {
	return &HomeCollectionKVRepository{store: store}
}

func (r *HomeCollectionKVRepository) load(ctx context.Context) ([]model.HomeCollectionRequest, error) {
	var reqs []model.HomeCollectionRequest
	ok, err := storage.LoadJSON(ctx, r.store, storage.KeyHomeCollections, &reqs)
	if err != nil || !ok {
		return []model.HomeCollectionRequest{}, err
	}
	return reqs, nil
}

func (r *HomeCollectionKVRepository) save(ctx context.Context, reqs []model.HomeCollectionRequest) error {
	return storage.SaveJSON(ctx, r.store, storage.KeyHomeCollections, reqs)
}

// 既読集合（依頼idの配列）を別キーで読む
func (r *HomeCollectionKVRepository) loadReadIDs(ctx context.Context) ([]string, error) {
	var ids []string
	ok, err := storage.LoadJSON(ctx, r.store, storage.KeyHomeCollectionRead, &ids)
	if err != nil || !ok {
		return []string{}, err
	}
	return ids, nil
}

func (r *HomeCollectionKVRepository) List(ctx context.Context) ([]model.HomeCollectionRequest, error) {
	return r.load(ctx)
}

func (r *HomeCollectionKVRepository) FindByID(ctx context.Context, id string) (model.HomeCollectionRequest, error) {
	reqs, err := r.load(ctx)
	if err != nil {
		return model.HomeCollectionRequest{}, err
	}
	for _, req := range reqs {
		if req.ID == id {
			return req, nil
		}
	}
	return model.HomeCollectionRequest{}, repo.ErrNotFound
}

// 新しい依頼は先頭に積む
func (r *HomeCollectionKVRepository) Create(ctx context.Context, req model.HomeCollectionRequest) error {
	reqs, err := r.load(ctx)
	if err != nil {
		return err
	}
	reqs = append([]model.HomeCollectionRequest{req}, reqs...)
	return r.save(ctx, reqs)
}

func (r *HomeCollectionKVRepository) UpdateStatus(ctx context.Context, id string, status model.HomeCollectionStatus, updatedAt time.Time) error {
	reqs, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, req := range reqs {
		if req.ID == id {
			reqs[i].Status = status
			reqs[i].UpdatedAt = updatedAt
			return r.save(ctx, reqs)
		}
	}
	return repo.ErrNotFound
}

func (r *HomeCollectionKVRepository) MarkRead(ctx context.Context, id string) error {
	ids, err := r.loadReadIDs(ctx)
	if err != nil {
		return err
	}
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	ids = append(ids, id)
	return storage.SaveJSON(ctx, r.store, storage.KeyHomeCollectionRead, ids)
}

func (r *HomeCollectionKVRepository) ReadIDs(ctx context.Context) (map[string]bool, error) {
	ids, err := r.loadReadIDs(ctx)
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// 依頼を消すときは既読集合からも外す
func (r *HomeCollectionKVRepository) Delete(ctx context.Context, id string) error {
	reqs, err := r.load(ctx)
	if err != nil {
		return err
	}
	found := false
	for i, req := range reqs {
		if req.ID == id {
			reqs = append(reqs[:i], reqs[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return repo.ErrNotFound
	}
	if err := r.save(ctx, reqs); err != nil {
		return err
	}

	ids, err := r.loadReadIDs(ctx)
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	return storage.SaveJSON(ctx, r.store, storage.KeyHomeCollectionRead, kept)
}
