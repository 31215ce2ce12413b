package repository

import (
	"context"

	"pslab/internal/domain/model"
	"pslab/internal/infra/storage"
	repo "pslab/internal/repository"
)

type CartRequestKVRepository struct {
	store storage.Store
}

func NewCartRequestKVRepository(store storage.Store) *CartRequestKVRepository {
	return &CartRequestKVRepository{store: store}
}

func (r *CartRequestKVRepository) load(ctx context.Context) ([]model.CartRequest, error) {
	var reqs []model.CartRequest
	ok, err := storage.LoadJSON(ctx, r.store, storage.KeyCartRequests, &reqs)
	if err != nil || !ok {
		return []model.CartRequest{}, err
	}
	return reqs, nil
}

func (r *CartRequestKVRepository) save(ctx context.Context, reqs []model.CartRequest) error {
	return storage.SaveJSON(ctx, r.store, storage.KeyCartRequests, reqs)
}

func (r *CartRequestKVRepository) List(ctx context.Context) ([]model.CartRequest, error) {
	return r.load(ctx)
}

func (r *CartRequestKVRepository) FindByID(ctx context.Context, id string) (model.CartRequest, error) {
	reqs, err := r.load(ctx)
	if err != nil {
		return model.CartRequest{}, err
	}
	for _, req := range reqs {
		if req.ID == id {
			return req, nil
		}
	}
	return model.CartRequest{}, repo.ErrNotFound
}

func (r *CartRequestKVRepository) Create(ctx context.Context, req model.CartRequest) error {
	reqs, err := r.load(ctx)
	if err != nil {
		return err
	}
	reqs = append(reqs, req)
	return r.save(ctx, reqs)
}

func (r *CartRequestKVRepository) UpdateStatus(ctx context.Context, id string, status model.CartRequestStatus, notes string) error {
	reqs, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, req := range reqs {
		if req.ID == id {
			reqs[i].Status = status
			if notes != "" {
				reqs[i].Notes = notes
			}
			return r.save(ctx, reqs)
		}
	}
	return repo.ErrNotFound
}

func (r *CartRequestKVRepository) MarkRead(ctx context.Context, id string) error {
	reqs, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, req := range reqs {
		if req.ID == id {
			reqs[i].IsRead = true
			return r.save(ctx, reqs)
		}
	}
	return repo.ErrNotFound
}

func (r *CartRequestKVRepository) Delete(ctx context.Context, id string) error {
	reqs, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, req := range reqs {
		if req.ID == id {
			reqs = append(reqs[:i], reqs[i+1:]...)
			return r.save(ctx, reqs)
		}
	}
	return repo.ErrNotFound
}
