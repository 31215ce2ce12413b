package repository

import (
	"context"

	"pslab/internal/domain/model"
	"pslab/internal/infra/storage"
	repo "pslab/internal/repository"
)

type BlogKVRepository struct {
	store storage.Store
}

func NewBlogKVRepository(store storage.Store) *BlogKVRepository {
	return &BlogKVRepository{store: store}
}

func (r *BlogKVRepository) load(ctx context.Context) ([]model.Blog, error) {
	var blogs []model.Blog
	ok, err := storage.LoadJSON(ctx, r.store, storage.KeyBlogs, &blogs)
	if err != nil {
		return nil, err
	}
	if !ok {
		return DefaultBlogs(), nil
	}
	return blogs, nil
}

func (r *BlogKVRepository) save(ctx context.Context, blogs []model.Blog) error {
	return storage.SaveJSON(ctx, r.store, storage.KeyBlogs, blogs)
}

func (r *BlogKVRepository) List(ctx context.Context) ([]model.Blog, error) {
	return r.load(ctx)
}

func (r *BlogKVRepository) FindByID(ctx context.Context, id string) (model.Blog, error) {
	blogs, err := r.load(ctx)
	if err != nil {
		return model.Blog{}, err
	}
	for _, b := range blogs {
		if b.ID == id {
			return b, nil
		}
	}
	return model.Blog{}, repo.ErrNotFound
}

func (r *BlogKVRepository) Create(ctx context.Context, b model.Blog) error {
	blogs, err := r.load(ctx)
	if err != nil {
		return err
	}
	blogs = append(blogs, b)
	return r.save(ctx, blogs)
}

func (r *BlogKVRepository) Update(ctx context.Context, b model.Blog) error {
	blogs, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, existing := range blogs {
		if existing.ID == b.ID {
			blogs[i] = b
			return r.save(ctx, blogs)
		}
	}
	return repo.ErrNotFound
}

func (r *BlogKVRepository) Delete(ctx context.Context, id string) error {
	blogs, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, b := range blogs {
		if b.ID == id {
			blogs = append(blogs[:i], blogs[i+1:]...)
			return r.save(ctx, blogs)
		}
	}
	return repo.ErrNotFound
}

func (r *BlogKVRepository) SetStatus(ctx context.Context, id string, status model.BlogStatus) error {
	blogs, err := r.load(ctx)
	if err != nil {
		return err
	}
	for i, b := range blogs {
		if b.ID == id {
			blogs[i].Status = status
			return r.save(ctx, blogs)
		}
	}
	return repo.ErrNotFound
}
