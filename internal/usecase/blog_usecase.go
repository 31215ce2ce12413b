package usecase

import (
	"context"
	"errors"

	"pslab/internal/domain/model"
	repo "pslab/internal/repository"
)

type BlogUsecase struct {
	blogRepo repo.BlogRepository
	idGen    IDGenerator
}

func NewBlogUsecase(blogRepo repo.BlogRepository, idGen IDGenerator) *BlogUsecase {
	return &BlogUsecase{blogRepo: blogRepo, idGen: idGen}
}

func (u *BlogUsecase) List(ctx context.Context) ([]model.Blog, error) {
	return u.blogRepo.List(ctx)
}

// ListPublished は読者向け（公開済みだけ）。
func (u *BlogUsecase) ListPublished(ctx context.Context) ([]model.Blog, error) {
	blogs, err := u.blogRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	published := make([]model.Blog, 0, len(blogs))
	for _, b := range blogs {
		if b.Status == model.BlogStatusPublished {
			published = append(published, b)
		}
	}
	return published, nil
}

func (u *BlogUsecase) GetByID(ctx context.Context, id string) (model.Blog, bool, error) {
	b, err := u.blogRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Blog{}, false, nil
	}
	if err != nil {
		return model.Blog{}, false, err
	}
	return b, true, nil
}

// Add は下書きからでも公開状態からでも登録できる。
func (u *BlogUsecase) Add(ctx context.Context, b model.Blog) (model.Blog, error) {
	b.ID = u.idGen.NewID()
	if b.Status == "" {
		b.Status = model.BlogStatusDraft
	}
	if err := u.blogRepo.Create(ctx, b); err != nil {
		return model.Blog{}, err
	}
	return b, nil
}

func (u *BlogUsecase) Update(ctx context.Context, b model.Blog) error {
	err := u.blogRepo.Update(ctx, b)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	return err
}

func (u *BlogUsecase) Delete(ctx context.Context, id string) error {
	err := u.blogRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	return err
}

func (u *BlogUsecase) Publish(ctx context.Context, id string) error {
	err := u.blogRepo.SetStatus(ctx, id, model.BlogStatusPublished)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	return err
}

func (u *BlogUsecase) Unpublish(ctx context.Context, id string) error {
	err := u.blogRepo.SetStatus(ctx, id, model.BlogStatusDraft)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	return err
}
