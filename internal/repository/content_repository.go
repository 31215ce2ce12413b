package repository

import (
	"context"

	"pslab/internal/domain/model"
)

type DoctorRepository interface {
	List(ctx context.Context) ([]model.Doctor, error)
	FindByID(ctx context.Context, id string) (model.Doctor, error)
	Create(ctx context.Context, d model.Doctor) error
	Update(ctx context.Context, d model.Doctor) error
	Delete(ctx context.Context, id string) error
}

type BannerRepository interface {
	List(ctx context.Context) ([]model.Banner, error)
	Create(ctx context.Context, b model.Banner) error
	Update(ctx context.Context, b model.Banner) error
	Delete(ctx context.Context, id string) error
	// 全件を表示順ごと置き換える（並べ替え用）
	ReplaceAll(ctx context.Context, banners []model.Banner) error
}

type BlogRepository interface {
	List(ctx context.Context) ([]model.Blog, error)
	FindByID(ctx context.Context, id string) (model.Blog, error)
	Create(ctx context.Context, b model.Blog) error
	Update(ctx context.Context, b model.Blog) error
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status model.BlogStatus) error
}
