package usecase

import (
	"context"
	"errors"
	"sort"

	"pslab/internal/domain/model"
	repo "pslab/internal/repository"
)

type BannerUsecase struct {
	bannerRepo repo.BannerRepository
	idGen      IDGenerator
}

func NewBannerUsecase(bannerRepo repo.BannerRepository, idGen IDGenerator) *BannerUsecase {
	return &BannerUsecase{bannerRepo: bannerRepo, idGen: idGen}
}

// List は表示順で返す。
func (u *BannerUsecase) List(ctx context.Context) ([]model.Banner, error) {
	banners, err := u.bannerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(banners, func(i, j int) bool {
		return banners[i].Order < banners[j].Order
	})
	return banners, nil
}

// Add は末尾に足す。
func (u *BannerUsecase) Add(ctx context.Context, b model.Banner) (model.Banner, error) {
	banners, err := u.bannerRepo.List(ctx)
	if err != nil {
		return model.Banner{}, err
	}
	b.ID = u.idGen.NewID()
	b.Order = len(banners)
	if err := u.bannerRepo.Create(ctx, b); err != nil {
		return model.Banner{}, err
	}
	return b, nil
}

func (u *BannerUsecase) Update(ctx context.Context, b model.Banner) error {
	err := u.bannerRepo.Update(ctx, b)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	return err
}

func (u *BannerUsecase) Delete(ctx context.Context, id string) error {
	err := u.bannerRepo.Delete(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	return err
}

// Reorder はバナーを抜いて newOrder の位置に差し込み、0始まりで振り直す。
// 無いidは何もしない。
func (u *BannerUsecase) Reorder(ctx context.Context, id string, newOrder int) error {
	banners, err := u.List(ctx)
	if err != nil {
		return err
	}

	idx := -1
	for i, b := range banners {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	moved := banners[idx]
	rest := append(append([]model.Banner{}, banners[:idx]...), banners[idx+1:]...)

	if newOrder < 0 {
		newOrder = 0
	}
	if newOrder > len(rest) {
		newOrder = len(rest)
	}

	reordered := append(append(append([]model.Banner{}, rest[:newOrder]...), moved), rest[newOrder:]...)
	for i := range reordered {
		reordered[i].Order = i
	}

	return u.bannerRepo.ReplaceAll(ctx, reordered)
}
