package usecase

import (
	"context"
	"errors"

	"pslab/internal/domain/model"
	repo "pslab/internal/repository"
)

// CartUsecase は訪問者ひとり分のカート操作。
type CartUsecase struct {
	cartRepo    repo.CartRepository
	catalogRepo repo.CatalogRepository
}

func NewCartUsecase(cartRepo repo.CartRepository, catalogRepo repo.CatalogRepository) *CartUsecase {
	return &CartUsecase{cartRepo: cartRepo, catalogRepo: catalogRepo}
}

// AddItem はカタログ品目をカートに入れる。
// 追加時点の名前と価格をスナップショットする。
// 同じidが既に入っていたら何もしない（ダブルクリックは普通の操作）。
func (u *CartUsecase) AddItem(ctx context.Context, kind model.ItemKind, id int64) error {
	item, err := u.catalogRepo.FindByID(ctx, kind, id)
	if errors.Is(err, repo.ErrNotFound) {
		return NewValidationError(map[string]string{"item": "not available"})
	}
	if err != nil {
		return err
	}
	// 非公開の検査はカートに入れない
	if !item.IsVisible() {
		return NewValidationError(map[string]string{"item": "not available"})
	}

	items, err := u.cartRepo.Items(ctx)
	if err != nil {
		return err
	}
	for _, existing := range items {
		if existing.ID == item.ID {
			return nil
		}
	}

	return u.cartRepo.Append(ctx, model.CartLineItem{
		ID:    item.ID,
		Kind:  item.Kind,
		Name:  item.Name,
		Price: item.Price,
	})
}

// RemoveItem は明細を外す。無いidは何もしない。
func (u *CartUsecase) RemoveItem(ctx context.Context, id int64) error {
	return u.cartRepo.Remove(ctx, id)
}

// Clear は購入確定後か、ユーザーの明示操作で空にする。
func (u *CartUsecase) Clear(ctx context.Context) error {
	return u.cartRepo.Clear(ctx)
}

// Items は挿入順のまま返す。
func (u *CartUsecase) Items(ctx context.Context) ([]model.CartLineItem, error) {
	return u.cartRepo.Items(ctx)
}

// Totals は毎回いまの明細から計算する。キャッシュしない。
func (u *CartUsecase) Totals(ctx context.Context) (model.CartTotals, error) {
	items, err := u.cartRepo.Items(ctx)
	if err != nil {
		return model.CartTotals{}, err
	}

	var total int64
	for _, it := range items {
		total += it.Price
	}
	return model.CartTotals{
		TotalItems:  len(items),
		TotalAmount: total,
	}, nil
}
