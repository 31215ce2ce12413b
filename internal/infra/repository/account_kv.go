package repository

import (
	"context"

	"pslab/internal/domain/model"
	"pslab/internal/infra/storage"
)

type AccountKVRepository struct {
	store storage.Store
}

func NewAccountKVRepository(store storage.Store) *AccountKVRepository {
	return &AccountKVRepository{store: store}
}

func (r *AccountKVRepository) Profile(ctx context.Context) (model.Profile, bool, error) {
	var p model.Profile
	ok, err := storage.LoadJSON(ctx, r.store, storage.KeyUserProfile, &p)
	if err != nil || !ok {
		return model.Profile{}, false, err
	}
	return p, true, nil
}

func (r *AccountKVRepository) SaveProfile(ctx context.Context, p model.Profile) error {
	return storage.SaveJSON(ctx, r.store, storage.KeyUserProfile, p)
}

// ログイン状態は "true"/"false" の文字列で保存（元データ互換）
func (r *AccountKVRepository) IsAdminAuthenticated(ctx context.Context) (bool, error) {
	raw, ok, err := r.store.Get(ctx, storage.KeyAdminAuthState)
	if err != nil || !ok {
		return false, err
	}
	return string(raw) == "true", nil
}

func (r *AccountKVRepository) SetAdminAuthenticated(ctx context.Context, v bool) error {
	value := "false"
	if v {
		value = "true"
	}
	return r.store.Set(ctx, storage.KeyAdminAuthState, []byte(value))
}

func (r *AccountKVRepository) ClearAdminAuthenticated(ctx context.Context) error {
	return r.store.Delete(ctx, storage.KeyAdminAuthState)
}
