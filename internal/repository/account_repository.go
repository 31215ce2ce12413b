package repository

import (
	"context"

	"pslab/internal/domain/model"
)

// プロフィールと管理者ログイン状態の保存。
type AccountRepository interface {
	Profile(ctx context.Context) (model.Profile, bool, error)
	SaveProfile(ctx context.Context, p model.Profile) error

	IsAdminAuthenticated(ctx context.Context) (bool, error)
	SetAdminAuthenticated(ctx context.Context, v bool) error
	ClearAdminAuthenticated(ctx context.Context) error
}
