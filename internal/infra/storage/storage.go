package storage

import "context"

// Store は永続キーバリューストアとの境界。
// 値はコレクション丸ごとの JSON。部分更新はしない。
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// 保存キー（元データと互換の名前）
const (
	KeyBloodTests         = "bloodTests"
	KeyHealthPackages     = "healthPackages"
	KeyCartItems          = "cartItems"
	KeyCartRequests       = "cartRequests"
	KeyHomeCollections    = "homeCollectionRequests"
	KeyHomeCollectionRead = "homeCollectionReadRequests"
	KeyAppointments       = "appointments"
	KeyDoctors            = "doctors"
	KeyBanners            = "banners"
	KeyBlogs              = "blogs"
	KeySubHeaderOptions   = "subHeaderOptions"
	KeyAdminAuthState     = "adminAuthState"
	KeyUserProfile        = "userProfile"
)
