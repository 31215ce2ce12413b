package app

import (
	"context"
	"fmt"

	"pslab/internal/config"
	"pslab/internal/domain/model"
	infraRepo "pslab/internal/infra/repository"
	"pslab/internal/infra/storage"
	"pslab/internal/notify"
	"pslab/internal/usecase"
)

// App は画面側（この範囲の外）が呼ぶ操作をひとまとめにしたもの。
type App struct {
	Catalog   *usecase.CatalogUsecase
	Cart      *usecase.CartUsecase
	Intake    *usecase.IntakeUsecase
	Lifecycle *usecase.LifecycleUsecase
	Doctors   *usecase.DoctorUsecase
	Banners   *usecase.BannerUsecase
	Blogs     *usecase.BlogUsecase
	Auth      *usecase.AuthUsecase

	Toasts     *notify.ToastBuffer
	Dispatcher *notify.Dispatcher

	store storage.Store
}

// RefreshSubHeader はいまのカタログからサブヘッダーを組み直して保存する。
// 画面側は保存済みのものを読むだけでよい。
func (a *App) RefreshSubHeader(ctx context.Context) ([]model.SubMenuOption, error) {
	options, err := a.Catalog.SubHeaderOptions(ctx)
	if err != nil {
		return nil, err
	}
	if err := storage.SaveJSON(ctx, a.store, storage.KeySubHeaderOptions, options); err != nil {
		return nil, err
	}
	return options, nil
}

// OpenStore は設定に合わせてバックエンドを選ぶ。
func OpenStore(ctx context.Context, cfg config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case "memory":
		return storage.NewMemoryStore(), nil
	case "file":
		return storage.NewFileStore(cfg.DataDir)
	case "redis":
		return storage.NewRedisStore(ctx, cfg.RedisAddr, "pslab")
	case "postgres":
		db, err := storage.Connect()
		if err != nil {
			return nil, err
		}
		return storage.NewGormStore(db)
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}

// New は全部を配線する。idGen/clock/issuer は cmd 側から渡す。
func New(
	cfg config.Config,
	store storage.Store,
	idGen usecase.IDGenerator,
	clock usecase.Clock,
	issuer usecase.TokenIssuer,
) (*App, error) {
	// Repository（KV実装）生成
	catalogRepo := infraRepo.NewCatalogKVRepository(store)
	cartRepo := infraRepo.NewCartKVRepository(store)
	cartRequestRepo := infraRepo.NewCartRequestKVRepository(store)
	collectionRepo := infraRepo.NewHomeCollectionKVRepository(store)
	appointmentRepo := infraRepo.NewAppointmentKVRepository(store)
	doctorRepo := infraRepo.NewDoctorKVRepository(store)
	bannerRepo := infraRepo.NewBannerKVRepository(store)
	blogRepo := infraRepo.NewBlogKVRepository(store)
	accountRepo := infraRepo.NewAccountKVRepository(store)

	// 通知の組み立て（メール設定が無ければトーストとログだけ）
	toasts := notify.NewToastBuffer(20)
	notifiers := notify.Multi{toasts}
	if cfg.EmailEnabled() {
		notifiers = append(notifiers, notify.NewEmailJSSender(
			cfg.EmailServiceID, cfg.EmailTemplateID, cfg.EmailPublicKey, cfg.AdminEmail,
		))
	}
	dispatcher := notify.NewDispatcher(notifiers)

	// 管理者パスワードは平文で持たない
	hasher := usecase.NewBcryptPasswordHasher(12)
	adminHash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return nil, err
	}

	return &App{
		Catalog: usecase.NewCatalogUsecase(catalogRepo),
		Cart:    usecase.NewCartUsecase(cartRepo, catalogRepo),
		Intake: usecase.NewIntakeUsecase(
			cartRepo, cartRequestRepo, collectionRepo, appointmentRepo,
			idGen, clock, dispatcher, usecase.DefaultIntakePolicies(),
		),
		Lifecycle: usecase.NewLifecycleUsecase(cartRequestRepo, collectionRepo, appointmentRepo, clock),
		Doctors:   usecase.NewDoctorUsecase(doctorRepo, idGen),
		Banners:   usecase.NewBannerUsecase(bannerRepo, idGen),
		Blogs:     usecase.NewBlogUsecase(blogRepo, idGen),
		Auth: usecase.NewAuthUsecase(
			accountRepo, issuer, usecase.NewBcryptPasswordVerifier(), clock,
			cfg.AdminUsername, adminHash,
		),

		Toasts:     toasts,
		Dispatcher: dispatcher,

		store: store,
	}, nil
}
