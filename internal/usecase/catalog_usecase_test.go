package usecase

import (
	"context"
	"testing"

	"pslab/internal/domain/model"
	infraRepo "pslab/internal/infra/repository"
	"pslab/internal/infra/storage"
	repo "pslab/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type CatalogRepositoryMock struct {
	mock.Mock
}

func (m *CatalogRepositoryMock) List(ctx context.Context, kind model.ItemKind) ([]model.CatalogItem, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).([]model.CatalogItem), args.Error(1)
}

func (m *CatalogRepositoryMock) FindByID(ctx context.Context, kind model.ItemKind, id int64) (model.CatalogItem, error) {
	args := m.Called(ctx, kind, id)
	return args.Get(0).(model.CatalogItem), args.Error(1)
}

func (m *CatalogRepositoryMock) Upsert(ctx context.Context, item model.CatalogItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *CatalogRepositoryMock) SetPublished(ctx context.Context, kind model.ItemKind, id int64, published bool) error {
	args := m.Called(ctx, kind, id, published)
	return args.Error(0)
}

func (m *CatalogRepositoryMock) Remove(ctx context.Context, kind model.ItemKind, id int64) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func newCatalogFixture(t *testing.T) (*CatalogUsecase, *infraRepo.CatalogKVRepository) {
	t.Helper()

	store := storage.NewMemoryStore()
	ctx := context.Background()
	assert.NoError(t, storage.SaveJSON(ctx, store, storage.KeyBloodTests, []model.CatalogItem{}))
	assert.NoError(t, storage.SaveJSON(ctx, store, storage.KeyHealthPackages, []model.CatalogItem{}))

	catalogRepo := infraRepo.NewCatalogKVRepository(store)
	return NewCatalogUsecase(catalogRepo), catalogRepo
}

func TestCatalogUsecase_ListVisible_FiltersUnpublishedTests(t *testing.T) {
	ctx := context.Background()
	uc, catalogRepo := newCatalogFixture(t)

	assert.NoError(t, catalogRepo.Upsert(ctx, model.CatalogItem{ID: 1, Kind: model.ItemKindTest, Name: "CBC", Price: 599, Published: true}))
	assert.NoError(t, catalogRepo.Upsert(ctx, model.CatalogItem{ID: 2, Kind: model.ItemKindTest, Name: "HbA1c", Price: 450, Published: false}))
	assert.NoError(t, catalogRepo.Upsert(ctx, model.CatalogItem{ID: 1, Kind: model.ItemKindPackage, Name: "Basic Health Package", Price: 1999}))

	tests, err := uc.ListVisible(ctx, model.ItemKindTest)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(tests))
	assert.Equal(t, "CBC", tests[0].Name)

	// パッケージは公開フラグを持たないので常に出る
	packages, err := uc.ListVisible(ctx, model.ItemKindPackage)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(packages))

	// 管理画面用の List は非公開も返す
	all, err := uc.List(ctx, model.ItemKindTest)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(all))
}

func TestCatalogUsecase_Search(t *testing.T) {
	ctx := context.Background()
	uc, catalogRepo := newCatalogFixture(t)

	assert.NoError(t, catalogRepo.Upsert(ctx, model.CatalogItem{ID: 1, Kind: model.ItemKindTest, Name: "Complete Blood Count", Description: "evaluate overall health", Published: true}))
	assert.NoError(t, catalogRepo.Upsert(ctx, model.CatalogItem{ID: 2, Kind: model.ItemKindTest, Name: "Lipid Profile", Description: "cholesterol check", Published: false}))
	assert.NoError(t, catalogRepo.Upsert(ctx, model.CatalogItem{ID: 1, Kind: model.ItemKindPackage, Name: "Basic Health Package", Description: "essential checkup"}))

	// 大文字小文字は区別しない
	got, err := uc.Search(ctx, "BLOOD")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(got))
	assert.Equal(t, "Complete Blood Count", got[0].Name)

	// 説明にも当たる
	got, err = uc.Search(ctx, "checkup")
	assert.NoError(t, err)
	assert.Equal(t, 1, len(got))
	assert.Equal(t, "Basic Health Package", got[0].Name)

	// 非公開の検査は検索に出ない
	got, err = uc.Search(ctx, "cholesterol")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(got))

	// 空問い合わせは空の結果
	got, err = uc.Search(ctx, "   ")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(got))
}

func TestCatalogUsecase_SubHeaderOptions(t *testing.T) {
	ctx := context.Background()
	uc, catalogRepo := newCatalogFixture(t)

	assert.NoError(t, catalogRepo.Upsert(ctx, model.CatalogItem{ID: 1, Kind: model.ItemKindTest, Name: "CBC", Published: true}))
	assert.NoError(t, catalogRepo.Upsert(ctx, model.CatalogItem{ID: 2, Kind: model.ItemKindTest, Name: "Lipid Profile", Published: false}))
	assert.NoError(t, catalogRepo.Upsert(ctx, model.CatalogItem{ID: 1, Kind: model.ItemKindPackage, Name: "Basic Health Package"}))

	options, err := uc.SubHeaderOptions(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 5, len(options))

	assert.Equal(t, "Blood Tests", options[0].Text)
	assert.Equal(t, []string{"CBC"}, options[0].Items)
	assert.Equal(t, "Health Packages", options[1].Text)
	assert.Equal(t, []string{"Basic Health Package"}, options[1].Items)
	assert.Equal(t, "Doctor Consultation", options[3].Text)
	assert.Empty(t, options[3].Items)
}

func TestCatalogUsecase_SetPublished_MissingIDIsNoop(t *testing.T) {
	ctx := context.Background()
	catalogRepo := new(CatalogRepositoryMock)
	catalogRepo.On("SetPublished", ctx, model.ItemKindTest, int64(99), true).Return(repo.ErrNotFound)

	uc := NewCatalogUsecase(catalogRepo)
	assert.NoError(t, uc.SetPublished(ctx, 99, true))
	catalogRepo.AssertExpectations(t)
}

func TestCatalogUsecase_Remove_MissingIDIsNoop(t *testing.T) {
	ctx := context.Background()
	catalogRepo := new(CatalogRepositoryMock)
	catalogRepo.On("Remove", ctx, model.ItemKindPackage, int64(7)).Return(repo.ErrNotFound)

	uc := NewCatalogUsecase(catalogRepo)
	assert.NoError(t, uc.Remove(ctx, model.ItemKindPackage, 7))
	catalogRepo.AssertExpectations(t)
}

func TestCatalogUsecase_Upsert_ReplacesByID(t *testing.T) {
	ctx := context.Background()
	uc, _ := newCatalogFixture(t)

	assert.NoError(t, uc.Upsert(ctx, model.CatalogItem{ID: 1, Kind: model.ItemKindTest, Name: "CBC", Price: 599, Published: true}))
	assert.NoError(t, uc.Upsert(ctx, model.CatalogItem{ID: 1, Kind: model.ItemKindTest, Name: "CBC", Price: 649, Published: true}))

	all, err := uc.List(ctx, model.ItemKindTest)
	assert.NoError(t, err)
	assert.Equal(t, 1, len(all))
	assert.Equal(t, int64(649), all[0].Price)
}
