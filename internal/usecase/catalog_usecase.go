package usecase

import (
	"context"
	"errors"
	"strings"

	"pslab/internal/domain/model"
	repo "pslab/internal/repository"
)

// CatalogUsecase はカタログ（検査・パッケージ）の参照と管理画面からの編集。
type CatalogUsecase struct {
	catalogRepo repo.CatalogRepository
}

func NewCatalogUsecase(catalogRepo repo.CatalogRepository) *CatalogUsecase {
	return &CatalogUsecase{catalogRepo: catalogRepo}
}

// List は管理画面用（非公開も含む全件）。
func (u *CatalogUsecase) List(ctx context.Context, kind model.ItemKind) ([]model.CatalogItem, error) {
	return u.catalogRepo.List(ctx, kind)
}

// ListVisible は買い物客用。非公開の検査は出さない。パッケージは常に出す。
func (u *CatalogUsecase) ListVisible(ctx context.Context, kind model.ItemKind) ([]model.CatalogItem, error) {
	items, err := u.catalogRepo.List(ctx, kind)
	if err != nil {
		return nil, err
	}
	visible := make([]model.CatalogItem, 0, len(items))
	for _, it := range items {
		if it.IsVisible() {
			visible = append(visible, it)
		}
	}
	return visible, nil
}

// Search は公開品目を名前・説明の部分一致で探す（両種別まとめて）。
func (u *CatalogUsecase) Search(ctx context.Context, query string) ([]model.CatalogItem, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []model.CatalogItem{}, nil
	}

	matched := []model.CatalogItem{}
	for _, kind := range []model.ItemKind{model.ItemKindTest, model.ItemKindPackage} {
		items, err := u.ListVisible(ctx, kind)
		if err != nil {
			return nil, err
		}
		for _, it := range items {
			if strings.Contains(strings.ToLower(it.Name), q) ||
				strings.Contains(strings.ToLower(it.Description), q) {
				matched = append(matched, it)
			}
		}
	}
	return matched, nil
}

// SubHeaderOptions はサブヘッダーのメニューを組み立てる。
// 検査の項目は公開済みの名前だけ。
func (u *CatalogUsecase) SubHeaderOptions(ctx context.Context) ([]model.SubMenuOption, error) {
	tests, err := u.ListVisible(ctx, model.ItemKindTest)
	if err != nil {
		return nil, err
	}
	packages, err := u.ListVisible(ctx, model.ItemKindPackage)
	if err != nil {
		return nil, err
	}

	testNames := make([]string, 0, len(tests))
	for _, t := range tests {
		testNames = append(testNames, t.Name)
	}
	packageNames := make([]string, 0, len(packages))
	for _, p := range packages {
		packageNames = append(packageNames, p.Name)
	}

	return []model.SubMenuOption{
		{Text: "Blood Tests", Items: testNames},
		{Text: "Health Packages", Items: packageNames},
		{Text: "Health Risk", Items: []string{
			"Diabetes", "Heart Disease", "Thyroid",
			"Arthritis", "Kidney Disease", "Liver Disease",
		}},
		{Text: "Doctor Consultation"},
		{Text: "Blogs", Items: []string{
			"Health Tips", "Medical News", "Wellness Articles", "Diet & Nutrition",
		}},
	}, nil
}

// Upsert は id が無ければ挿入、あれば置き換え。
// 必須項目のチェックは管理画面側の責務（ここでは形だけ受ける）。
func (u *CatalogUsecase) Upsert(ctx context.Context, item model.CatalogItem) error {
	return u.catalogRepo.Upsert(ctx, item)
}

// SetPublished は検査の公開フラグだけを切り替える。
// パッケージには公開フラグが無いので何もしない。無いidも何もしない。
func (u *CatalogUsecase) SetPublished(ctx context.Context, id int64, published bool) error {
	err := u.catalogRepo.SetPublished(ctx, model.ItemKindTest, id, published)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	return err
}

// Remove は削除。無いidは既に消えているものとして成功扱い。
// 過去の依頼はスナップショット済みなので連鎖削除はしない。
func (u *CatalogUsecase) Remove(ctx context.Context, kind model.ItemKind, id int64) error {
	err := u.catalogRepo.Remove(ctx, kind, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil
	}
	return err
}
