package model

// ItemKind はカタログ品目の種別。保存キーもこの種別で分かれる。
type ItemKind string

const (
	ItemKindTest    ItemKind = "test"
	ItemKindPackage ItemKind = "package"
)

// CatalogItem は血液検査と健診パッケージを1つの型で扱う。
// 種別ごとに使うフィールドが違う（検査は Parameters、パッケージは Tests 等）。
type CatalogItem struct {
	ID          int64    `json:"id"`
	Kind        ItemKind `json:"kind"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`

	// 検査のみ。published は false も明示的に保存する
	Published      bool     `json:"published"`
	Parameters     []string `json:"parameters,omitempty"`
	Preparation    []string `json:"preparation,omitempty"`
	TurnaroundTime string   `json:"turnaroundTime,omitempty"`

	// パッケージのみ
	Image    string   `json:"image,omitempty"`
	Tests    []string `json:"tests,omitempty"`
	Category string   `json:"category,omitempty"`
	AgeGroup string   `json:"ageGroup,omitempty"`
	Gender   string   `json:"gender,omitempty"`
	Duration string   `json:"duration,omitempty"`
}

// IsVisible は利用者向け画面に出してよいか。
// パッケージは公開フラグを持たず常に表示、検査は published のものだけ。
func (i CatalogItem) IsVisible() bool {
	if i.Kind == ItemKindPackage {
		return true
	}
	return i.Published
}
