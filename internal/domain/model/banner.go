package model

// Banner はトップページのスライダー画像。Order は 0 始まりの表示順。
type Banner struct {
	ID          string `json:"id"`
	ImageURL    string `json:"imageUrl"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
	Order       int    `json:"order"`
}
