package model

// カートの明細。
// 追加時点の名前と価格を必ず保存（後からカタログを変えても影響しない）。
type CartLineItem struct {
	ID    int64    `json:"id"`
	Kind  ItemKind `json:"kind"`
	Name  string   `json:"name"`
	Price int64    `json:"price"`
}

// CartTotals はカートの集計結果。常に明細から計算し直す。
type CartTotals struct {
	TotalItems  int   `json:"totalItems"`
	TotalAmount int64 `json:"totalAmount"`
}
