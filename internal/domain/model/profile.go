package model

// Profile はログイン済みユーザーの連絡先情報。
type Profile struct {
	Name             string `json:"name"`
	Mobile           string `json:"mobile"`
	Address          string `json:"address"`
	Email            string `json:"email,omitempty"`
	Gender           string `json:"gender,omitempty"`
	Age              int    `json:"age,omitempty"`
	BloodGroup       string `json:"bloodGroup,omitempty"`
	AlternateContact string `json:"alternateContact,omitempty"`
}

// SubMenuOption はサブヘッダーのメニュー項目。
type SubMenuOption struct {
	Text  string   `json:"text"`
	Items []string `json:"items,omitempty"`
}
