package validator

import "regexp"

// MobilePolicy は携帯番号の検証ルール。
// 入口（フォーム）ごとに使うルールが違うため、名前付きで両方残す。
type MobilePolicy interface {
	Name() string
	Validate(mobile string) bool
}

var (
	tenDigitsRe    = regexp.MustCompile(`^\d{10}$`)
	indianMobileRe = regexp.MustCompile(`^[6-9]\d{9}$`)
	pinCodeRe      = regexp.MustCompile(`^\d{6}$`)
)

// TenDigits は汎用ルール（数字ちょうど10桁）。
type TenDigits struct{}

func (TenDigits) Name() string { return "ten_digits" }

func (TenDigits) Validate(mobile string) bool {
	return tenDigitsRe.MatchString(mobile)
}

// IndianMobile はゲスト購入で使う厳しめルール（先頭 6〜9）。
type IndianMobile struct{}

func (IndianMobile) Name() string { return "indian_mobile" }

func (IndianMobile) Validate(mobile string) bool {
	return indianMobileRe.MatchString(mobile)
}

// ValidPinCode は郵便番号（数字ちょうど6桁）をチェック。
func ValidPinCode(pinCode string) bool {
	return pinCodeRe.MatchString(pinCode)
}
