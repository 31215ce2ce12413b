package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTenDigits(t *testing.T) {
	p := TenDigits{}
	assert.Equal(t, "ten_digits", p.Name())

	cases := []struct {
		mobile string
		want   bool
	}{
		{"9876543210", true},
		{"1234567890", true}, // 先頭の数字は問わない
		{"0000000000", true},
		{"987654321", false},   // 9桁
		{"98765432101", false}, // 11桁
		{"98765c3210", false},
		{"", false},
		{" 9876543210", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, p.Validate(tc.mobile), tc.mobile)
	}
}

func TestIndianMobile(t *testing.T) {
	p := IndianMobile{}
	assert.Equal(t, "indian_mobile", p.Name())

	cases := []struct {
		mobile string
		want   bool
	}{
		{"9876543210", true},
		{"6000000000", true},
		{"7123456789", true},
		{"8123456789", true},
		{"5876543210", false}, // 先頭は6〜9のみ
		{"1234567890", false},
		{"987654321", false},
		{"98765432101", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, p.Validate(tc.mobile), tc.mobile)
	}
}

func TestValidPinCode(t *testing.T) {
	cases := []struct {
		pin  string
		want bool
	}{
		{"600004", true},
		{"000000", true},
		{"60004", false},
		{"6000041", false},
		{"60000a", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ValidPinCode(tc.pin), tc.pin)
	}
}
