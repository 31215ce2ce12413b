package usecase

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// ValidationError はフィールド名→メッセージの形で返す入力エラー。
// フォーム側が該当フィールドを赤くできるよう、例外ではなく構造で返す。
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func NewValidationError(fields map[string]string) error {
	return &ValidationError{Fields: fields}
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

// usecaseに渡す部品（本物は cmd 側で組み立てる）

type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}
