package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stores(t *testing.T) map[string]Store {
	t.Helper()
	fileStore, err := NewFileStore(t.TempDir())
	assert.NoError(t, err)
	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fileStore,
	}
}

func TestStore_GetSetDelete(t *testing.T) {
	ctx := context.Background()
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := s.Get(ctx, "missing")
			assert.NoError(t, err)
			assert.False(t, ok)

			assert.NoError(t, s.Set(ctx, "cartItems", []byte(`[{"id":1}]`)))
			raw, ok, err := s.Get(ctx, "cartItems")
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[{"id":1}]`, string(raw))

			// 上書き
			assert.NoError(t, s.Set(ctx, "cartItems", []byte(`[]`)))
			raw, ok, err = s.Get(ctx, "cartItems")
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[]`, string(raw))

			assert.NoError(t, s.Delete(ctx, "cartItems"))
			_, ok, err = s.Get(ctx, "cartItems")
			assert.NoError(t, err)
			assert.False(t, ok)

			// 無いキーの削除は成功扱い
			assert.NoError(t, s.Delete(ctx, "cartItems"))
		})
	}
}

func TestMemoryStore_CopiesValues(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	src := []byte(`{"a":1}`)
	assert.NoError(t, s.Set(ctx, "k", src))
	src[0] = 'X' // 呼び出し側のバッファを汚しても保存値は変わらない

	raw, ok, err := s.Get(ctx, "k")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"a":1}`, string(raw))

	raw[0] = 'Y'
	again, _, err := s.Get(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(again))
}

func TestLoadJSON_MissingKeyReportsNotLoaded(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	var v []string
	ok, err := LoadJSON(ctx, s, "missing", &v)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestLoadJSON_BrokenValueReportsNotLoaded(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	assert.NoError(t, s.Set(ctx, "bloodTests", []byte(`{not json`)))

	var v []string
	ok, err := LoadJSON(ctx, s, "bloodTests", &v)
	assert.NoError(t, err)
	assert.False(t, ok)
}

// 保存値が一部のフィールドを省略していても、読み込み先に前の値が残らない。
func TestLoadJSON_DecodesIntoFreshValue(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	type item struct {
		ID        int64 `json:"id"`
		Published bool  `json:"published"`
	}
	assert.NoError(t, s.Set(ctx, "bloodTests", []byte(`[{"id":1}]`)))

	var out []item
	ok, err := LoadJSON(ctx, s, "bloodTests", &out)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []item{{ID: 1, Published: false}}, out)
}

func TestSaveJSON_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	type entry struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	in := []entry{{ID: "1", Name: "CBC"}}
	assert.NoError(t, SaveJSON(ctx, s, "bloodTests", in))

	var out []entry
	ok, err := LoadJSON(ctx, s, "bloodTests", &out)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, in, out)
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	first, err := NewFileStore(dir)
	assert.NoError(t, err)
	assert.NoError(t, first.Set(ctx, "doctors", []byte(`[]`)))

	second, err := NewFileStore(dir)
	assert.NoError(t, err)
	raw, ok, err := second.Get(ctx, "doctors")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(raw))
}
