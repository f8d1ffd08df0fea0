package memory

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Seeded(t *testing.T) {
	seed := map[string]any{"export.dir": "out"}
	store := NewConfigStore(seed)

	assert.Equal(t, "out", store.GetString("export.dir"))

	// the seed map is copied
	seed["export.dir"] = "changed"
	assert.Equal(t, "out", store.GetString("export.dir"))
}

func TestConfigStore_SetGetDelete(t *testing.T) {
	store := NewConfigStore(nil)

	require.NoError(t, store.Set("google.client_id", "id"))
	val, ok := store.Get("google.client_id")
	assert.True(t, ok)
	assert.Equal(t, "id", val)

	require.NoError(t, store.Delete("google.client_id"))
	_, ok = store.Get("google.client_id")
	assert.False(t, ok)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		wantStr   string
		wantInt   int
		wantFloat float64
		wantBool  bool
	}{
		{name: "string", value: "x", wantStr: "x"},
		{name: "int", value: 3, wantInt: 3, wantFloat: 3},
		{name: "int64", value: int64(4), wantInt: 4, wantFloat: 4},
		{name: "float64", value: 2.5, wantInt: 2, wantFloat: 2.5},
		{name: "bool", value: true, wantBool: true},
		{name: "nil", value: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewConfigStore(map[string]any{"k": tt.value})

			assert.Equal(t, tt.wantStr, store.GetString("k"))
			assert.Equal(t, tt.wantInt, store.GetInt("k"))
			assert.InDelta(t, tt.wantFloat, store.GetFloat("k"), 0.0001)
			assert.Equal(t, tt.wantBool, store.GetBool("k"))
		})
	}
}

func TestConfigStore_MissingKey(t *testing.T) {
	store := NewConfigStore(nil)

	assert.Empty(t, store.GetString("missing"))
	assert.Zero(t, store.GetInt("missing"))
	assert.Zero(t, store.GetFloat("missing"))
	assert.False(t, store.GetBool("missing"))
	assert.NoError(t, store.Delete("missing"))
}

func TestConfigStore_LoadAndPath(t *testing.T) {
	store := NewConfigStore(nil)

	assert.NoError(t, store.Load())
	assert.Equal(t, ":memory:", store.Path())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store := NewConfigStore(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("oauth.port", n)
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("oauth.port")
		}()
	}
	wg.Wait()

	_, ok := store.Get("oauth.port")
	assert.True(t, ok)
}
