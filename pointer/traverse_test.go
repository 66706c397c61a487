package pointer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() map[string]any {
	return map[string]any{
		"title": "gson",
		"a/b":   "escaped key",
		"nested": map[string]any{
			"deep": map[string]any{
				"value": 42,
			},
		},
		"list": []any{
			map[string]any{"id": "first"},
			map[string]any{"id": "second"},
		},
	}
}

func TestGet(t *testing.T) {
	data := sampleData()

	tests := []struct {
		name   string
		ptr    string
		want   any
		wantOK bool
	}{
		{name: "top level", ptr: "/title", want: "gson", wantOK: true},
		{name: "nested", ptr: "/nested/deep/value", want: 42, wantOK: true},
		{name: "array index", ptr: "/list/1/id", want: "second", wantOK: true},
		{name: "escaped key", ptr: "/a~1b", want: "escaped key", wantOK: true},
		{name: "fragment form", ptr: "#/nested/deep/value", want: 42, wantOK: true},
		{name: "missing key", ptr: "/missing", wantOK: false},
		{name: "missing deep path", ptr: "/missing/deep/path", wantOK: false},
		{name: "index out of range", ptr: "/list/5", wantOK: false},
		{name: "non-numeric index on array", ptr: "/list/first", wantOK: false},
		{name: "negative index rejected", ptr: "/list/-1", wantOK: false},
		{name: "traversal into scalar", ptr: "/title/deeper", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Get(data, tt.ptr)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			} else {
				assert.Nil(t, got)
			}
		})
	}
}

func TestGetRoot(t *testing.T) {
	data := sampleData()

	got, ok := Get(data, "")
	require.True(t, ok)
	assert.Equal(t, data, got)

	// the root pointer resolves against anything, scalars and nil included
	got, ok = Get("scalar", "")
	require.True(t, ok)
	assert.Equal(t, "scalar", got)

	got, ok = Get(nil, "")
	require.True(t, ok)
	assert.Nil(t, got)
}

func TestGetOnEmptyData(t *testing.T) {
	_, ok := Get(map[string]any{}, "/missing/deep/path")
	assert.False(t, ok)

	_, ok = Get(nil, "/missing")
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	t.Run("existing key", func(t *testing.T) {
		data := Set(map[string]any{"a": 1}, "/a", 2)
		assert.Equal(t, map[string]any{"a": 2}, data)
	})

	t.Run("creates nested maps", func(t *testing.T) {
		data := Set(map[string]any{}, "/a/b/c", "deep")
		v, ok := Get(data, "/a/b/c")
		require.True(t, ok)
		assert.Equal(t, "deep", v)
	})

	t.Run("creates root when absent", func(t *testing.T) {
		data := Set(nil, "/a/b", 1)
		require.IsType(t, map[string]any{}, data)
		v, ok := Get(data, "/a/b")
		require.True(t, ok)
		assert.Equal(t, 1, v)
	})

	t.Run("creates array root for numeric segment", func(t *testing.T) {
		data := Set(nil, "/0", "x")
		assert.Equal(t, []any{"x"}, data)
	})

	t.Run("append marker pushes", func(t *testing.T) {
		data := Set(map[string]any{"list": []any{"a"}}, "/list/[]", "b")
		assert.Equal(t, []any{"a", "b"}, data.(map[string]any)["list"])
	})

	t.Run("append marker creates array and child container", func(t *testing.T) {
		data := Set(map[string]any{}, "/list/[]/value", 42)
		assert.Equal(t, map[string]any{"list": []any{map[string]any{"value": 42}}}, data)
	})

	t.Run("array index grows with nil gap fill", func(t *testing.T) {
		data := Set(map[string]any{"a": []any{0, 1}}, "/a/4", 9)
		assert.Equal(t, []any{0, 1, nil, nil, 9}, data.(map[string]any)["a"])
	})

	t.Run("root array growth returns new header", func(t *testing.T) {
		data := Set([]any{}, "/[]", 1)
		assert.Equal(t, []any{1}, data)
	})

	t.Run("numeric segment on map is a literal key", func(t *testing.T) {
		data := Set(map[string]any{}, "/0", "x")
		assert.Equal(t, map[string]any{"0": "x"}, data)
	})

	t.Run("append marker on map is a literal key", func(t *testing.T) {
		data := Set(map[string]any{"a": map[string]any{}}, "/a/[]", 1)
		assert.Equal(t, map[string]any{"a": map[string]any{"[]": 1}}, data)
	})

	t.Run("scalar intermediate replaced by container", func(t *testing.T) {
		data := Set(map[string]any{"a": 1}, "/a/b", 2)
		assert.Equal(t, map[string]any{"a": map[string]any{"b": 2}}, data)
	})

	t.Run("root pointer replaces root", func(t *testing.T) {
		assert.Equal(t, "new", Set(map[string]any{"a": 1}, "", "new"))
	})

	t.Run("mutates in place when root exists", func(t *testing.T) {
		data := map[string]any{}
		returned := Set(data, "/a", 1)
		assert.Equal(t, map[string]any{"a": 1}, data)
		assert.Equal(t, data, returned)
	})
}

func TestSetGetRoundTrip(t *testing.T) {
	pointers := []string{
		"/plain",
		"/nested/deep/value",
		"/list/0",
		"/a~1b/c~0d",
		"#/fragment/path",
	}
	for _, ptr := range pointers {
		data := Set(nil, ptr, "payload")
		v, ok := Get(data, ptr)
		require.True(t, ok, "get after set via %q", ptr)
		assert.Equal(t, "payload", v, "value via %q", ptr)
	}
}

func TestDelete(t *testing.T) {
	t.Run("map key", func(t *testing.T) {
		data := Delete(map[string]any{"a": 1, "b": 2}, "/a")
		assert.Equal(t, map[string]any{"b": 2}, data)
	})

	t.Run("array splice shrinks length", func(t *testing.T) {
		data := Delete(map[string]any{"a": []any{0, 1}}, "/a/1")
		assert.Equal(t, map[string]any{"a": []any{0}}, data)
	})

	t.Run("array splice shifts elements left", func(t *testing.T) {
		data := Delete(map[string]any{"a": []any{"x", "y", "z"}}, "/a/0")
		assert.Equal(t, []any{"y", "z"}, data.(map[string]any)["a"])
	})

	t.Run("root array splice returns new header", func(t *testing.T) {
		data := Delete([]any{1, 2, 3}, "/0")
		assert.Equal(t, []any{2, 3}, data)
	})

	t.Run("nested below array element", func(t *testing.T) {
		data := Delete(sampleData(), "/list/0/id")
		assert.Equal(t, map[string]any{}, data.(map[string]any)["list"].([]any)[0])
	})

	t.Run("missing path is a no-op", func(t *testing.T) {
		orig := sampleData()
		data := Delete(orig, "/missing/deep/path")
		assert.Equal(t, sampleData(), data)
	})

	t.Run("root pointer is a no-op", func(t *testing.T) {
		orig := sampleData()
		assert.Equal(t, sampleData(), Delete(orig, ""))
	})

	t.Run("out of range index is a no-op", func(t *testing.T) {
		data := Delete(map[string]any{"a": []any{0}}, "/a/5")
		assert.Equal(t, map[string]any{"a": []any{0}}, data)
	})

	t.Run("non-container root is a no-op", func(t *testing.T) {
		assert.Equal(t, "scalar", Delete("scalar", "/a"))
	})
}

func TestDeleteGetAbsent(t *testing.T) {
	data := sampleData()
	data = Delete(data, "/nested/deep/value").(map[string]any)
	_, ok := Get(data, "/nested/deep/value")
	assert.False(t, ok)

	data = Delete(data, "/list/1").(map[string]any)
	_, ok = Get(data, "/list/1")
	assert.False(t, ok)
}

func TestPointerMethods(t *testing.T) {
	p := Parse("/nested/deep/value")
	data := sampleData()

	v, ok := p.Get(data)
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.True(t, p.Has(data))

	data = p.Set(data, 43).(map[string]any)
	v, _ = p.Get(data)
	assert.Equal(t, 43, v)

	data = p.Delete(data).(map[string]any)
	assert.False(t, p.Has(data))
}

func TestSegmentListTraversal(t *testing.T) {
	// a segment list addresses keys verbatim, even when they contain
	// characters that would need escaping in string form
	data := map[string]any{"a/b": map[string]any{"c~d": 1}}
	p := FromSegments([]string{"a/b", "c~d"})

	v, ok := p.Get(data)
	require.True(t, ok)
	assert.Equal(t, 1, v)
}
