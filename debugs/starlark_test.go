package debugs

import (
	"testing"

	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	type tapeState struct {
		Ptr   int
		Cells []byte
		note  string
	}

	testCases := []struct {
		name     string
		input    any
		expected starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte{1, 2}, starlark.Bytes("\x01\x02")},
		{"string", "hello", starlark.String("hello")},
		{"int", int(42), starlark.MakeInt(42)},
		{"byte cell", uint8(255), starlark.MakeUint(255)},
		{"loop table", map[int]int{0: 7, 7: 0}, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.MakeInt(0), starlark.MakeInt(7))
			d.SetKey(starlark.MakeInt(7), starlark.MakeInt(0))
			return d
		}()},
		{"[]int", []int{1, 2, 3}, starlark.NewList([]starlark.Value{
			starlark.MakeInt(1), starlark.MakeInt(2), starlark.MakeInt(3),
		})},
		{"struct", tapeState{Ptr: 1, Cells: []byte{0}, note: "x"}, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.String("Ptr"), starlark.MakeInt(1))
			d.SetKey(starlark.String("Cells"), starlark.NewList([]starlark.Value{starlark.MakeInt(0)}))
			return d
		}()},
		{"nil pointer", (*tapeState)(nil), starlark.None},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%#v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("panic on unsupported type", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("toStarlarkValue did not panic on unsupported type")
			}
		}()
		toStarlarkValue(make(chan bool))
	})
}
