package debugs

import (
	"testing"

	"github.com/reusee/bfg/logs"
	"github.com/reusee/dscope"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		new(logs.Module),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"pc":  42,
			"ptr": 0,
		})
	})
}
