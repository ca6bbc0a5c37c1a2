package initchecker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type provider interface {
	Name() string
}

type impl struct{}

func (impl) Name() string { return "impl" }

func TestCheckInit(t *testing.T) {
	t.Run(`all initialized`, func(t *testing.T) {
		var p provider = impl{}
		require.NotPanics(t, func() {
			CheckInit("provider", p, "count", 0)
		})
	})

	t.Run(`missing dependencies are listed`, func(t *testing.T) {
		var p provider
		var typed *impl
		require.Equal(t, []string{"provider", "typed"}, Missing("provider", p, "typed", typed, "ok", impl{}))
		require.Panics(t, func() {
			CheckInit("provider", p)
		})
	})

	t.Run(`odd arguments`, func(t *testing.T) {
		require.Panics(t, func() {
			CheckInit("provider")
		})
	})
}
