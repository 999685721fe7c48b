package axcl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetLoggerNil(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	SetLogger(nil)
	require.NotNil(t, Logger())

	// Open without its own logger falls back to the package one.
	_, err := Open(Config{
		LibDir:     t.TempDir(),
		Subsystems: []Subsystem{subsystemCount},
	})
	assert.ErrorContains(t, err, "unknown subsystem")
}

func TestSetLoggerBeforeFirstUse(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	l := zap.NewExample()
	SetLogger(l)
	assert.Same(t, l, Logger())
	assert.Same(t, l, newBinding(nil).Logger())
}
