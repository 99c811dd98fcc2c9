package myq

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelFromString(t *testing.T) {
	for _, s := range []string{"trace", "debug", "info", "warn", "error", "none"} {
		ll, err := LogLevelFromString(s)
		require.NoError(t, err)
		assert.Equal(t, s, ll.String())
	}

	_, err := LogLevelFromString("verbose")
	assert.Error(t, err)
}

func TestLogValueTruncates(t *testing.T) {
	long := strings.Repeat("x", 100)
	got := logValue(long).(string)
	assert.Contains(t, got, "truncated 36 bytes")

	assert.Equal(t, "short", logValue("short"))
	assert.Equal(t, "0102", logValue([]byte{1, 2}))
	assert.Equal(t, 7, logValue(7))
}

func TestParameterString(t *testing.T) {
	p := NewParameter("@a", "hello")
	assert.Contains(t, p.String(), "@a")
	assert.Contains(t, p.String(), "hello")
}
