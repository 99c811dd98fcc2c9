package testingadapter_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/myqdrv/myq"
	"github.com/myqdrv/myq/log/testingadapter"
)

type capturingLogger struct {
	lines []string
}

func (l *capturingLogger) Log(args ...interface{}) {
	l.lines = append(l.lines, fmt.Sprint(args...))
}

func TestLogger(t *testing.T) {
	cl := &capturingLogger{}
	logger := testingadapter.NewLogger(cl)
	logger.Log(context.Background(), myq.LogLevelDebug, "hello", map[string]interface{}{"k": "v"})
	if len(cl.lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(cl.lines))
	}
}
