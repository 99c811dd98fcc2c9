package zerologadapter_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/myqdrv/myq"
	"github.com/myqdrv/myq/log/zerologadapter"
)

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	zlogger := zerolog.New(&buf)
	logger := zerologadapter.NewLogger(zlogger)
	logger.Log(context.Background(), myq.LogLevelInfo, "hello", map[string]interface{}{"one": "two"})
	const want = `{"level":"info","module":"myq","one":"two","message":"hello"}
`
	got := buf.String()
	if got != want {
		t.Errorf("%s != %s", got, want)
	}
}
