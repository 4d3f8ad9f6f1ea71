package log

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type safeBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *safeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *safeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

type closeCounter struct {
	count int
}

func (c *closeCounter) Close() error {
	c.count++
	return nil
}

func newEntry(level Level, msg string) *Entry {
	e := logrus.NewEntry(logrus.New())
	e.Level = level
	e.Message = msg
	return e
}

func TestHook_Fire_Routing(t *testing.T) {
	tests := []struct {
		name         string
		level        Level
		withVerbose  bool
		wantMain     bool
		wantCritical bool
		wantVerbose  bool
	}{
		{name: "Error: 메인과 Critical에 기록", level: ErrorLevel, withVerbose: true, wantMain: true, wantCritical: true},
		{name: "Info: 메인에만 기록", level: InfoLevel, withVerbose: true, wantMain: true},
		{name: "Debug: Verbose에만 기록", level: DebugLevel, withVerbose: true, wantVerbose: true},
		{name: "Debug: Verbose 미사용 시 메인에 기록", level: DebugLevel, withVerbose: false, wantMain: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mainBuf, critBuf, verbBuf, consBuf := &safeBuffer{}, &safeBuffer{}, &safeBuffer{}, &safeBuffer{}
			h := &hook{
				mainWriter:     mainBuf,
				criticalWriter: critBuf,
				consoleWriter:  consBuf,
				formatter:      &logrus.TextFormatter{DisableTimestamp: true},
			}
			if tt.withVerbose {
				h.verboseWriter = verbBuf
			}

			require.NoError(t, h.Fire(newEntry(tt.level, "hello")))

			assert.Equal(t, tt.wantMain, mainBuf.String() != "", "main")
			assert.Equal(t, tt.wantCritical, critBuf.String() != "", "critical")
			assert.Equal(t, tt.wantVerbose, verbBuf.String() != "", "verbose")
			assert.Contains(t, consBuf.String(), "hello", "콘솔에는 항상 기록되어야 합니다")
		})
	}
}

func TestHook_Fire_WriteFailure(t *testing.T) {
	mainBuf := &safeBuffer{}
	h := &hook{
		mainWriter:     mainBuf,
		criticalWriter: failWriter{},
		formatter:      &logrus.TextFormatter{DisableTimestamp: true},
	}

	err := h.Fire(newEntry(ErrorLevel, "boom"))

	assert.Error(t, err)
	assert.Contains(t, mainBuf.String(), "boom", "Critical 실패와 무관하게 메인 로그는 기록되어야 합니다")
}

func TestCloser_Idempotent(t *testing.T) {
	mainBuf := &safeBuffer{}
	h := &hook{mainWriter: mainBuf, formatter: &logrus.TextFormatter{}}
	cc := &closeCounter{}
	c := &closer{closers: []io.Closer{cc}, hook: h}

	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	assert.Equal(t, 1, cc.count)
	assert.NoError(t, h.Fire(newEntry(InfoLevel, "after close")))
	assert.Empty(t, mainBuf.String(), "닫힌 hook은 기록하지 않아야 합니다")
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{name: "성공: 운영 프로필", opts: NewProductionOptions("wcib-server")},
		{name: "성공: 개발 프로필", opts: NewDevelopmentOptions("wcib-server")},
		{name: "실패: 이름 누락", opts: Options{}, wantErr: true},
		{name: "실패: 음수 MaxAge", opts: Options{Name: "app", MaxAge: -1}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWithComponentAndFields_DoesNotMutateInput(t *testing.T) {
	fields := Fields{"key": "value"}

	entry := WithComponentAndFields("catalog", fields)

	assert.Equal(t, "catalog", entry.Data["component"])
	assert.Equal(t, "value", entry.Data["key"])
	assert.NotContains(t, fields, "component")
}
