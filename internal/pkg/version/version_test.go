package version

import (
	"runtime"
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stubBuildInfo(t *testing.T, bi *debug.BuildInfo, ok bool) {
	t.Helper()

	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, ok }
	t.Cleanup(func() { readBuildInfo = orig })
}

func TestResolve(t *testing.T) {
	vcs := &debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "f25b8bf0123456789"},
			{Key: "vcs.time", Value: "2025-07-01T10:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	tests := []struct {
		name   string
		input  Info
		bi     *debug.BuildInfo
		ok     bool
		expect Info
	}{
		{
			name:  "성공: 주입된 값 우선",
			input: Info{Version: "v1.2.0", Commit: "abc1234", BuildDate: "2025-08-01", BuildNumber: "42"},
			bi:    vcs,
			ok:    true,
			expect: Info{
				Version: "v1.2.0", Commit: "abc1234", BuildDate: "2025-08-01", BuildNumber: "42", Modified: true,
			},
		},
		{
			name:  "성공: VCS 메타데이터로 보완",
			input: Info{},
			bi:    vcs,
			ok:    true,
			expect: Info{
				Version: unknown, Commit: "f25b8bf0123456789", BuildDate: "2025-07-01T10:00:00Z", BuildNumber: "0", Modified: true,
			},
		},
		{
			name:  "성공: 빌드 정보 없음",
			input: Info{},
			ok:    false,
			expect: Info{
				Version: unknown, Commit: unknown, BuildDate: unknown, BuildNumber: "0",
			},
		},
		{
			name:  "성공: 모듈 버전 사용",
			input: Info{},
			bi:    &debug.BuildInfo{Main: debug.Module{Version: "v0.3.1"}},
			ok:    true,
			expect: Info{
				Version: "v0.3.1", Commit: unknown, BuildDate: unknown, BuildNumber: "0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubBuildInfo(t, tt.bi, tt.ok)

			got := resolve(tt.input)

			tt.expect.GoVersion = runtime.Version()
			tt.expect.OS = runtime.GOOS
			tt.expect.Arch = runtime.GOARCH
			assert.Equal(t, tt.expect, got)
		})
	}
}

func TestInfo_String(t *testing.T) {
	i := Info{
		Version:     "v1.2.0",
		Commit:      "f25b8bf0123456789",
		BuildDate:   "2025-07-01",
		BuildNumber: "42",
		GoVersion:   "go1.24.0",
		OS:          "linux",
		Arch:        "amd64",
		Modified:    true,
	}

	assert.Equal(t, "v1.2.0+dirty (commit: f25b8bf, build: 42, date: 2025-07-01, go1.24.0 linux/amd64)", i.String())
	assert.Equal(t, unknown, Info{Commit: unknown}.ShortCommit())
}

func TestGet(t *testing.T) {
	first := Get()

	assert.Equal(t, first, Get())
	assert.NotEmpty(t, first.Version)
	assert.Equal(t, runtime.Version(), first.GoVersion)
}
