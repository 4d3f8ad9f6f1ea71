// Package version 빌드 시점에 주입된 버전 정보와 실행 환경 정보를 제공합니다.
//
// 버전 값은 링커 플래그로 주입합니다.
//
//	go build -ldflags "-X github.com/darkkaiser/wcib-server/internal/pkg/version.appVersion=v1.2.0 \
//	                   -X github.com/darkkaiser/wcib-server/internal/pkg/version.buildNumber=42"
//
// 주입되지 않은 값은 실행 파일의 VCS 메타데이터(debug.ReadBuildInfo)에서 보완합니다.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
)

const unknown = "unknown"

// 링커 플래그(-X)로 주입되는 값입니다. 직접 참조하지 말고 Get()을 사용합니다.
var (
	appVersion    = ""
	gitCommitHash = ""
	buildDate     = ""
	buildNumber   = ""
)

// readBuildInfo 테스트에서 교체할 수 있도록 변수로 둡니다.
var readBuildInfo = debug.ReadBuildInfo

var (
	current Info
	once    sync.Once
)

// Info 애플리케이션 빌드 정보입니다.
type Info struct {
	Version     string `json:"version"`
	Commit      string `json:"commit"`
	BuildDate   string `json:"build_date"`
	BuildNumber string `json:"build_number"`
	GoVersion   string `json:"go_version"`
	OS          string `json:"os"`
	Arch        string `json:"arch"`
	Modified    bool   `json:"modified"`
}

// Get 프로세스의 빌드 정보를 반환합니다. 최초 호출 시 한 번만 계산합니다.
func Get() Info {
	once.Do(func() {
		current = resolve(Info{
			Version:     strings.TrimSpace(appVersion),
			Commit:      strings.TrimSpace(gitCommitHash),
			BuildDate:   strings.TrimSpace(buildDate),
			BuildNumber: strings.TrimSpace(buildNumber),
		})
	})
	return current
}

// resolve 비어 있는 필드를 런타임 정보와 VCS 메타데이터로 채웁니다.
// 이미 값이 있는 필드는 덮어쓰지 않습니다.
func resolve(i Info) Info {
	i.GoVersion = runtime.Version()
	i.OS = runtime.GOOS
	i.Arch = runtime.GOARCH

	if bi, ok := readBuildInfo(); ok && bi != nil {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if i.Commit == "" {
					i.Commit = s.Value
				}
			case "vcs.time":
				if i.BuildDate == "" {
					i.BuildDate = s.Value
				}
			case "vcs.modified":
				i.Modified = s.Value == "true"
			}
		}

		if i.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			i.Version = bi.Main.Version
		}
	}

	if i.Version == "" {
		i.Version = unknown
	}
	if i.Commit == "" {
		i.Commit = unknown
	}
	if i.BuildDate == "" {
		i.BuildDate = unknown
	}
	if i.BuildNumber == "" {
		i.BuildNumber = "0"
	}

	return i
}

// ShortCommit 커밋 해시의 앞 7자리를 반환합니다.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 7 && i.Commit != unknown {
		return i.Commit[:7]
	}
	return i.Commit
}

// String 로그와 배너에 출력하는 한 줄 요약입니다.
func (i Info) String() string {
	v := i.Version
	if v == "" {
		v = unknown
	}
	if i.Modified {
		v += "+dirty"
	}

	return fmt.Sprintf("%s (commit: %s, build: %s, date: %s, %s %s/%s)",
		v, i.ShortCommit(), i.BuildNumber, i.BuildDate, i.GoVersion, i.OS, i.Arch)
}
