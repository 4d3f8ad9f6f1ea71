package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	apperrors "github.com/darkkaiser/wcib-server/internal/pkg/errors"
	applog "github.com/darkkaiser/wcib-server/pkg/log"
	"github.com/iancoleman/strcase"
)

const (
	archiveFileExt  = ".json"
	tempFilePattern = "catalog-*.tmp"
)

// Archive 갱신 작업으로 얻은 스냅샷을 파일로 보관합니다.
// 파일 이름은 갱신 작업 ID를 kebab-case로 바꾼 값입니다. (예: "SummerShop" -> "summer-shop.json")
type Archive struct {
	dir string
}

// NewArchive dir에 스냅샷을 보관하는 Archive를 생성합니다. 디렉토리가 없으면 만듭니다.
func NewArchive(dir string) (*Archive, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, apperrors.Wrapf(err, apperrors.System, "카탈로그 보관 디렉토리를 생성할 수 없습니다: '%s'", dir)
	}
	return &Archive{dir: dir}, nil
}

// Path id에 해당하는 보관 파일 경로를 반환합니다.
func (a *Archive) Path(id string) string {
	name := strcase.ToKebab(id)
	name = strings.NewReplacer("/", "-", "\\", "-", "..", "-").Replace(name)
	return filepath.Join(a.dir, name+archiveFileExt)
}

// Save 스냅샷을 id에 해당하는 보관 파일에 저장합니다.
func (a *Archive) Save(id string, s *Snapshot) error {
	return WriteFile(a.Path(id), s)
}

// WriteFile 스냅샷의 상품 목록을 들여쓰기 된 JSON 배열로 path에 저장합니다.
// 임시 파일에 쓴 뒤 rename 하므로 읽는 쪽은 완전한 파일만 보게 됩니다.
func WriteFile(path string, s *Snapshot) error {
	data, err := json.MarshalIndent(s.Products(), "", "  ")
	if err != nil {
		return apperrors.Wrap(err, apperrors.Internal, "카탈로그 스냅샷을 JSON으로 변환할 수 없습니다")
	}

	if err := writeAtomic(path, data); err != nil {
		return apperrors.Wrapf(err, apperrors.System, "카탈로그 스냅샷을 저장할 수 없습니다: '%s'", path)
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"path":     path,
		"products": s.Len(),
	}).Debug("카탈로그 스냅샷 저장 완료")

	return nil
}

// Load id로 보관된 스냅샷을 읽습니다. 보관 파일이 없으면 NotFound 에러를 반환합니다.
func (a *Archive) Load(id string) (*Snapshot, error) {
	return (&FileLoader{Path: a.Path(id)}).Load()
}

func writeAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
