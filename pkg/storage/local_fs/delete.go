package local_fs

import (
	"os"

	"github.com/demiurge-app/universe-wiki-service/pkg/fileurl"
)

// Delete removes the file stored under fileKey; a missing file is not an error
// Delete 删除 fileKey 对应的文件，文件不存在不视为错误
func (p *LocalFS) Delete(fileKey string) error {
	dst := p.getSavePath() + fileKey
	if fileurl.IsExist(dst) {
		return os.Remove(dst)
	}
	return nil
}
