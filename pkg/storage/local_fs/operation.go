package local_fs

import (
	"io"
	"os"

	"github.com/demiurge-app/universe-wiki-service/pkg/fileurl"
)

// SendFile writes file content under fileKey and returns the stored key.
// A partially written file is removed on any failure so no torn blob survives.
// SendFile 以 fileKey 写入文件内容并返回存储键，失败时删除写了一半的文件。
func (p *LocalFS) SendFile(fileKey string, file io.Reader) (string, error) {
	dst := p.getSavePath() + fileKey

	if err := fileurl.CreatePath(dst, os.ModePerm); err != nil {
		return "", err
	}

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}

	if _, err = io.Copy(out, file); err != nil {
		out.Close()
		os.Remove(dst)
		return "", err
	}
	if err = out.Close(); err != nil {
		os.Remove(dst)
		return "", err
	}

	return fileKey, nil
}
