// Package local_fs stores uploaded blobs on the local filesystem
// Package local_fs 将上传的文件存储在本地文件系统
package local_fs

import (
	"github.com/demiurge-app/universe-wiki-service/pkg/fileurl"
)

// Config local filesystem storage configuration // 本地文件系统存储配置
type Config struct {
	// SavePath directory uploads are written to // 上传文件保存目录
	SavePath string `yaml:"save-path" default:"storage/uploads"`
	// HttpfsIsEnable whether the save path is served over HTTP // 是否通过 HTTP 提供保存目录
	HttpfsIsEnable bool `yaml:"httpfs-is-enable" default:"true"`
}

// LocalFS is the local filesystem blob store
type LocalFS struct {
	Config *Config
}

// NewClient creates a LocalFS store
func NewClient(config *Config) (*LocalFS, error) {
	return &LocalFS{Config: config}, nil
}

func (p *LocalFS) getSavePath() string {
	return fileurl.PathSuffixCheckAdd(p.Config.SavePath, "/")
}
