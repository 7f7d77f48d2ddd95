// Package fileurl provides common file path helpers
// Package fileurl 提供通用文件路径工具函数
package fileurl

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GetFileExt gets the file extension, dot included
// GetFileExt 获取文件后缀（含点号）
func GetFileExt(name string) string {
	return path.Ext(name)
}

// IsExist determines if the given path exists
// IsExist 判断所给路径是否存在
func IsExist(dst string) bool {
	_, err := os.Stat(dst)
	if err != nil {
		return os.IsExist(err)
	}
	return true
}

// IsDir determines if the given path is a directory
// IsDir 判断所给路径是否为文件夹
func IsDir(dst string) bool {
	s, err := os.Stat(dst)
	if err != nil {
		return false
	}
	return s.IsDir()
}

// CreatePath creates the parent directory chain for a file path
// CreatePath 为文件路径创建父目录链
func CreatePath(dst string, perm os.FileMode) error {
	return os.MkdirAll(filepath.Dir(dst), perm)
}

// GenerateFileKey builds a collision-resistant server-side file name from the
// client file name's extension only. Client names are never trusted.
// GenerateFileKey 仅使用客户端文件名的后缀生成服务端文件名，绝不信任客户端文件名
func GenerateFileKey(clientName string) string {
	ext := strings.ToLower(GetFileExt(clientName))
	return fmt.Sprintf("%d-%s%s", time.Now().UnixNano(), uuid.New().String()[:8], ext)
}

// IsContainExt determines if the file extension is within the allowed range,
// case-insensitively
// IsContainExt 判断文件后缀是否在允许范围内（大小写不敏感）
func IsContainExt(name string, allowExts []string) bool {
	ext := strings.ToUpper(GetFileExt(name))
	for _, allowExt := range allowExts {
		if strings.ToUpper(allowExt) == ext {
			return true
		}
	}
	return false
}

// PathSuffixCheckAdd appends suffix to p unless already present
// PathSuffixCheckAdd 若路径末尾无 suffix 则补充
func PathSuffixCheckAdd(p string, suffix string) string {
	if !strings.HasSuffix(p, suffix) {
		return p + suffix
	}
	return p
}
