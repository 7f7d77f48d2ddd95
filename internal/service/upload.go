package service

import (
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/demiurge-app/universe-wiki-service/internal/domain"
	"github.com/demiurge-app/universe-wiki-service/pkg/code"
	"github.com/demiurge-app/universe-wiki-service/pkg/fileurl"
	"github.com/demiurge-app/universe-wiki-service/pkg/logger"

	"go.uber.org/zap"
)

// defaultAllowExts applies when the allow-list is left empty in config
// defaultAllowExts 当配置白名单为空时生效
var defaultAllowExts = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// validateImage checks an upload before anything touches disk or the database.
// The reader is rewound after sniffing so it can be streamed to the store.
// validateImage 在写盘和写库之前校验上传内容，嗅探后将读取位置回退。
func validateImage(file multipart.File, header *multipart.FileHeader, cfg UploadConfig) *code.Code {
	if file == nil || header == nil {
		return code.ErrorUploadMissingFile
	}

	maxSize := int64(cfg.MaxSizeMB) * 1024 * 1024
	if maxSize > 0 && header.Size > maxSize {
		return code.ErrorUploadTooLarge
	}

	allowExts := cfg.AllowExts
	if len(allowExts) == 0 {
		allowExts = defaultAllowExts
	}
	if !fileurl.IsContainExt(header.Filename, allowExts) {
		return code.ErrorUnsupportedMedia.WithDetails(header.Filename)
	}

	// Extension alone is spoofable, sniff the leading bytes too
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return code.ErrorUploadFailed
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return code.ErrorUploadFailed
	}
	if !strings.HasPrefix(http.DetectContentType(buf[:n]), "image/") {
		return code.ErrorUnsupportedMedia.WithDetails(header.Filename)
	}

	return nil
}

// fileKeyFromURL recovers the stored file key from a public imageUrl
// fileKeyFromURL 从公开 imageUrl 还原存储文件键
func fileKeyFromURL(imageURL, urlPrefix string) string {
	return strings.TrimPrefix(imageURL, strings.TrimSuffix(urlPrefix, "/")+"/")
}

// removeStoredFile deletes a superseded blob. Orphaned files are tolerable,
// dangling records are not, so failures are logged and swallowed.
// removeStoredFile 删除被替换的文件，失败仅记录日志不中断流程。
func removeStoredFile(store domain.FileStore, lg *zap.Logger, imageURL, urlPrefix string) {
	if imageURL == "" {
		return
	}
	fileKey := fileKeyFromURL(imageURL, urlPrefix)
	if err := store.Delete(fileKey); err != nil {
		lg.Warn("failed to remove stored file",
			zap.String(logger.FieldFileKey, fileKey),
			zap.Error(err))
	}
}

// storeImage validates and persists an upload, returning the public imageUrl
// storeImage 校验并保存上传文件，返回公开 imageUrl
func storeImage(store domain.FileStore, file multipart.File, header *multipart.FileHeader, cfg UploadConfig) (string, *code.Code) {
	if cerr := validateImage(file, header, cfg); cerr != nil {
		return "", cerr
	}
	fileKey := fileurl.GenerateFileKey(header.Filename)
	if _, err := store.SendFile(fileKey, file); err != nil {
		return "", code.ErrorUploadFailed.WithDetails(err.Error())
	}
	return strings.TrimSuffix(cfg.URLPrefix, "/") + "/" + fileKey, nil
}
