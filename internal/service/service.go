// Package service carries the business rules between the HTTP layer and the
// repositories. Every method returns *code.Code errors that the handlers turn
// into API responses.
// Package service 承载业务规则，所有方法返回 *code.Code 错误供处理器转换为 API 响应。
package service

import (
	"github.com/demiurge-app/universe-wiki-service/internal/domain"

	"go.uber.org/zap"
)

// UploadConfig governs cover image uploads
// UploadConfig 封面图片上传配置
type UploadConfig struct {
	// URLPrefix is the public path prefix stored in imageUrl // 公开访问路径前缀
	URLPrefix string
	// MaxSizeMB caps a single upload // 单个文件大小上限
	MaxSizeMB int
	// AllowExts is the extension allow-list, lowercase with dot // 扩展名白名单
	AllowExts []string
}

// Universe implements the universe operations
// Universe 宇宙业务服务
type Universe struct {
	universes domain.UniverseRepository
	entities  domain.EntityRepository
	store     domain.FileStore
	upload    UploadConfig
	logger    *zap.Logger
}

// NewUniverse creates the universe service
func NewUniverse(universes domain.UniverseRepository, entities domain.EntityRepository, store domain.FileStore, upload UploadConfig, logger *zap.Logger) *Universe {
	return &Universe{universes: universes, entities: entities, store: store, upload: upload, logger: logger}
}

// Entity implements the entity operations
// Entity 条目业务服务
type Entity struct {
	entities  domain.EntityRepository
	universes domain.UniverseRepository
	templates domain.TemplateRepository
	store     domain.FileStore
	upload    UploadConfig
	logger    *zap.Logger
}

// NewEntity creates the entity service
func NewEntity(entities domain.EntityRepository, universes domain.UniverseRepository, templates domain.TemplateRepository, store domain.FileStore, upload UploadConfig, logger *zap.Logger) *Entity {
	return &Entity{entities: entities, universes: universes, templates: templates, store: store, upload: upload, logger: logger}
}

// Template implements the template operations
// Template 模板业务服务
type Template struct {
	templates domain.TemplateRepository
	logger    *zap.Logger
}

// NewTemplate creates the template service
func NewTemplate(templates domain.TemplateRepository, logger *zap.Logger) *Template {
	return &Template{templates: templates, logger: logger}
}
