// Package domain holds pure domain models and the persistence interfaces
// Package domain 保存纯领域模型与持久化接口
package domain

import (
	"context"
	"io"
)

// UniverseRepository persists universes
// UniverseRepository 宇宙持久化接口
type UniverseRepository interface {
	// List returns all universes, newest-first
	List(ctx context.Context) ([]*Universe, error)
	// GetByID returns one universe or gorm.ErrRecordNotFound
	GetByID(ctx context.Context, id int64) (*Universe, error)
	// Create persists a new universe and returns it with ID and CreatedAt set
	Create(ctx context.Context, universe *Universe) (*Universe, error)
	// Update overwrites the stored record with the given one
	Update(ctx context.Context, universe *Universe) error
	// Delete removes the record
	Delete(ctx context.Context, id int64) error
}

// EntityRepository persists entities
// EntityRepository 条目持久化接口
type EntityRepository interface {
	// ListByUniverse returns the universe's entities, newest-first, optionally
	// filtered by type (empty type means all)
	ListByUniverse(ctx context.Context, universeID int64, entityType EntityType) ([]*Entity, error)
	// GetByID returns one entity or gorm.ErrRecordNotFound
	GetByID(ctx context.Context, id int64) (*Entity, error)
	// Create persists a new entity and returns it with ID and CreatedAt set
	Create(ctx context.Context, entity *Entity) (*Entity, error)
	// Update overwrites the stored record with the given one
	Update(ctx context.Context, entity *Entity) error
	// Delete removes the record
	Delete(ctx context.Context, id int64) error
	// DeleteByUniverse removes every entity of a universe
	DeleteByUniverse(ctx context.Context, universeID int64) error
}

// TemplateRepository persists templates
// TemplateRepository 模板持久化接口
type TemplateRepository interface {
	// List returns all templates, newest-first
	List(ctx context.Context) ([]*Template, error)
	// GetByID returns one template or gorm.ErrRecordNotFound
	GetByID(ctx context.Context, id int64) (*Template, error)
	// Create persists a new template and returns it with ID and CreatedAt set
	Create(ctx context.Context, template *Template) (*Template, error)
	// Update overwrites the stored record with the given one
	Update(ctx context.Context, template *Template) error
	// Delete removes the record
	Delete(ctx context.Context, id int64) error
}

// FileStore stores uploaded blobs outside the document store
// FileStore 在文档库之外存储上传的文件
type FileStore interface {
	// SendFile writes file content under fileKey and returns the stored key
	SendFile(fileKey string, file io.Reader) (string, error)
	// Delete removes the blob; a missing blob is not an error
	Delete(fileKey string) error
}
