package dto

import (
	"github.com/demiurge-app/universe-wiki-service/internal/domain"
	"github.com/demiurge-app/universe-wiki-service/pkg/wikilink"
)

// AttributeDTO is one ordered attribute pair
// AttributeDTO 一个有序属性键值对
type AttributeDTO struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// EntityCreateRequest creates an entity inside a universe
// EntityCreateRequest 在宇宙内创建条目请求
type EntityCreateRequest struct {
	UniverseID  int64  `json:"universeId" binding:"required"`
	Type        string `json:"type" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	// TemplateID seeds the attribute list from a template; zero means blank
	// TemplateID 指定属性模板，为零则不使用模板
	TemplateID int64 `json:"templateId"`
}

// EntityListRequest filters the entity listing
// EntityListRequest 条目列表筛选参数
type EntityListRequest struct {
	UniverseID int64  `form:"universeId" binding:"required"`
	Type       string `form:"type"`
}

// EntityUpdateRequest partially updates an entity; nil fields are untouched.
// Attributes, when present, replace the whole list.
// EntityUpdateRequest 部分更新条目，nil 字段保持不变；属性列表整体替换。
type EntityUpdateRequest struct {
	Name        *string         `json:"name"`
	Description *string         `json:"description"`
	Attributes  *[]AttributeDTO `json:"attributes"`
}

// EntityDTO is the API representation of an entity
// EntityDTO 条目的 API 表示
type EntityDTO struct {
	ID          int64          `json:"id"`
	UniverseID  int64          `json:"universeId"`
	Type        string         `json:"type"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	ImageURL    string         `json:"imageUrl"`
	Attributes  []AttributeDTO `json:"attributes"`
	CreatedAt   string         `json:"createdAt"`
}

// EntityLinksDTO carries a resolved description as a segment sequence
// EntityLinksDTO 将描述解析为分段序列返回
type EntityLinksDTO struct {
	EntityID int64              `json:"entityId"`
	Segments []wikilink.Segment `json:"segments"`
}

// NewEntityDTO converts a domain entity to its API shape
func NewEntityDTO(e *domain.Entity) *EntityDTO {
	attrs := make([]AttributeDTO, 0, len(e.Attributes))
	for _, a := range e.Attributes {
		attrs = append(attrs, AttributeDTO{Key: a.Key, Value: a.Value})
	}
	return &EntityDTO{
		ID:          e.ID,
		UniverseID:  e.UniverseID,
		Type:        string(e.Type),
		Name:        e.Name,
		Description: e.Description,
		ImageURL:    e.ImageURL,
		Attributes:  attrs,
		CreatedAt:   formatTime(e.CreatedAt),
	}
}

// NewEntityDTOs converts a domain slice
func NewEntityDTOs(list []*domain.Entity) []*EntityDTO {
	out := make([]*EntityDTO, 0, len(list))
	for _, e := range list {
		out = append(out, NewEntityDTO(e))
	}
	return out
}

// DomainAttributes converts DTO attributes to domain attributes
func DomainAttributes(attrs []AttributeDTO) []domain.Attribute {
	out := make([]domain.Attribute, 0, len(attrs))
	for _, a := range attrs {
		out = append(out, domain.Attribute{Key: a.Key, Value: a.Value})
	}
	return out
}
