package dto

import (
	"github.com/demiurge-app/universe-wiki-service/internal/domain"
)

// TemplateCreateRequest creates a global attribute template
// TemplateCreateRequest 创建全局属性模板请求
type TemplateCreateRequest struct {
	Name       string         `json:"name" binding:"required"`
	Type       string         `json:"type" binding:"required"`
	Attributes []AttributeDTO `json:"attributes"`
}

// TemplateUpdateRequest overwrites a template wholesale
// TemplateUpdateRequest 整体覆盖模板请求
type TemplateUpdateRequest struct {
	Name       string         `json:"name" binding:"required"`
	Type       string         `json:"type" binding:"required"`
	Attributes []AttributeDTO `json:"attributes"`
}

// TemplateDTO is the API representation of a template
// TemplateDTO 模板的 API 表示
type TemplateDTO struct {
	ID         int64          `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Attributes []AttributeDTO `json:"attributes"`
	CreatedAt  string         `json:"createdAt"`
}

// NewTemplateDTO converts a domain template to its API shape
func NewTemplateDTO(t *domain.Template) *TemplateDTO {
	attrs := make([]AttributeDTO, 0, len(t.Attributes))
	for _, a := range t.Attributes {
		attrs = append(attrs, AttributeDTO{Key: a.Key, Value: a.Value})
	}
	return &TemplateDTO{
		ID:         t.ID,
		Name:       t.Name,
		Type:       string(t.Type),
		Attributes: attrs,
		CreatedAt:  formatTime(t.CreatedAt),
	}
}

// NewTemplateDTOs converts a domain slice
func NewTemplateDTOs(list []*domain.Template) []*TemplateDTO {
	out := make([]*TemplateDTO, 0, len(list))
	for _, t := range list {
		out = append(out, NewTemplateDTO(t))
	}
	return out
}
