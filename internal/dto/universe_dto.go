// Package dto defines request bindings and response shapes for the API layer
// Package dto 定义 API 层的请求绑定与响应结构
package dto

import (
	"time"

	"github.com/demiurge-app/universe-wiki-service/internal/domain"
	"github.com/demiurge-app/universe-wiki-service/pkg/timex"
)

// UniverseCreateRequest creates a universe
// UniverseCreateRequest 创建宇宙请求
type UniverseCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UniverseUpdateRequest partially updates a universe; nil fields are untouched
// UniverseUpdateRequest 部分更新宇宙，nil 字段保持不变
type UniverseUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// UniverseDTO is the API representation of a universe
// UniverseDTO 宇宙的 API 表示
type UniverseDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`
	CreatedAt   string `json:"createdAt"`
}

// NewUniverseDTO converts a domain universe to its API shape
func NewUniverseDTO(u *domain.Universe) *UniverseDTO {
	return &UniverseDTO{
		ID:          u.ID,
		Name:        u.Name,
		Description: u.Description,
		ImageURL:    u.ImageURL,
		CreatedAt:   formatTime(u.CreatedAt),
	}
}

// NewUniverseDTOs converts a domain slice
func NewUniverseDTOs(list []*domain.Universe) []*UniverseDTO {
	out := make([]*UniverseDTO, 0, len(list))
	for _, u := range list {
		out = append(out, NewUniverseDTO(u))
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timex.Layout)
}
