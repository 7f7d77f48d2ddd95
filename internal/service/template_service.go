package service

import (
	"context"
	"strings"

	"github.com/demiurge-app/universe-wiki-service/internal/dao"
	"github.com/demiurge-app/universe-wiki-service/internal/domain"
	"github.com/demiurge-app/universe-wiki-service/internal/dto"
	"github.com/demiurge-app/universe-wiki-service/pkg/code"
)

// List returns every template, newest-first
// List 返回全部模板，按创建时间倒序
func (svc *Template) List(ctx context.Context) ([]*dto.TemplateDTO, *code.Code) {
	list, err := svc.templates.List(ctx)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return dto.NewTemplateDTOs(list), nil
}

// Create persists a new global template
// Create 创建全局模板
func (svc *Template) Create(ctx context.Context, params *dto.TemplateCreateRequest) (*dto.TemplateDTO, *code.Code) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, code.ErrorTemplateNameRequired
	}
	templateType := domain.EntityType(params.Type)
	if !domain.ValidTemplateType(templateType) {
		return nil, code.ErrorInvalidTemplateType.WithDetails(params.Type)
	}
	attrs, cerr := templateAttributes(params.Attributes)
	if cerr != nil {
		return nil, cerr
	}

	created, err := svc.templates.Create(ctx, &domain.Template{
		Name:       name,
		Type:       templateType,
		Attributes: attrs,
	})
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return dto.NewTemplateDTO(created), nil
}

// Update overwrites an existing template wholesale. Entities created from it
// earlier keep their copied attributes untouched.
// Update 整体覆盖模板；此前据此创建的条目属性不受影响。
func (svc *Template) Update(ctx context.Context, id int64, params *dto.TemplateUpdateRequest) (*dto.TemplateDTO, *code.Code) {
	t, err := svc.templates.GetByID(ctx, id)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, code.ErrorTemplateNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, code.ErrorTemplateNameRequired
	}
	templateType := domain.EntityType(params.Type)
	if !domain.ValidTemplateType(templateType) {
		return nil, code.ErrorInvalidTemplateType.WithDetails(params.Type)
	}
	attrs, cerr := templateAttributes(params.Attributes)
	if cerr != nil {
		return nil, cerr
	}

	t.Name = name
	t.Type = templateType
	t.Attributes = attrs
	if err := svc.templates.Update(ctx, t); err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return dto.NewTemplateDTO(t), nil
}

// Delete removes the template; existing entities keep their copied attributes
// Delete 删除模板，既有条目的已拷贝属性不受影响
func (svc *Template) Delete(ctx context.Context, id int64) *code.Code {
	if err := svc.templates.Delete(ctx, id); err != nil {
		if dao.IsNotFound(err) {
			return code.ErrorTemplateNotFound
		}
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	return nil
}

func templateAttributes(attrs []dto.AttributeDTO) ([]domain.Attribute, *code.Code) {
	out := make([]domain.Attribute, 0, len(attrs))
	for _, a := range attrs {
		if strings.TrimSpace(a.Key) == "" {
			return nil, code.ErrorTemplateAttrKeyRequired
		}
		out = append(out, domain.Attribute{Key: a.Key, Value: a.Value})
	}
	return out, nil
}
