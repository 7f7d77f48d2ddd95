package service

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/demiurge-app/universe-wiki-service/internal/dao"
	"github.com/demiurge-app/universe-wiki-service/internal/domain"
	"github.com/demiurge-app/universe-wiki-service/internal/dto"
	"github.com/demiurge-app/universe-wiki-service/pkg/code"
	"github.com/demiurge-app/universe-wiki-service/pkg/logger"
	"github.com/demiurge-app/universe-wiki-service/pkg/wikilink"

	"github.com/jinzhu/copier"
	"go.uber.org/zap"
)

// List returns a universe's entities, newest-first, optionally filtered by type
// List 返回宇宙的条目列表，可按类型筛选
func (svc *Entity) List(ctx context.Context, params *dto.EntityListRequest) ([]*dto.EntityDTO, *code.Code) {
	entityType := domain.EntityType(params.Type)
	if params.Type != "" && !domain.ValidEntityType(entityType) {
		return nil, code.ErrorInvalidEntityType.WithDetails(params.Type)
	}
	if _, err := svc.universes.GetByID(ctx, params.UniverseID); err != nil {
		if dao.IsNotFound(err) {
			return nil, code.ErrorUniverseNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	list, err := svc.entities.ListByUniverse(ctx, params.UniverseID, entityType)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return dto.NewEntityDTOs(list), nil
}

// Get returns one entity
func (svc *Entity) Get(ctx context.Context, id int64) (*dto.EntityDTO, *code.Code) {
	e, err := svc.entities.GetByID(ctx, id)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, code.ErrorEntityNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return dto.NewEntityDTO(e), nil
}

// Create persists a new entity. When TemplateID is set the template's
// attribute list is deep-copied in; a missing template is silently ignored
// and the entity starts blank.
// Create 创建条目。指定模板时深拷贝其属性列表；模板不存在则静默忽略。
func (svc *Entity) Create(ctx context.Context, params *dto.EntityCreateRequest) (*dto.EntityDTO, *code.Code) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, code.ErrorEntityNameRequired
	}
	entityType := domain.EntityType(params.Type)
	if !domain.ValidEntityType(entityType) {
		return nil, code.ErrorInvalidEntityType.WithDetails(params.Type)
	}
	if _, err := svc.universes.GetByID(ctx, params.UniverseID); err != nil {
		if dao.IsNotFound(err) {
			return nil, code.ErrorUniverseNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	var attrs []domain.Attribute
	if params.TemplateID != 0 {
		tpl, err := svc.templates.GetByID(ctx, params.TemplateID)
		switch {
		case err == nil:
			// Copy severs the link, later template edits never touch the entity
			if cerr := copier.CopyWithOption(&attrs, &tpl.Attributes, copier.Option{DeepCopy: true}); cerr != nil {
				return nil, code.ErrorServerInternal.WithDetails(cerr.Error())
			}
		case dao.IsNotFound(err):
			svc.logger.Debug("template missing at entity creation, starting blank",
				zap.Int64(logger.FieldTemplateID, params.TemplateID))
		default:
			return nil, code.ErrorDBQuery.WithDetails(err.Error())
		}
	}

	created, err := svc.entities.Create(ctx, &domain.Entity{
		UniverseID:  params.UniverseID,
		Type:        entityType,
		Name:        name,
		Description: params.Description,
		Attributes:  attrs,
	})
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return dto.NewEntityDTO(created), nil
}

// Update applies the non-nil fields of params. A present attribute list
// replaces the stored one wholesale, order included.
// Update 应用非 nil 字段；属性列表一经提供即整体替换。
func (svc *Entity) Update(ctx context.Context, id int64, params *dto.EntityUpdateRequest) (*dto.EntityDTO, *code.Code) {
	e, err := svc.entities.GetByID(ctx, id)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, code.ErrorEntityNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return nil, code.ErrorEntityNameRequired
		}
		e.Name = name
	}
	if params.Description != nil {
		e.Description = *params.Description
	}
	if params.Attributes != nil {
		e.Attributes = dto.DomainAttributes(*params.Attributes)
	}

	if err := svc.entities.Update(ctx, e); err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return dto.NewEntityDTO(e), nil
}

// SetImage stores a new cover image and removes the superseded one
// SetImage 保存新封面并删除被替换的旧文件
func (svc *Entity) SetImage(ctx context.Context, id int64, file multipart.File, header *multipart.FileHeader) (*dto.EntityDTO, *code.Code) {
	e, err := svc.entities.GetByID(ctx, id)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, code.ErrorEntityNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	imageURL, cerr := storeImage(svc.store, file, header, svc.upload)
	if cerr != nil {
		return nil, cerr
	}

	previous := e.ImageURL
	e.ImageURL = imageURL
	if err := svc.entities.Update(ctx, e); err != nil {
		removeStoredFile(svc.store, svc.logger, imageURL, svc.upload.URLPrefix)
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	removeStoredFile(svc.store, svc.logger, previous, svc.upload.URLPrefix)
	return dto.NewEntityDTO(e), nil
}

// Delete removes the entity record and its stored cover image
// Delete 删除条目记录及其封面文件
func (svc *Entity) Delete(ctx context.Context, id int64) *code.Code {
	e, err := svc.entities.GetByID(ctx, id)
	if err != nil {
		if dao.IsNotFound(err) {
			return code.ErrorEntityNotFound
		}
		return code.ErrorDBQuery.WithDetails(err.Error())
	}

	removeStoredFile(svc.store, svc.logger, e.ImageURL, svc.upload.URLPrefix)

	if err := svc.entities.Delete(ctx, id); err != nil {
		if dao.IsNotFound(err) {
			return code.ErrorEntityNotFound
		}
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	svc.logger.Info("entity deleted", zap.Int64(logger.FieldEntityID, id))
	return nil
}

// ResolveLinks splits the entity's description into text, link and unresolved
// segments against the names of the same universe's entities.
// ResolveLinks 以同宇宙条目名为候选，将描述解析为文本、链接、未解析三类片段。
func (svc *Entity) ResolveLinks(ctx context.Context, id int64) (*dto.EntityLinksDTO, *code.Code) {
	e, err := svc.entities.GetByID(ctx, id)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, code.ErrorEntityNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	siblings, err := svc.entities.ListByUniverse(ctx, e.UniverseID, "")
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	candidates := make([]wikilink.Candidate, 0, len(siblings))
	for _, s := range siblings {
		candidates = append(candidates, wikilink.Candidate{ID: s.ID, Name: s.Name})
	}

	return &dto.EntityLinksDTO{
		EntityID: e.ID,
		Segments: wikilink.Resolve(e.Description, candidates),
	}, nil
}
