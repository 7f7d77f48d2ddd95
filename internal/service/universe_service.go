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

	"go.uber.org/zap"
)

// List returns every universe, newest-first
// List 返回全部宇宙，按创建时间倒序
func (svc *Universe) List(ctx context.Context) ([]*dto.UniverseDTO, *code.Code) {
	list, err := svc.universes.List(ctx)
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return dto.NewUniverseDTOs(list), nil
}

// Get returns one universe
func (svc *Universe) Get(ctx context.Context, id int64) (*dto.UniverseDTO, *code.Code) {
	u, err := svc.universes.GetByID(ctx, id)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, code.ErrorUniverseNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return dto.NewUniverseDTO(u), nil
}

// Create persists a new universe
// Create 创建新宇宙
func (svc *Universe) Create(ctx context.Context, params *dto.UniverseCreateRequest) (*dto.UniverseDTO, *code.Code) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, code.ErrorUniverseNameRequired
	}
	created, err := svc.universes.Create(ctx, &domain.Universe{
		Name:        name,
		Description: params.Description,
	})
	if err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return dto.NewUniverseDTO(created), nil
}

// Update applies the non-nil fields of params
// Update 应用 params 中非 nil 的字段
func (svc *Universe) Update(ctx context.Context, id int64, params *dto.UniverseUpdateRequest) (*dto.UniverseDTO, *code.Code) {
	u, err := svc.universes.GetByID(ctx, id)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, code.ErrorUniverseNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return nil, code.ErrorUniverseNameRequired
		}
		u.Name = name
	}
	if params.Description != nil {
		u.Description = *params.Description
	}

	if err := svc.universes.Update(ctx, u); err != nil {
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	return dto.NewUniverseDTO(u), nil
}

// SetImage stores a new cover image and removes the superseded one
// SetImage 保存新封面并删除被替换的旧文件
func (svc *Universe) SetImage(ctx context.Context, id int64, file multipart.File, header *multipart.FileHeader) (*dto.UniverseDTO, *code.Code) {
	u, err := svc.universes.GetByID(ctx, id)
	if err != nil {
		if dao.IsNotFound(err) {
			return nil, code.ErrorUniverseNotFound
		}
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}

	imageURL, cerr := storeImage(svc.store, file, header, svc.upload)
	if cerr != nil {
		return nil, cerr
	}

	previous := u.ImageURL
	u.ImageURL = imageURL
	if err := svc.universes.Update(ctx, u); err != nil {
		removeStoredFile(svc.store, svc.logger, imageURL, svc.upload.URLPrefix)
		return nil, code.ErrorDBQuery.WithDetails(err.Error())
	}
	removeStoredFile(svc.store, svc.logger, previous, svc.upload.URLPrefix)
	return dto.NewUniverseDTO(u), nil
}

// Delete removes the universe, its entities, and every stored cover image.
// File removal is best-effort and runs before the records go away.
// Delete 级联删除宇宙及其条目，封面文件先于记录删除，文件删除失败不阻断。
func (svc *Universe) Delete(ctx context.Context, id int64) *code.Code {
	u, err := svc.universes.GetByID(ctx, id)
	if err != nil {
		if dao.IsNotFound(err) {
			return code.ErrorUniverseNotFound
		}
		return code.ErrorDBQuery.WithDetails(err.Error())
	}

	entities, err := svc.entities.ListByUniverse(ctx, id, "")
	if err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}

	removeStoredFile(svc.store, svc.logger, u.ImageURL, svc.upload.URLPrefix)
	for _, e := range entities {
		removeStoredFile(svc.store, svc.logger, e.ImageURL, svc.upload.URLPrefix)
	}

	if err := svc.entities.DeleteByUniverse(ctx, id); err != nil {
		return code.ErrorDBQuery.WithDetails(err.Error())
	}
	if err := svc.universes.Delete(ctx, id); err != nil {
		if dao.IsNotFound(err) {
			return code.ErrorUniverseNotFound
		}
		return code.ErrorDBQuery.WithDetails(err.Error())
	}

	svc.logger.Info("universe deleted",
		zap.Int64(logger.FieldUniverseID, id),
		zap.Int("entityCount", len(entities)))
	return nil
}
