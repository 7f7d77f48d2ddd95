package api_router

import (
	"github.com/demiurge-app/universe-wiki-service/internal/app"
	"github.com/demiurge-app/universe-wiki-service/internal/dto"
	pkgapp "github.com/demiurge-app/universe-wiki-service/pkg/app"
	"github.com/demiurge-app/universe-wiki-service/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EntityHandler 条目 API 路由处理器
type EntityHandler struct {
	*Handler
}

// NewEntityHandler 创建 EntityHandler 实例
func NewEntityHandler(a *app.App) *EntityHandler {
	return &EntityHandler{Handler: NewHandler(a)}
}

// List 条目列表
// @Summary 条目列表（按宇宙，可选按类型筛选）
// @Produce json
// @Param universeId query int true "宇宙 ID"
// @Param type query string false "条目类型"
// @Success 200 {object} pkgapp.Res{data=pkgapp.ListRes{list=[]dto.EntityDTO}} "成功"
// @Router /api/entities [get]
func (h *EntityHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EntityListRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("EntityHandler.List.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	list, cerr := h.App.EntityService.List(c.Request.Context(), params)
	if cerr != nil {
		response.ToResponse(cerr)
		return
	}
	response.ToResponseList(code.Success, list, len(list))
}

// Get 条目详情
// @Summary 条目详情
// @Produce json
// @Param id path int true "条目 ID"
// @Success 200 {object} pkgapp.Res{data=dto.EntityDTO} "成功"
// @Router /api/entities/{id} [get]
func (h *EntityHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	id := pathID(c)
	if id == 0 {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("invalid id"))
		return
	}

	entity, cerr := h.App.EntityService.Get(c.Request.Context(), id)
	if cerr != nil {
		response.ToResponse(cerr)
		return
	}
	response.ToResponse(code.Success.WithData(entity))
}

// Create 创建条目
// @Summary 创建条目（可选从模板播种属性）
// @Accept json
// @Produce json
// @Param params body dto.EntityCreateRequest true "条目参数"
// @Success 201 {object} pkgapp.Res{data=dto.EntityDTO} "成功"
// @Router /api/entities [post]
func (h *EntityHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.EntityCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("EntityHandler.Create.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	entity, cerr := h.App.EntityService.Create(c.Request.Context(), params)
	if cerr != nil {
		response.ToResponse(cerr)
		return
	}
	response.ToResponse(code.SuccessCreate.WithData(entity))
}

// Update 更新条目
// @Summary 更新条目（缺省字段保持不变，属性整体替换）
// @Accept json
// @Produce json
// @Param id path int true "条目 ID"
// @Param params body dto.EntityUpdateRequest true "条目参数"
// @Success 200 {object} pkgapp.Res{data=dto.EntityDTO} "成功"
// @Router /api/entities/{id} [put]
func (h *EntityHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	id := pathID(c)
	if id == 0 {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("invalid id"))
		return
	}

	params := &dto.EntityUpdateRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("EntityHandler.Update.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	entity, cerr := h.App.EntityService.Update(c.Request.Context(), id, params)
	if cerr != nil {
		response.ToResponse(cerr)
		return
	}
	response.ToResponse(code.SuccessUpdate.WithData(entity))
}

// SetImage 上传条目封面
// @Summary 上传条目封面
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "条目 ID"
// @Param image formData file true "封面图片"
// @Success 200 {object} pkgapp.Res{data=dto.EntityDTO} "成功"
// @Router /api/entities/{id}/image [post]
func (h *EntityHandler) SetImage(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	id := pathID(c)
	if id == 0 {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("invalid id"))
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		response.ToResponse(code.ErrorUploadMissingFile)
		return
	}
	defer file.Close()

	entity, cerr := h.App.EntityService.SetImage(c.Request.Context(), id, file, header)
	if cerr != nil {
		response.ToResponse(cerr)
		return
	}
	response.ToResponse(code.SuccessUpdate.WithData(entity))
}

// Delete 删除条目
// @Summary 删除条目及其封面文件
// @Produce json
// @Param id path int true "条目 ID"
// @Success 200 {object} pkgapp.Res "成功"
// @Router /api/entities/{id} [delete]
func (h *EntityHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	id := pathID(c)
	if id == 0 {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("invalid id"))
		return
	}

	if cerr := h.App.EntityService.Delete(c.Request.Context(), id); cerr != nil {
		response.ToResponse(cerr)
		return
	}
	response.ToResponse(code.SuccessDelete)
}

// ResolveLinks 解析条目描述中的 wiki 链接
// @Summary 将条目描述解析为文本、链接、未解析片段序列
// @Produce json
// @Param id path int true "条目 ID"
// @Success 200 {object} pkgapp.Res{data=dto.EntityLinksDTO} "成功"
// @Router /api/entities/{id}/links [get]
func (h *EntityHandler) ResolveLinks(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	id := pathID(c)
	if id == 0 {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("invalid id"))
		return
	}

	links, cerr := h.App.EntityService.ResolveLinks(c.Request.Context(), id)
	if cerr != nil {
		response.ToResponse(cerr)
		return
	}
	response.ToResponse(code.Success.WithData(links))
}
