package api_router

import (
	"github.com/demiurge-app/universe-wiki-service/internal/app"
	"github.com/demiurge-app/universe-wiki-service/internal/dto"
	pkgapp "github.com/demiurge-app/universe-wiki-service/pkg/app"
	"github.com/demiurge-app/universe-wiki-service/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TemplateHandler 模板 API 路由处理器
type TemplateHandler struct {
	*Handler
}

// NewTemplateHandler 创建 TemplateHandler 实例
func NewTemplateHandler(a *app.App) *TemplateHandler {
	return &TemplateHandler{Handler: NewHandler(a)}
}

// List 模板列表
// @Summary 模板列表
// @Produce json
// @Success 200 {object} pkgapp.Res{data=pkgapp.ListRes{list=[]dto.TemplateDTO}} "成功"
// @Router /api/templates [get]
func (h *TemplateHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	list, cerr := h.App.TemplateService.List(c.Request.Context())
	if cerr != nil {
		response.ToResponse(cerr)
		return
	}
	response.ToResponseList(code.Success, list, len(list))
}

// Create 创建模板
// @Summary 创建模板
// @Accept json
// @Produce json
// @Param params body dto.TemplateCreateRequest true "模板参数"
// @Success 201 {object} pkgapp.Res{data=dto.TemplateDTO} "成功"
// @Router /api/templates [post]
func (h *TemplateHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.TemplateCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("TemplateHandler.Create.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	template, cerr := h.App.TemplateService.Create(c.Request.Context(), params)
	if cerr != nil {
		response.ToResponse(cerr)
		return
	}
	response.ToResponse(code.SuccessCreate.WithData(template))
}

// Update 更新模板
// @Summary 整体覆盖模板（不影响已创建条目）
// @Accept json
// @Produce json
// @Param id path int true "模板 ID"
// @Param params body dto.TemplateUpdateRequest true "模板参数"
// @Success 200 {object} pkgapp.Res{data=dto.TemplateDTO} "成功"
// @Router /api/templates/{id} [put]
func (h *TemplateHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	id := pathID(c)
	if id == 0 {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("invalid id"))
		return
	}

	params := &dto.TemplateUpdateRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("TemplateHandler.Update.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	template, cerr := h.App.TemplateService.Update(c.Request.Context(), id, params)
	if cerr != nil {
		response.ToResponse(cerr)
		return
	}
	response.ToResponse(code.SuccessUpdate.WithData(template))
}

// Delete 删除模板
// @Summary 删除模板（已创建条目的属性不受影响）
// @Produce json
// @Param id path int true "模板 ID"
// @Success 200 {object} pkgapp.Res "成功"
// @Router /api/templates/{id} [delete]
func (h *TemplateHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	id := pathID(c)
	if id == 0 {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("invalid id"))
		return
	}

	if cerr := h.App.TemplateService.Delete(c.Request.Context(), id); cerr != nil {
		response.ToResponse(cerr)
		return
	}
	response.ToResponse(code.SuccessDelete)
}
