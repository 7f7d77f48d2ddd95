package api_router

import (
	"github.com/demiurge-app/universe-wiki-service/internal/app"
	"github.com/demiurge-app/universe-wiki-service/internal/dto"
	pkgapp "github.com/demiurge-app/universe-wiki-service/pkg/app"
	"github.com/demiurge-app/universe-wiki-service/pkg/code"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UniverseHandler 宇宙 API 路由处理器
type UniverseHandler struct {
	*Handler
}

// NewUniverseHandler 创建 UniverseHandler 实例
func NewUniverseHandler(a *app.App) *UniverseHandler {
	return &UniverseHandler{Handler: NewHandler(a)}
}

// List 宇宙列表
// @Summary 宇宙列表
// @Produce json
// @Success 200 {object} pkgapp.Res{data=pkgapp.ListRes{list=[]dto.UniverseDTO}} "成功"
// @Router /api/universes [get]
func (h *UniverseHandler) List(c *gin.Context) {
	response := pkgapp.NewResponse(c)

	list, cerr := h.App.UniverseService.List(c.Request.Context())
	if cerr != nil {
		response.ToResponse(cerr)
		return
	}
	response.ToResponseList(code.Success, list, len(list))
}

// Get 宇宙详情
// @Summary 宇宙详情
// @Produce json
// @Param id path int true "宇宙 ID"
// @Success 200 {object} pkgapp.Res{data=dto.UniverseDTO} "成功"
// @Router /api/universes/{id} [get]
func (h *UniverseHandler) Get(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	id := pathID(c)
	if id == 0 {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("invalid id"))
		return
	}

	universe, cerr := h.App.UniverseService.Get(c.Request.Context(), id)
	if cerr != nil {
		response.ToResponse(cerr)
		return
	}
	response.ToResponse(code.Success.WithData(universe))
}

// Create 创建宇宙
// @Summary 创建宇宙
// @Accept json
// @Produce json
// @Param params body dto.UniverseCreateRequest true "宇宙参数"
// @Success 201 {object} pkgapp.Res{data=dto.UniverseDTO} "成功"
// @Router /api/universes [post]
func (h *UniverseHandler) Create(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	params := &dto.UniverseCreateRequest{}

	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("UniverseHandler.Create.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	universe, cerr := h.App.UniverseService.Create(c.Request.Context(), params)
	if cerr != nil {
		response.ToResponse(cerr)
		return
	}
	response.ToResponse(code.SuccessCreate.WithData(universe))
}

// Update 更新宇宙
// @Summary 更新宇宙（缺省字段保持不变）
// @Accept json
// @Produce json
// @Param id path int true "宇宙 ID"
// @Param params body dto.UniverseUpdateRequest true "宇宙参数"
// @Success 200 {object} pkgapp.Res{data=dto.UniverseDTO} "成功"
// @Router /api/universes/{id} [put]
func (h *UniverseHandler) Update(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	id := pathID(c)
	if id == 0 {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("invalid id"))
		return
	}

	params := &dto.UniverseUpdateRequest{}
	valid, errs := pkgapp.BindAndValid(c, params)
	if !valid {
		h.App.Logger().Error("UniverseHandler.Update.BindAndValid err", zap.Error(errs))
		response.ToResponse(code.ErrorInvalidParams.WithDetails(errs.ErrorsToString()))
		return
	}

	universe, cerr := h.App.UniverseService.Update(c.Request.Context(), id, params)
	if cerr != nil {
		response.ToResponse(cerr)
		return
	}
	response.ToResponse(code.SuccessUpdate.WithData(universe))
}

// SetImage 上传宇宙封面
// @Summary 上传宇宙封面
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "宇宙 ID"
// @Param image formData file true "封面图片"
// @Success 200 {object} pkgapp.Res{data=dto.UniverseDTO} "成功"
// @Router /api/universes/{id}/image [post]
func (h *UniverseHandler) SetImage(c *gin.Context) {
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

	universe, cerr := h.App.UniverseService.SetImage(c.Request.Context(), id, file, header)
	if cerr != nil {
		response.ToResponse(cerr)
		return
	}
	response.ToResponse(code.SuccessUpdate.WithData(universe))
}

// Delete 删除宇宙（级联删除条目与封面文件）
// @Summary 删除宇宙
// @Produce json
// @Param id path int true "宇宙 ID"
// @Success 200 {object} pkgapp.Res "成功"
// @Router /api/universes/{id} [delete]
func (h *UniverseHandler) Delete(c *gin.Context) {
	response := pkgapp.NewResponse(c)
	id := pathID(c)
	if id == 0 {
		response.ToResponse(code.ErrorInvalidParams.WithDetails("invalid id"))
		return
	}

	if cerr := h.App.UniverseService.Delete(c.Request.Context(), id); cerr != nil {
		response.ToResponse(cerr)
		return
	}
	response.ToResponse(code.SuccessDelete)
}
