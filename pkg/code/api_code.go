package code

import "net/http"

// Success codes // 成功码
var (
	Success       = NewSuss(0, http.StatusOK, lang{"Success", "成功"})
	SuccessCreate = NewSuss(1, http.StatusCreated, lang{"Created", "创建成功"})
	SuccessUpdate = NewSuss(2, http.StatusOK, lang{"Updated", "更新成功"})
	SuccessDelete = NewSuss(3, http.StatusOK, lang{"Deleted", "删除成功"})
)

// Common failure codes // 通用失败码
var (
	ErrorInvalidParams   = NewError(10000001, http.StatusBadRequest, lang{"Invalid request parameters", "请求参数错误"})
	ErrorNotFoundAPI     = NewError(10000002, http.StatusNotFound, lang{"API route not found", "接口不存在"})
	ErrorTooManyRequests = NewError(10000003, http.StatusTooManyRequests, lang{"Too many requests", "请求过多"})
	ErrorServerInternal  = NewError(10000004, http.StatusInternalServerError, lang{"Internal server error", "服务内部错误"})
	ErrorDBQuery         = NewError(10000005, http.StatusInternalServerError, lang{"Database query failed", "数据库查询失败"})
)

// Universe codes // 宇宙相关码
var (
	ErrorUniverseNameRequired = NewError(20000001, http.StatusBadRequest, lang{"Universe name is required", "宇宙名称不能为空"})
	ErrorUniverseNotFound     = NewError(20000002, http.StatusNotFound, lang{"Universe not found", "宇宙不存在"})
)

// Entity codes // 条目相关码
var (
	ErrorEntityNameRequired = NewError(20001001, http.StatusBadRequest, lang{"Entity name is required", "条目名称不能为空"})
	ErrorInvalidEntityType  = NewError(20001002, http.StatusBadRequest, lang{"Invalid entity type", "条目类型无效"})
	ErrorEntityNotFound     = NewError(20001003, http.StatusNotFound, lang{"Entity not found", "条目不存在"})
)

// Template codes // 模板相关码
var (
	ErrorTemplateNameRequired    = NewError(20002001, http.StatusBadRequest, lang{"Template name is required", "模板名称不能为空"})
	ErrorInvalidTemplateType     = NewError(20002002, http.StatusBadRequest, lang{"Invalid template type", "模板类型无效"})
	ErrorTemplateNotFound        = NewError(20002003, http.StatusNotFound, lang{"Template not found", "模板不存在"})
	ErrorTemplateAttrKeyRequired = NewError(20002004, http.StatusBadRequest, lang{"Template attribute key is required", "模板属性键不能为空"})
)

// Upload codes // 上传相关码
var (
	ErrorUploadMissingFile = NewError(20003001, http.StatusBadRequest, lang{"No file uploaded", "未上传文件"})
	ErrorUnsupportedMedia  = NewError(20003002, http.StatusBadRequest, lang{"Only image files can be uploaded", "只能上传图片文件"})
	ErrorUploadTooLarge    = NewError(20003003, http.StatusBadRequest, lang{"Uploaded file exceeds the size limit", "上传文件超过大小限制"})
	ErrorUploadFailed      = NewError(20003004, http.StatusInternalServerError, lang{"Failed to store uploaded file", "上传文件保存失败"})
)
