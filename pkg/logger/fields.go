package logger

// Unified log field name constants
// 统一的日志字段命名常量
// Used to keep field naming consistent for log querying and analysis
// 用于确保整个项目中日志字段命名的一致性，便于日志查询和分析
const (
	// FieldTraceID trace ID field // 追踪 ID 字段
	FieldTraceID = "traceId"

	// FieldUniverseID universe ID field // 宇宙 ID 字段
	FieldUniverseID = "universeId"

	// FieldEntityID entity ID field // 条目 ID 字段
	FieldEntityID = "entityId"

	// FieldTemplateID template ID field // 模板 ID 字段
	FieldTemplateID = "templateId"

	// FieldMethod method name field // 方法名称字段
	FieldMethod = "method"

	// FieldFileKey stored file key field // 文件键字段
	FieldFileKey = "fileKey"

	// FieldDuration elapsed time field // 耗时字段
	FieldDuration = "duration"
)
