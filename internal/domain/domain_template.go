package domain

import "time"

// ValidTemplateType reports whether t is a valid template type.
// Templates exist for character, location and lore only; item templates were
// never part of the product.
// ValidTemplateType 判断 t 是否为有效的模板类型，模板仅支持 character/location/lore。
func ValidTemplateType(t EntityType) bool {
	switch t {
	case EntityTypeCharacter, EntityTypeLocation, EntityTypeLore:
		return true
	}
	return false
}

// Template is a reusable attribute schema, global across universes. It is only
// read at entity creation time; the copy severs any link, so later template
// edits never propagate to entities created from it.
// Template 是跨宇宙的可复用属性模板，仅在创建条目时读取；
// 复制后不保留关联，之后编辑模板不会影响已创建的条目。
type Template struct {
	ID         int64
	Name       string
	Type       EntityType
	Attributes []Attribute
	CreatedAt  time.Time
}
