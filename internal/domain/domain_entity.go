package domain

import "time"

// EntityType is the closed entity type enumeration
// EntityType 是封闭的条目类型枚举
type EntityType string

const (
	EntityTypeCharacter EntityType = "character"
	EntityTypeLocation  EntityType = "location"
	EntityTypeItem      EntityType = "item"
	EntityTypeLore      EntityType = "lore"
)

// EntityTypes lists every valid entity type
func EntityTypes() []EntityType {
	return []EntityType{EntityTypeCharacter, EntityTypeLocation, EntityTypeItem, EntityTypeLore}
}

// ValidEntityType reports whether t is in the closed entity type set
// ValidEntityType 判断 t 是否在封闭的条目类型集合内
func ValidEntityType(t EntityType) bool {
	switch t {
	case EntityTypeCharacter, EntityTypeLocation, EntityTypeItem, EntityTypeLore:
		return true
	}
	return false
}

// Attribute is one free-form key/value pair. Keys are ordered and may repeat
// within the same entity.
// Attribute 是一个自由键值对，键有序且同一条目内可以重复。
type Attribute struct {
	Key   string
	Value string
}

// Entity belongs to exactly one universe
// Entity 属于且仅属于一个宇宙
type Entity struct {
	ID          int64
	UniverseID  int64
	Type        EntityType
	Name        string
	Description string
	ImageURL    string
	Attributes  []Attribute
	CreatedAt   time.Time
}

// HasImage reports whether a cover image is attached
func (e *Entity) HasImage() bool {
	return e.ImageURL != ""
}
