package model

import "github.com/demiurge-app/universe-wiki-service/pkg/timex"

const TableNameEntity = "entity"

// Entity mapped from table <entity>
type Entity struct {
	ID          int64         `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	UniverseID  int64         `gorm:"column:universe_id;not null;index:idx_entity_universe,priority:1" json:"universeId" form:"universeId"`
	Type        string        `gorm:"column:type;not null;index:idx_entity_universe,priority:2" json:"type" form:"type"`
	Name        string        `gorm:"column:name;not null" json:"name" form:"name"`
	Description string        `gorm:"column:description" json:"description" form:"description"`
	ImageURL    string        `gorm:"column:image_url" json:"imageUrl" form:"imageUrl"`
	Attributes  AttributeList `gorm:"column:attributes;type:text" json:"attributes" form:"attributes"`
	CreatedAt   timex.Time    `gorm:"column:created_at;type:datetime;index:idx_entity_created;autoCreateTime:false" json:"createdAt" form:"createdAt"`
}

// TableName Entity's table name
func (*Entity) TableName() string {
	return TableNameEntity
}
