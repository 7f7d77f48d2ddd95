package model

import "github.com/demiurge-app/universe-wiki-service/pkg/timex"

const TableNameTemplate = "template"

// Template mapped from table <template>
type Template struct {
	ID         int64         `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	Name       string        `gorm:"column:name;not null" json:"name" form:"name"`
	Type       string        `gorm:"column:type;not null" json:"type" form:"type"`
	Attributes AttributeList `gorm:"column:attributes;type:text" json:"attributes" form:"attributes"`
	CreatedAt  timex.Time    `gorm:"column:created_at;type:datetime;index:idx_template_created;autoCreateTime:false" json:"createdAt" form:"createdAt"`
}

// TableName Template's table name
func (*Template) TableName() string {
	return TableNameTemplate
}
