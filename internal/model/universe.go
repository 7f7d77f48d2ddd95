package model

import "github.com/demiurge-app/universe-wiki-service/pkg/timex"

const TableNameUniverse = "universe"

// Universe mapped from table <universe>
type Universe struct {
	ID          int64      `gorm:"column:id;primaryKey;autoIncrement" json:"id" form:"id"`
	Name        string     `gorm:"column:name;not null" json:"name" form:"name"`
	Description string     `gorm:"column:description" json:"description" form:"description"`
	ImageURL    string     `gorm:"column:image_url" json:"imageUrl" form:"imageUrl"`
	CreatedAt   timex.Time `gorm:"column:created_at;type:datetime;index:idx_universe_created;autoCreateTime:false" json:"createdAt" form:"createdAt"`
}

// TableName Universe's table name
func (*Universe) TableName() string {
	return TableNameUniverse
}
