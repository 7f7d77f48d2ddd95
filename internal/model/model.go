// Package model defines the gorm table models
// Package model 定义 gorm 表模型
package model

import (
	"gorm.io/gorm"
)

// AutoMigrate migrates one model's table by key, or all tables when key is empty
// AutoMigrate 按 key 迁移单个模型的表，key 为空则迁移全部
func AutoMigrate(db *gorm.DB, key string) error {
	switch key {
	case "Universe":
		return db.AutoMigrate(Universe{})
	case "Entity":
		return db.AutoMigrate(Entity{})
	case "Template":
		return db.AutoMigrate(Template{})
	case "":
		return db.AutoMigrate(Universe{}, Entity{}, Template{})
	}
	return nil
}
