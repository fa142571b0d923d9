package model

import "time"

type UserModel struct {
	Base
	Slug      string     `gorm:"column:slug;type:varchar(120);not null;uniqueIndex:ux_users_slug" json:"slug"`
	FirstName string     `gorm:"column:first_name;type:varchar(100);not null" json:"first_name"`
	LastName  string     `gorm:"column:last_name;type:varchar(100);not null"  json:"last_name"`
	Phone     string     `gorm:"column:phone;type:varchar(20);not null"       json:"phone"`
	DeletedAt *time.Time `gorm:"column:deleted_at;index:idx_users_deleted_at" json:"deleted_at"`
}

func (UserModel) TableName() string { return "users" }
