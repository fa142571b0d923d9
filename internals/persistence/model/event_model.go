package model

import "time"

type EventModel struct {
	Base
	Slug         string     `gorm:"column:slug;type:varchar(120);not null;uniqueIndex:ux_events_slug" json:"slug"`
	Title        string     `gorm:"column:title;type:varchar(255);not null"       json:"title"`
	AddressLine1 string     `gorm:"column:address_line1;type:varchar(255);not null" json:"address_line1"`
	AddressLine2 string     `gorm:"column:address_line2;type:varchar(255)"        json:"address_line2"`
	City         string     `gorm:"column:city;type:varchar(100);not null"        json:"city"`
	State        string     `gorm:"column:state;type:char(2);not null"            json:"state"`
	Postal       string     `gorm:"column:postal;type:varchar(10);not null"       json:"postal"`
	DeletedAt    *time.Time `gorm:"column:deleted_at;index:idx_events_deleted_at" json:"deleted_at"`
}

func (EventModel) TableName() string { return "events" }
