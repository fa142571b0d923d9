package model

import "time"

type InvitationModel struct {
	Base
	Slug      string     `gorm:"column:slug;type:varchar(120);not null;uniqueIndex:ux_invitations_slug" json:"slug"`
	EventID   int64      `gorm:"column:event_id;not null;index:idx_invitations_event_id" json:"event_id"`
	DeletedAt *time.Time `gorm:"column:deleted_at;index:idx_invitations_deleted_at"      json:"deleted_at"`
}

func (InvitationModel) TableName() string { return "invitations" }
