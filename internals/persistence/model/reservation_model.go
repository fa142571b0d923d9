package model

// ReservationModel has no deleted_at on purpose: a reservation is the
// current RSVP state, not a history, and removal deletes the row.
// The (invitation_id, user_id) pair is unique; re-RSVPing updates the
// existing row (see the reservations service).
type ReservationModel struct {
	Base
	InvitationID int64 `gorm:"column:invitation_id;not null;uniqueIndex:ux_reservations_invitation_user,priority:1" json:"invitation_id"`
	UserID       int64 `gorm:"column:user_id;not null;uniqueIndex:ux_reservations_invitation_user,priority:2"       json:"user_id"`
	PartySize    int   `gorm:"column:party_size;not null;default:0" json:"party_size"`
}

func (ReservationModel) TableName() string { return "reservations" }
