// Package record holds the immutable, caller-facing shapes of the domain
// entities. Controllers and services only ever see these; the mutable
// storage models live in internals/persistence/model and callers never
// touch them directly.
package record

import "time"

// Base carries the store-assigned bookkeeping every record shares.
// ID is opaque and assigned by the store on create. ConcurrencyToken is
// regenerated on every write and checked on update (optimistic locking);
// clients echo it back on update so stale writes are rejected.
type Base struct {
	ID               int64      `json:"id"`
	CreatedOn        time.Time  `json:"created_on"`
	UpdatedOn        *time.Time `json:"updated_on,omitempty"`
	ConcurrencyToken string     `json:"concurrency_token"`
}

type UserRecord struct {
	Base
	Slug      string     `json:"slug"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Phone     string     `json:"phone"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`

	// FullName is derived ("First Last") by the mapper for display.
	// It has no column behind it and cannot be filtered on.
	FullName string `json:"full_name"`
}

type EventRecord struct {
	Base
	Slug         string     `json:"slug"`
	Title        string     `json:"title"`
	AddressLine1 string     `json:"address_line1"`
	AddressLine2 string     `json:"address_line2,omitempty"`
	City         string     `json:"city"`
	State        string     `json:"state"`
	Postal       string     `json:"postal"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
}

type InvitationRecord struct {
	Base
	Slug      string     `json:"slug"`
	EventID   int64      `json:"event_id"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// ReservationRecord is the current RSVP state for one (invitation, user)
// pair. PartySize 0 means "declined". Reservations carry no DeletedAt:
// removal is physical, there is no history.
type ReservationRecord struct {
	Base
	InvitationID int64 `json:"invitation_id"`
	UserID       int64 `json:"user_id"`
	PartySize    int   `json:"party_size"`
}

// Active reports whether the record is not soft-deleted.
func (r UserRecord) Active() bool       { return r.DeletedAt == nil }
func (r EventRecord) Active() bool      { return r.DeletedAt == nil }
func (r InvitationRecord) Active() bool { return r.DeletedAt == nil }
