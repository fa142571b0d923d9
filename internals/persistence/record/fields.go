package record

// Filterable field names, shared by records and their storage columns
// (1:1 naming by construction). Filters are built against these; the
// repository bindings map them to columns. A name missing from a binding's
// column map (e.g. FieldUserFullName) fails translation instead of being
// silently dropped.
const (
	FieldID               = "id"
	FieldCreatedOn        = "created_on"
	FieldUpdatedOn        = "updated_on"
	FieldConcurrencyToken = "concurrency_token"
	FieldSlug             = "slug"
	FieldDeletedAt        = "deleted_at"

	FieldUserFirstName = "first_name"
	FieldUserLastName  = "last_name"
	FieldUserPhone     = "phone"
	FieldUserFullName  = "full_name" // derived, not persisted

	FieldEventTitle        = "title"
	FieldEventAddressLine1 = "address_line1"
	FieldEventAddressLine2 = "address_line2"
	FieldEventCity         = "city"
	FieldEventState        = "state"
	FieldEventPostal       = "postal"

	FieldInvitationEventID = "event_id"

	FieldReservationInvitationID = "invitation_id"
	FieldReservationUserID       = "user_id"
	FieldReservationPartySize    = "party_size"
)
