package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rsvphub_backend/internals/persistence/filter"
	"rsvphub_backend/internals/persistence/model"
	"rsvphub_backend/internals/persistence/record"
	"rsvphub_backend/internals/persistence/repository"
)

// upsertRetries bounds the create/update race: two concurrent first
// RSVPs for the same pair, or an update against a token that went stale
// mid-flight, retry as a re-read plus update.
const upsertRetries = 3

type ReservationService struct {
	query *repository.Query[record.ReservationRecord, model.ReservationModel]
	store *repository.Store[record.ReservationRecord, model.ReservationModel]
}

func NewReservationService(db *gorm.DB, clock repository.Clock) (*ReservationService, error) {
	q, err := repository.NewQuery[record.ReservationRecord, model.ReservationModel](db)
	if err != nil {
		return nil, err
	}
	s, err := repository.NewStore[record.ReservationRecord, model.ReservationModel](db, clock)
	if err != nil {
		return nil, err
	}
	return &ReservationService{query: q, store: s}, nil
}

func pairFilter(invitationID, userID int64) filter.Expr {
	return filter.And(
		filter.Eq(record.FieldReservationInvitationID, invitationID),
		filter.Eq(record.FieldReservationUserID, userID),
	)
}

// Upsert lands partySize on the single reservation row for the pair:
// update when one exists, insert otherwise. The composite unique index
// backs this up — if a concurrent insert wins between our read and
// write, the duplicate-key error sends us back around to update the row
// that beat us. A lost token race retries the same way.
func (s *ReservationService) Upsert(ctx context.Context, invitationID, userID int64, partySize int) (record.ReservationRecord, error) {
	var lastErr error
	for i := 0; i < upsertRetries; i++ {
		cur, err := s.query.Find(ctx, pairFilter(invitationID, userID), repository.ScopeAll)
		if err != nil {
			return record.ReservationRecord{}, err
		}

		if cur != nil {
			cur.PartySize = partySize
			out, err := s.store.Update(ctx, *cur)
			if err == nil {
				return out, nil
			}
			if !errors.Is(err, repository.ErrConcurrencyConflict) && !errors.Is(err, repository.ErrNotFound) {
				return record.ReservationRecord{}, err
			}
			lastErr = err
			continue
		}

		out, err := s.store.Create(ctx, record.ReservationRecord{
			InvitationID: invitationID,
			UserID:       userID,
			PartySize:    partySize,
		})
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, repository.ErrDuplicateKey) {
			return record.ReservationRecord{}, err
		}
		lastErr = err
	}
	return record.ReservationRecord{}, lastErr
}

func (s *ReservationService) GetByID(ctx context.Context, id int64) (*record.ReservationRecord, error) {
	return s.query.FindByID(ctx, id, repository.ScopeAll)
}

func (s *ReservationService) GetByPair(ctx context.Context, invitationID, userID int64) (*record.ReservationRecord, error) {
	return s.query.Find(ctx, pairFilter(invitationID, userID), repository.ScopeAll)
}

func (s *ReservationService) ListByInvitation(ctx context.Context, invitationID int64) ([]record.ReservationRecord, error) {
	return s.query.Fetch(ctx, filter.Eq(record.FieldReservationInvitationID, invitationID), repository.ScopeAll)
}

// TotalAttending sums party sizes for an invitation; declined rows
// contribute zero by construction.
func (s *ReservationService) TotalAttending(ctx context.Context, invitationID int64) (int, error) {
	recs, err := s.ListByInvitation(ctx, invitationID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, r := range recs {
		total += r.PartySize
	}
	return total, nil
}

// Delete removes the reservation outright; reservations have no
// soft-delete state. Absent id is a no-op.
func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
