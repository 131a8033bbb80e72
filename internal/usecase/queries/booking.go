package queries

import (
	"context"
	"sort"
	"time"

	"event-marketplace/internal/domain/booking"

	"github.com/google/uuid"
)

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/queries/booking_mock.go -package=queriesmock

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByEventFirstPage(ctx context.Context, eventID uuid.UUID, status *string, limit int32) ([]*BookingView, error)
	FindByEventKeyset(ctx context.Context, eventID uuid.UUID, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
	FindByVendorFirstPage(ctx context.Context, vendorID uuid.UUID, status *string, limit int32) ([]*BookingView, error)
	FindByVendorKeyset(ctx context.Context, vendorID uuid.UUID, status *string, lastCreatedAt time.Time, lastID uuid.UUID, limit int32) ([]*BookingView, error)
	ListMessages(ctx context.Context, bookingID uuid.UUID) ([]*MessageView, error)
}

// PartyReadStore answers who owns an event and which vendor profile a user runs.
type PartyReadStore interface {
	EventOrganizerID(ctx context.Context, eventID uuid.UUID) (uuid.UUID, error)
	VendorIDByUserID(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id, actorID uuid.UUID) (*BookingView, error)
	ListByEvent(ctx context.Context, eventID, actorID uuid.UUID, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	ListByVendor(ctx context.Context, actorID uuid.UUID, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error)
	ListMessages(ctx context.Context, bookingID, actorID uuid.UUID) ([]*MessageView, error)
	GetTimeline(ctx context.Context, bookingID, actorID uuid.UUID) ([]*TimelineEntry, error)
}

type bookingQueriesImpl struct {
	repo    BookingReadStore
	parties PartyReadStore
}

func NewBookingQueries(repo BookingReadStore, parties PartyReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo, parties: parties}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id, actorID uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, ErrBookingNotFound)
	}
	if err := authorizeParty(view, actorID); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByEvent(ctx context.Context, eventID, actorID uuid.UUID, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	organizerID, err := q.parties.EventOrganizerID(ctx, eventID)
	if err != nil {
		return nil, nil, notFoundAs(err, ErrEventNotFound)
	}
	if organizerID != actorID {
		return nil, nil, ErrEventAccess
	}
	status, err := normalizeStatusFilter(filters.Status)
	if err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*BookingView
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByEventFirstPage(ctx, eventID, status, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByEventKeyset(ctx, eventID, status, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit)
	return rows, next, nil
}

func (q *bookingQueriesImpl) ListByVendor(ctx context.Context, actorID uuid.UUID, filters BookingFilters, cursor *Cursor, limit int) ([]*BookingView, *Cursor, error) {
	vendorID, err := q.parties.VendorIDByUserID(ctx, actorID)
	if err != nil {
		return nil, nil, notFoundAs(err, ErrVendorProfileNotFound)
	}
	status, err := normalizeStatusFilter(filters.Status)
	if err != nil {
		return nil, nil, err
	}

	limit = ValidateLimit(limit)
	var rows []*BookingView
	if cursor == nil || cursor.After == "" {
		rows, err = q.repo.FindByVendorFirstPage(ctx, vendorID, status, int32(limit+1))
	} else {
		lastCreatedAt, lastID, derr := DecodeAfterCursor(cursor.After)
		if derr != nil {
			return nil, nil, ErrInvalidCursor
		}
		rows, err = q.repo.FindByVendorKeyset(ctx, vendorID, status, lastCreatedAt, lastID, int32(limit+1))
	}
	if err != nil {
		return nil, nil, err
	}
	rows, next := paginate(rows, limit)
	return rows, next, nil
}

func (q *bookingQueriesImpl) ListMessages(ctx context.Context, bookingID, actorID uuid.UUID) ([]*MessageView, error) {
	if _, err := q.GetByID(ctx, bookingID, actorID); err != nil {
		return nil, err
	}
	return q.repo.ListMessages(ctx, bookingID)
}

// GetTimeline merges the creation entry with the message thread, oldest first.
func (q *bookingQueriesImpl) GetTimeline(ctx context.Context, bookingID, actorID uuid.UUID) ([]*TimelineEntry, error) {
	view, err := q.GetByID(ctx, bookingID, actorID)
	if err != nil {
		return nil, err
	}
	msgs, err := q.repo.ListMessages(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return BuildTimeline(view, msgs), nil
}

func BuildTimeline(view *BookingView, msgs []*MessageView) []*TimelineEntry {
	entries := make([]*TimelineEntry, 0, len(msgs)+1)
	entries = append(entries, &TimelineEntry{
		Type:      TimelineBookingCreated,
		Timestamp: view.CreatedAt,
		Status:    string(booking.StatusPending),
	})
	for _, m := range msgs {
		entries = append(entries, &TimelineEntry{
			Type:      TimelineMessage,
			Timestamp: m.SentAt,
			Message:   m,
		})
	}
	// stable keeps the creation entry ahead of a message with the same timestamp
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
	return entries
}

func authorizeParty(view *BookingView, actorID uuid.UUID) error {
	parties := booking.Parties{OrganizerID: view.OrganizerID, VendorUserID: view.VendorUserID}
	if !booking.ResolveActorRole(parties, actorID).IsParty() {
		return booking.ErrNotParty
	}
	return nil
}

func normalizeStatusFilter(s *string) (*string, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	st, err := booking.ParseStatus(*s)
	if err != nil {
		return nil, err
	}
	v := st.String()
	return &v, nil
}

func paginate(rows []*BookingView, limit int) ([]*BookingView, *Cursor) {
	if len(rows) <= limit {
		return rows, nil
	}
	last := rows[limit-1]
	return rows[:limit], &Cursor{After: EncodeAfterCursor(last.CreatedAt, last.ID)}
}
