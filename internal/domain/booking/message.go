package booking

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Message is an append-only note on a booking.
type Message struct {
	id         uuid.UUID
	bookingID  uuid.UUID
	senderID   uuid.UUID
	senderType Role
	content    string
	sentAt     time.Time
}

func NewMessage(bookingID, senderID uuid.UUID, senderType Role, content string, now time.Time) (*Message, error) {
	if !senderType.IsParty() {
		return nil, ErrNotParty
	}
	if err := ValidateMessageContent(content); err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	return &Message{
		id:         uuid.New(),
		bookingID:  bookingID,
		senderID:   senderID,
		senderType: senderType,
		content:    content,
		sentAt:     now,
	}, nil
}

func (m *Message) ID() uuid.UUID        { return m.id }
func (m *Message) BookingID() uuid.UUID { return m.bookingID }
func (m *Message) SenderID() uuid.UUID  { return m.senderID }
func (m *Message) SenderType() Role     { return m.senderType }
func (m *Message) Content() string      { return m.content }
func (m *Message) SentAt() time.Time    { return m.sentAt }

// ValidateMessageContent requires 1..MaxMessageLength characters after trimming.
func ValidateMessageContent(content string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(content))
	if n == 0 || n > MaxMessageLength {
		return ErrMessageContentInvalid
	}
	return nil
}
