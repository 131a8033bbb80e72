package agreement

import (
	"strings"
	"time"

	"event-marketplace/internal/pkg/money"

	"github.com/google/uuid"
)

type Deliverable struct {
	ID          uuid.UUID
	Title       string
	Description string
	DueDate     time.Time
	Status      DeliverableStatus
	CompletedAt *time.Time
}

type PaymentMilestone struct {
	ID          uuid.UUID
	Title       string
	Description string
	Amount      money.Money
	DueDate     time.Time
	Status      MilestoneStatus
	PaidAt      *time.Time
}

// DeliverableDraft is caller or template supplied content before ids are minted.
type DeliverableDraft struct {
	Title       string
	Description string
	DueDate     time.Time
}

type MilestoneDraft struct {
	Title       string
	Description string
	Amount      money.Money
	DueDate     time.Time
}

func mintDeliverables(drafts []DeliverableDraft) ([]Deliverable, error) {
	out := make([]Deliverable, 0, len(drafts))
	for _, d := range drafts {
		title := strings.TrimSpace(d.Title)
		if title == "" {
			return nil, ErrItemTitleRequired
		}
		if d.DueDate.IsZero() {
			return nil, ErrItemDueDateRequired
		}
		out = append(out, Deliverable{
			ID:          uuid.New(),
			Title:       title,
			Description: strings.TrimSpace(d.Description),
			DueDate:     d.DueDate,
			Status:      DeliverablePending,
		})
	}
	return out, nil
}

func mintMilestones(drafts []MilestoneDraft) ([]PaymentMilestone, error) {
	out := make([]PaymentMilestone, 0, len(drafts))
	for _, d := range drafts {
		title := strings.TrimSpace(d.Title)
		if title == "" {
			return nil, ErrItemTitleRequired
		}
		if d.DueDate.IsZero() {
			return nil, ErrItemDueDateRequired
		}
		if _, err := money.New(d.Amount.Cents()); err != nil {
			return nil, err
		}
		out = append(out, PaymentMilestone{
			ID:          uuid.New(),
			Title:       title,
			Description: strings.TrimSpace(d.Description),
			Amount:      d.Amount,
			DueDate:     d.DueDate,
			Status:      MilestonePending,
		})
	}
	return out, nil
}
