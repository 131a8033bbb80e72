package response

import (
	"time"

	"event-marketplace/internal/domain/agreement"
	"event-marketplace/internal/domain/template"
	"event-marketplace/internal/pkg/caldate"
)

type DeliverableResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
	CompletedAt *int64 `json:"completed_at,omitempty"`
}

type MilestoneResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	AmountCents int64  `json:"amount_cents"`
	DueDate     string `json:"due_date"`
	Status      string `json:"status"`
	PaidAt      *int64 `json:"paid_at,omitempty"`
}

type SignatureResponse struct {
	SignedAt int64             `json:"signed_at"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// AgreementResponse never echoes signature tokens back.
type AgreementResponse struct {
	ID                 string                `json:"id"`
	BookingID          string                `json:"booking_id"`
	Terms              string                `json:"terms"`
	Deliverables       []DeliverableResponse `json:"deliverables"`
	PaymentSchedule    []MilestoneResponse   `json:"payment_schedule"`
	CancellationPolicy string                `json:"cancellation_policy"`
	OrganizerSignature *SignatureResponse    `json:"organizer_signature,omitempty"`
	VendorSignature    *SignatureResponse    `json:"vendor_signature,omitempty"`
	IsFullySigned      bool                  `json:"is_fully_signed"`
	SignedAt           *int64                `json:"signed_at,omitempty"`
	CreatedAt          int64                 `json:"created_at"`
	UpdatedAt          int64                 `json:"updated_at"`
}

func FromAgreement(a *agreement.ServiceAgreement) *AgreementResponse {
	deliverables := make([]DeliverableResponse, len(a.Deliverables()))
	for i, d := range a.Deliverables() {
		deliverables[i] = DeliverableResponse{
			ID:          d.ID.String(),
			Title:       d.Title,
			Description: d.Description,
			DueDate:     caldate.Format(d.DueDate),
			Status:      string(d.Status),
			CompletedAt: unixPtr(d.CompletedAt),
		}
	}
	milestones := make([]MilestoneResponse, len(a.PaymentSchedule()))
	for i, m := range a.PaymentSchedule() {
		milestones[i] = MilestoneResponse{
			ID:          m.ID.String(),
			Title:       m.Title,
			Description: m.Description,
			AmountCents: m.Amount.Cents(),
			DueDate:     caldate.Format(m.DueDate),
			Status:      string(m.Status),
			PaidAt:      unixPtr(m.PaidAt),
		}
	}
	return &AgreementResponse{
		ID:                 a.ID().String(),
		BookingID:          a.BookingID().String(),
		Terms:              a.Terms(),
		Deliverables:       deliverables,
		PaymentSchedule:    milestones,
		CancellationPolicy: a.CancellationPolicy(),
		OrganizerSignature: fromSignature(a.OrganizerSignature()),
		VendorSignature:    fromSignature(a.VendorSignature()),
		IsFullySigned:      a.IsFullySigned(),
		SignedAt:           unixPtr(a.SignedAt()),
		CreatedAt:          a.CreatedAt().Unix(),
		UpdatedAt:          a.UpdatedAt().Unix(),
	}
}

func fromSignature(s *agreement.Signature) *SignatureResponse {
	if s == nil {
		return nil
	}
	return &SignatureResponse{SignedAt: s.SignedAt.Unix(), Metadata: s.Metadata}
}

func unixPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	v := t.Unix()
	return &v
}

type SignAgreementResponse struct {
	FullySigned bool   `json:"fully_signed"`
	SignedAt    *int64 `json:"signed_at,omitempty"`
}

type AgreementProgressResponse struct {
	Deliverables struct {
		Total                int     `json:"total"`
		Pending              int     `json:"pending"`
		InProgress           int     `json:"in_progress"`
		Completed            int     `json:"completed"`
		Overdue              int     `json:"overdue"`
		CompletionPercentage float64 `json:"completion_percentage"`
	} `json:"deliverables"`
	Payments struct {
		Total              int     `json:"total"`
		Paid               int     `json:"paid"`
		Pending            int     `json:"pending"`
		Overdue            int     `json:"overdue"`
		TotalAmountCents   int64   `json:"total_amount_cents"`
		PaidAmountCents    int64   `json:"paid_amount_cents"`
		PendingAmountCents int64   `json:"pending_amount_cents"`
		PaidPercentage     float64 `json:"paid_percentage"`
	} `json:"payments"`
	IsFullySigned bool   `json:"is_fully_signed"`
	SignedAt      *int64 `json:"signed_at,omitempty"`
}

func FromAgreementProgress(p *agreement.Progress) *AgreementProgressResponse {
	res := &AgreementProgressResponse{
		IsFullySigned: p.IsFullySigned,
		SignedAt:      unixPtr(p.SignedAt),
	}
	res.Deliverables.Total = p.Deliverables.Total
	res.Deliverables.Pending = p.Deliverables.Pending
	res.Deliverables.InProgress = p.Deliverables.InProgress
	res.Deliverables.Completed = p.Deliverables.Completed
	res.Deliverables.Overdue = p.Deliverables.Overdue
	res.Deliverables.CompletionPercentage = p.Deliverables.CompletionPercentage

	res.Payments.Total = p.Payments.Total
	res.Payments.Paid = p.Payments.Paid
	res.Payments.Pending = p.Payments.Pending
	res.Payments.Overdue = p.Payments.Overdue
	res.Payments.TotalAmountCents = p.Payments.TotalAmount.Cents()
	res.Payments.PaidAmountCents = p.Payments.PaidAmount.Cents()
	res.Payments.PendingAmountCents = p.Payments.PendingAmount.Cents()
	res.Payments.PaidPercentage = p.Payments.PaidPercentage
	return res
}

type TemplateItemResponse struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueInDays   int    `json:"due_in_days"`
}

type AgreementTemplateResponse struct {
	ID                 string                 `json:"id"`
	Name               string                 `json:"name"`
	Category           string                 `json:"category"`
	Terms              string                 `json:"terms"`
	Deliverables       []TemplateItemResponse `json:"deliverables"`
	PaymentSchedule    []TemplateItemResponse `json:"payment_schedule"`
	CancellationPolicy string                 `json:"cancellation_policy"`
}

func FromTemplates(ts []template.Template) []*AgreementTemplateResponse {
	res := make([]*AgreementTemplateResponse, len(ts))
	for i, t := range ts {
		item := &AgreementTemplateResponse{
			ID:                 t.ID,
			Name:               t.Name,
			Category:           t.Category,
			Terms:              t.Terms,
			Deliverables:       make([]TemplateItemResponse, len(t.Deliverables)),
			PaymentSchedule:    make([]TemplateItemResponse, len(t.PaymentSchedule)),
			CancellationPolicy: t.CancellationPolicy,
		}
		for j, d := range t.Deliverables {
			item.Deliverables[j] = TemplateItemResponse(d)
		}
		for j, m := range t.PaymentSchedule {
			item.PaymentSchedule[j] = TemplateItemResponse(m)
		}
		res[i] = item
	}
	return res
}
