package converter

import (
	"encoding/json"
	"time"

	"event-marketplace/internal/domain/agreement"
	sqlc "event-marketplace/internal/infra/sqlc/generated"
	"event-marketplace/internal/pkg/errs"
	"event-marketplace/internal/pkg/money"
	"event-marketplace/internal/pkg/pgconv"

	"github.com/google/uuid"
)

// ErrCorruptRow reports a stored value the domain cannot accept.
var ErrCorruptRow = errs.New("stored row failed validation")

type deliverableDoc struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     time.Time  `json:"dueDate"`
	Status      string     `json:"status"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

type milestoneDoc struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AmountCents int64      `json:"amountCents"`
	DueDate     time.Time  `json:"dueDate"`
	Status      string     `json:"status"`
	PaidAt      *time.Time `json:"paidAt,omitempty"`
}

type signatureDoc struct {
	Token    string            `json:"token"`
	SignedAt time.Time         `json:"signedAt"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

func AgreementToCreateParams(a *agreement.ServiceAgreement) (sqlc.CreateServiceAgreementParams, error) {
	deliverables, schedule, err := encodeItems(a)
	if err != nil {
		return sqlc.CreateServiceAgreementParams{}, err
	}
	return sqlc.CreateServiceAgreementParams{
		ID:                 a.ID(),
		BookingID:          a.BookingID(),
		Terms:              a.Terms(),
		Deliverables:       deliverables,
		PaymentSchedule:    schedule,
		CancellationPolicy: a.CancellationPolicy(),
		CreatedAt:          pgconv.TimeToPgtype(a.CreatedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(a.UpdatedAt()),
	}, nil
}

func AgreementToUpdateParams(a *agreement.ServiceAgreement) (sqlc.UpdateServiceAgreementParams, error) {
	deliverables, schedule, err := encodeItems(a)
	if err != nil {
		return sqlc.UpdateServiceAgreementParams{}, err
	}
	orgSig, err := encodeSignature(a.OrganizerSignature())
	if err != nil {
		return sqlc.UpdateServiceAgreementParams{}, err
	}
	vendorSig, err := encodeSignature(a.VendorSignature())
	if err != nil {
		return sqlc.UpdateServiceAgreementParams{}, err
	}
	return sqlc.UpdateServiceAgreementParams{
		ID:                 a.ID(),
		Terms:              a.Terms(),
		Deliverables:       deliverables,
		PaymentSchedule:    schedule,
		CancellationPolicy: a.CancellationPolicy(),
		OrganizerSignature: orgSig,
		VendorSignature:    vendorSig,
		SignedAt:           pgconv.TimePtrToPgtype(a.SignedAt()),
		UpdatedAt:          pgconv.TimeToPgtype(a.UpdatedAt()),
	}, nil
}

func AgreementFromRow(r sqlc.ServiceAgreements) (*agreement.ServiceAgreement, error) {
	deliverables, err := decodeDeliverables(r.Deliverables)
	if err != nil {
		return nil, errs.Wrapf(err, "agreement %s deliverables", r.ID)
	}
	schedule, err := decodeMilestones(r.PaymentSchedule)
	if err != nil {
		return nil, errs.Wrapf(err, "agreement %s payment schedule", r.ID)
	}
	orgSig, err := decodeSignature(r.OrganizerSignature)
	if err != nil {
		return nil, errs.Wrapf(err, "agreement %s organizer signature", r.ID)
	}
	vendorSig, err := decodeSignature(r.VendorSignature)
	if err != nil {
		return nil, errs.Wrapf(err, "agreement %s vendor signature", r.ID)
	}
	return agreement.Reconstruct(agreement.ReconstructParams{
		ID:                 r.ID,
		BookingID:          r.BookingID,
		Terms:              r.Terms,
		Deliverables:       deliverables,
		PaymentSchedule:    schedule,
		CancellationPolicy: r.CancellationPolicy,
		OrganizerSignature: orgSig,
		VendorSignature:    vendorSig,
		SignedAt:           pgconv.TimePtrFromPgtype(r.SignedAt),
		CreatedAt:          pgconv.TimeFromPgtype(r.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(r.UpdatedAt),
	}), nil
}

func encodeItems(a *agreement.ServiceAgreement) ([]byte, []byte, error) {
	ds := make([]deliverableDoc, 0, len(a.Deliverables()))
	for _, d := range a.Deliverables() {
		ds = append(ds, deliverableDoc{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			DueDate:     d.DueDate.UTC(),
			Status:      string(d.Status),
			CompletedAt: d.CompletedAt,
		})
	}
	ms := make([]milestoneDoc, 0, len(a.PaymentSchedule()))
	for _, m := range a.PaymentSchedule() {
		ms = append(ms, milestoneDoc{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			AmountCents: m.Amount.Cents(),
			DueDate:     m.DueDate.UTC(),
			Status:      string(m.Status),
			PaidAt:      m.PaidAt,
		})
	}
	deliverables, err := json.Marshal(ds)
	if err != nil {
		return nil, nil, errs.Wrap(err, "encode deliverables")
	}
	schedule, err := json.Marshal(ms)
	if err != nil {
		return nil, nil, errs.Wrap(err, "encode payment schedule")
	}
	return deliverables, schedule, nil
}

func encodeSignature(s *agreement.Signature) ([]byte, error) {
	if s == nil {
		return nil, nil
	}
	b, err := json.Marshal(signatureDoc{Token: s.Token, SignedAt: s.SignedAt.UTC(), Metadata: s.Metadata})
	if err != nil {
		return nil, errs.Wrap(err, "encode signature")
	}
	return b, nil
}

func decodeDeliverables(raw []byte) ([]agreement.Deliverable, error) {
	var docs []deliverableDoc
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &docs); err != nil {
			return nil, errs.Wrap(ErrCorruptRow, err.Error())
		}
	}
	out := make([]agreement.Deliverable, 0, len(docs))
	for i, d := range docs {
		status, err := agreement.ParseDeliverableStatus(d.Status)
		if err != nil || d.ID == uuid.Nil || d.Title == "" {
			return nil, errs.Wrapf(ErrCorruptRow, "deliverable #%d", i)
		}
		out = append(out, agreement.Deliverable{
			ID:          d.ID,
			Title:       d.Title,
			Description: d.Description,
			DueDate:     d.DueDate,
			Status:      status,
			CompletedAt: d.CompletedAt,
		})
	}
	return out, nil
}

func decodeMilestones(raw []byte) ([]agreement.PaymentMilestone, error) {
	var docs []milestoneDoc
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &docs); err != nil {
			return nil, errs.Wrap(ErrCorruptRow, err.Error())
		}
	}
	out := make([]agreement.PaymentMilestone, 0, len(docs))
	for i, m := range docs {
		status, err := agreement.ParseMilestoneStatus(m.Status)
		if err != nil || m.ID == uuid.Nil || m.Title == "" {
			return nil, errs.Wrapf(ErrCorruptRow, "milestone #%d", i)
		}
		amount, err := money.New(m.AmountCents)
		if err != nil {
			return nil, errs.Wrapf(ErrCorruptRow, "milestone #%d amount", i)
		}
		out = append(out, agreement.PaymentMilestone{
			ID:          m.ID,
			Title:       m.Title,
			Description: m.Description,
			Amount:      amount,
			DueDate:     m.DueDate,
			Status:      status,
			PaidAt:      m.PaidAt,
		})
	}
	return out, nil
}

func decodeSignature(raw []byte) (*agreement.Signature, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var doc signatureDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errs.Wrap(ErrCorruptRow, err.Error())
	}
	if doc.Token == "" {
		return nil, errs.Wrap(ErrCorruptRow, "empty signature token")
	}
	return &agreement.Signature{Token: doc.Token, SignedAt: doc.SignedAt, Metadata: doc.Metadata}, nil
}
