package agreement

import (
	"math"
	"time"

	"event-marketplace/internal/pkg/money"
)

type DeliverableProgress struct {
	Total                int
	Pending              int
	InProgress           int
	Completed            int
	Overdue              int
	CompletionPercentage float64
}

type PaymentProgress struct {
	Total          int
	Paid           int
	Pending        int
	Overdue        int
	TotalAmount    money.Money
	PaidAmount     money.Money
	PendingAmount  money.Money
	PaidPercentage float64
}

type Progress struct {
	Deliverables  DeliverableProgress
	Payments      PaymentProgress
	IsFullySigned bool
	SignedAt      *time.Time
}

// Progress aggregates item states. Empty lists count as fully done.
func (a *ServiceAgreement) Progress() Progress {
	var dp DeliverableProgress
	for _, d := range a.deliverables {
		dp.Total++
		switch d.Status {
		case DeliverablePending:
			dp.Pending++
		case DeliverableInProgress:
			dp.InProgress++
		case DeliverableCompleted:
			dp.Completed++
		case DeliverableOverdue:
			dp.Overdue++
		}
	}
	dp.CompletionPercentage = percentage(int64(dp.Completed), int64(dp.Total))

	var pp PaymentProgress
	for _, m := range a.paymentSchedule {
		pp.Total++
		pp.TotalAmount = pp.TotalAmount.Add(m.Amount)
		switch m.Status {
		case MilestonePaid:
			pp.Paid++
			pp.PaidAmount = pp.PaidAmount.Add(m.Amount)
		case MilestonePending:
			pp.Pending++
		case MilestoneOverdue:
			pp.Overdue++
		}
	}
	pp.PendingAmount = pp.TotalAmount.Sub(pp.PaidAmount)
	pp.PaidPercentage = percentage(pp.PaidAmount.Cents(), pp.TotalAmount.Cents())

	return Progress{
		Deliverables:  dp,
		Payments:      pp,
		IsFullySigned: a.IsFullySigned(),
		SignedAt:      a.signedAt,
	}
}

func percentage(part, total int64) float64 {
	if total == 0 {
		return 100
	}
	return math.Round(float64(part)/float64(total)*10000) / 100
}
