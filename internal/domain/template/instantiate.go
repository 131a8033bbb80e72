package template

import (
	"math"
	"strings"
	"time"

	"event-marketplace/internal/domain/agreement"
	"event-marketplace/internal/pkg/caldate"
	"event-marketplace/internal/pkg/money"
)

// AdjustDateForEvent pulls a template date that would land after the event back
// into the last fifth of the time remaining before it.
func AdjustDateForEvent(templateDate, serviceDate, now time.Time) time.Time {
	if !templateDate.After(serviceDate) {
		return templateDate
	}
	daysUntilEvent := caldate.DaysBetween(now, serviceDate)
	days := max(1, int(math.Floor(0.8*float64(daysUntilEvent))))
	return caldate.AddDays(now, days)
}

// CalculateMilestoneAmount allocates by title keyword. The shares are not
// normalized: a schedule of "Deposit", "Progress", "Final" sums to 133%.
func CalculateMilestoneAmount(title string, total money.Money, count int) money.Money {
	lower := strings.ToLower(title)
	switch {
	case strings.Contains(lower, "deposit"):
		return total.Percent(50)
	case strings.Contains(lower, "final"):
		return total.Percent(50)
	default:
		return total.Split(count)
	}
}

// Placeholders holds the values substituted into template text.
type Placeholders struct {
	EventName     string
	EventDate     time.Time
	OrganizerName string
	VendorName    string
	ServiceName   string
	TotalAmount   money.Money
}

const eventDateLayout = "January 2, 2006"

// Personalize replaces every known placeholder in text.
func Personalize(text string, p Placeholders) string {
	eventDate := ""
	if !p.EventDate.IsZero() {
		eventDate = p.EventDate.Format(eventDateLayout)
	}
	return strings.NewReplacer(
		"[EVENT_NAME]", p.EventName,
		"[EVENT_DATE]", eventDate,
		"[ORGANIZER_NAME]", p.OrganizerName,
		"[VENDOR_NAME]", p.VendorName,
		"[SERVICE_NAME]", p.ServiceName,
		"[TOTAL_AMOUNT]", p.TotalAmount.Format(),
	).Replace(text)
}

type Instance struct {
	Terms              string
	Deliverables       []agreement.DeliverableDraft
	PaymentSchedule    []agreement.MilestoneDraft
	CancellationPolicy string
}

// Instantiate produces agreement content for one booking.
func (t Template) Instantiate(p Placeholders, serviceDate, now time.Time) Instance {
	inst := Instance{
		Terms:              Personalize(t.Terms, p),
		Deliverables:       make([]agreement.DeliverableDraft, 0, len(t.Deliverables)),
		PaymentSchedule:    make([]agreement.MilestoneDraft, 0, len(t.PaymentSchedule)),
		CancellationPolicy: t.CancellationPolicy,
	}
	for _, d := range t.Deliverables {
		inst.Deliverables = append(inst.Deliverables, agreement.DeliverableDraft{
			Title:       d.Title,
			Description: d.Description,
			DueDate:     AdjustDateForEvent(caldate.AddDays(now, d.DueInDays), serviceDate, now),
		})
	}
	for _, m := range t.PaymentSchedule {
		inst.PaymentSchedule = append(inst.PaymentSchedule, agreement.MilestoneDraft{
			Title:       m.Title,
			Description: m.Description,
			Amount:      CalculateMilestoneAmount(m.Title, p.TotalAmount, len(t.PaymentSchedule)),
			DueDate:     AdjustDateForEvent(caldate.AddDays(now, m.DueInDays), serviceDate, now),
		})
	}
	return inst
}
