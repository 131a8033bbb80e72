//go:build unit

package agreement_test

import (
	"testing"

	"event-marketplace/internal/domain/agreement"
	"event-marketplace/internal/pkg/money"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgress(t *testing.T) {
	t.Run("empty agreement reports 100 percent", func(t *testing.T) {
		a, err := agreement.New(uuid.New(), agreement.Content{}, now)
		require.NoError(t, err)

		p := a.Progress()
		assert.Equal(t, 0, p.Deliverables.Total)
		assert.Equal(t, float64(100), p.Deliverables.CompletionPercentage)
		assert.Equal(t, float64(100), p.Payments.PaidPercentage)
		assert.False(t, p.IsFullySigned)
	})

	t.Run("counts and amounts", func(t *testing.T) {
		c := sampleContent()
		c.Deliverables = append(c.Deliverables, agreement.DeliverableDraft{Title: "Tasting", DueDate: due})
		c.PaymentSchedule[1].Amount = money.FromCents(30000)
		a, err := agreement.New(uuid.New(), c, now)
		require.NoError(t, err)

		require.NoError(t, a.SetDeliverableStatus(a.Deliverables()[0].ID, agreement.DeliverableCompleted, now))
		require.NoError(t, a.SetDeliverableStatus(a.Deliverables()[1].ID, agreement.DeliverableOverdue, now))
		require.NoError(t, a.SetMilestoneStatus(a.PaymentSchedule()[0].ID, agreement.MilestonePaid, now))

		p := a.Progress()
		assert.Equal(t, agreement.DeliverableProgress{
			Total:                3,
			Pending:              1,
			Completed:            1,
			Overdue:              1,
			CompletionPercentage: 33.33,
		}, p.Deliverables)

		assert.Equal(t, 2, p.Payments.Total)
		assert.Equal(t, 1, p.Payments.Paid)
		assert.Equal(t, 1, p.Payments.Pending)
		assert.Equal(t, int64(80000), p.Payments.TotalAmount.Cents())
		assert.Equal(t, int64(50000), p.Payments.PaidAmount.Cents())
		assert.Equal(t, int64(30000), p.Payments.PendingAmount.Cents())
		assert.Equal(t, 62.5, p.Payments.PaidPercentage)
	})
}
