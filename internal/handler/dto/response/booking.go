package response

import (
	"event-marketplace/internal/pkg/caldate"
	"event-marketplace/internal/usecase/queries"
)

type BookingResponse struct {
	ID                 string  `json:"id"`
	EventID            string  `json:"event_id"`
	EventName          string  `json:"event_name"`
	ServiceListingID   string  `json:"service_listing_id"`
	ListingTitle       string  `json:"listing_title"`
	ListingCategory    string  `json:"listing_category"`
	OrganizerID        string  `json:"organizer_id"`
	VendorID           string  `json:"vendor_id"`
	VendorBusinessName string  `json:"vendor_business_name"`
	ServiceDate        string  `json:"service_date"`
	Requirements       string  `json:"requirements"`
	BudgetMinCents     int64   `json:"budget_min_cents"`
	BudgetMaxCents     int64   `json:"budget_max_cents"`
	QuotedPriceCents   *int64  `json:"quoted_price_cents,omitempty"`
	FinalPriceCents    *int64  `json:"final_price_cents,omitempty"`
	AdditionalNotes    *string `json:"additional_notes,omitempty"`
	Status             string  `json:"status"`
	CreatedAt          int64   `json:"created_at"`
	UpdatedAt          int64   `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:                 v.ID.String(),
		EventID:            v.EventID.String(),
		EventName:          v.EventName,
		ServiceListingID:   v.ServiceListingID.String(),
		ListingTitle:       v.ListingTitle,
		ListingCategory:    v.ListingCategory,
		OrganizerID:        v.OrganizerID.String(),
		VendorID:           v.VendorID.String(),
		VendorBusinessName: v.VendorBusinessName,
		ServiceDate:        caldate.Format(v.ServiceDate),
		Requirements:       v.Requirements,
		BudgetMinCents:     v.BudgetMinCents,
		BudgetMaxCents:     v.BudgetMaxCents,
		QuotedPriceCents:   v.QuotedPriceCents,
		FinalPriceCents:    v.FinalPriceCents,
		AdditionalNotes:    v.AdditionalNotes,
		Status:             v.Status,
		CreatedAt:          v.CreatedAt.Unix(),
		UpdatedAt:          v.UpdatedAt.Unix(),
	}
}

func FromBookingList(items []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(items))
	for i, it := range items {
		res[i] = FromBookingView(it)
	}
	return res
}

type MessageResponse struct {
	ID         string `json:"id"`
	BookingID  string `json:"booking_id"`
	SenderID   string `json:"sender_id"`
	SenderType string `json:"sender_type"`
	Content    string `json:"content"`
	SentAt     int64  `json:"sent_at"`
}

func FromMessageView(m *queries.MessageView) *MessageResponse {
	return &MessageResponse{
		ID:         m.ID.String(),
		BookingID:  m.BookingID.String(),
		SenderID:   m.SenderID.String(),
		SenderType: m.SenderType,
		Content:    m.Content,
		SentAt:     m.SentAt.Unix(),
	}
}

func FromMessageList(items []*queries.MessageView) []*MessageResponse {
	res := make([]*MessageResponse, len(items))
	for i, it := range items {
		res[i] = FromMessageView(it)
	}
	return res
}

type TimelineEntryResponse struct {
	Type      string           `json:"type"`
	Timestamp int64            `json:"timestamp"`
	Status    string           `json:"status,omitempty"`
	Message   *MessageResponse `json:"message,omitempty"`
}

func FromTimeline(entries []*queries.TimelineEntry) []*TimelineEntryResponse {
	res := make([]*TimelineEntryResponse, len(entries))
	for i, e := range entries {
		item := &TimelineEntryResponse{
			Type:      e.Type,
			Timestamp: e.Timestamp.Unix(),
			Status:    e.Status,
		}
		if e.Message != nil {
			item.Message = FromMessageView(e.Message)
		}
		res[i] = item
	}
	return res
}

type BookingStatisticsResponse struct {
	Scope             string           `json:"scope"`
	Total             int64            `json:"total"`
	ByStatus          map[string]int64 `json:"by_status"`
	ConversionRate    float64          `json:"conversion_rate"`
	CompletionRate    float64          `json:"completion_rate"`
	CancellationRate  float64          `json:"cancellation_rate"`
	TotalRevenueCents int64            `json:"total_revenue_cents"`
}

func FromBookingStatistics(s *queries.BookingStatistics) *BookingStatisticsResponse {
	return &BookingStatisticsResponse{
		Scope:             s.Scope,
		Total:             s.Total,
		ByStatus:          s.ByStatus,
		ConversionRate:    s.ConversionRate,
		CompletionRate:    s.CompletionRate,
		CancellationRate:  s.CancellationRate,
		TotalRevenueCents: s.TotalRevenueCents,
	}
}
