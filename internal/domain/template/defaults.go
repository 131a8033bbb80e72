package template

var defaultCategories = map[string]string{
	"CATERING":    CateringTemplateID,
	"PHOTOGRAPHY": PhotographyTemplateID,
	"VIDEOGRAPHY": PhotographyTemplateID,
	"VENUE":       VenueTemplateID,
}

var defaultTemplates = []Template{
	{
		ID:       CateringTemplateID,
		Name:     "Catering Service Agreement",
		Category: "CATERING",
		Terms: `This Catering Service Agreement is entered into between [ORGANIZER_NAME] ("Client") and [VENDOR_NAME] ("Caterer") for [EVENT_NAME] on [EVENT_DATE].

1. Services. The Caterer will provide [SERVICE_NAME] as described in the booking requirements, including food preparation, delivery, setup, service staff and cleanup.
2. Compensation. The Client agrees to pay a total of [TOTAL_AMOUNT] according to the payment schedule of this agreement.
3. Guest count. The final guest count must be confirmed no later than the headcount deliverable due date. Charges are based on the confirmed count or actual attendance, whichever is greater.
4. Food safety. The Caterer holds all permits and insurance required to prepare and serve food at the event venue.
5. Changes. Menu changes after finalization are subject to availability and may incur additional charges.`,
		Deliverables: []DeliverableTemplate{
			{Title: "Menu Finalization", Description: "Agree on the final menu, including dietary accommodations.", DueInDays: 30},
			{Title: "Tasting Session", Description: "Tasting of the selected dishes with the client.", DueInDays: 21},
			{Title: "Final Headcount Confirmation", Description: "Confirm the final number of guests and service style.", DueInDays: 7},
			{Title: "Event Day Service", Description: "Delivery, setup, service and cleanup on the event day.", DueInDays: 60},
		},
		PaymentSchedule: []MilestoneTemplate{
			{Title: "Deposit", Description: "Deposit to secure the booking date.", DueInDays: 3},
			{Title: "Final Payment", Description: "Remaining balance due before the event.", DueInDays: 45},
		},
		CancellationPolicy: "Cancellations more than 30 days before the event receive a full refund less the deposit. Cancellations within 30 days forfeit 50% of the total amount. Cancellations within 7 days are non-refundable.",
	},
	{
		ID:       PhotographyTemplateID,
		Name:     "Photography & Videography Agreement",
		Category: "PHOTOGRAPHY",
		Terms: `This agreement is made between [ORGANIZER_NAME] ("Client") and [VENDOR_NAME] ("Photographer") for coverage of [EVENT_NAME] on [EVENT_DATE].

1. Services. The Photographer will provide [SERVICE_NAME], including event coverage and post-production as listed in the deliverables.
2. Compensation. The total fee is [TOTAL_AMOUNT], payable according to the payment schedule.
3. Usage rights. The Client receives a personal, non-exclusive license to the delivered images and footage. The Photographer may use selected work for portfolio purposes unless the Client opts out in writing.
4. Delivery. Edited material is delivered through an online gallery. Raw files are not included unless agreed separately.`,
		Deliverables: []DeliverableTemplate{
			{Title: "Shot List Consultation", Description: "Agree on key moments, people and locations to cover.", DueInDays: 14},
			{Title: "Event Coverage", Description: "On-site photography and/or videography on the event day.", DueInDays: 60},
			{Title: "Preview Selection", Description: "Deliver a preview selection of edited highlights.", DueInDays: 67},
			{Title: "Final Gallery Delivery", Description: "Deliver the complete edited gallery.", DueInDays: 90},
		},
		PaymentSchedule: []MilestoneTemplate{
			{Title: "Booking Deposit", Description: "Non-refundable retainer to reserve the date.", DueInDays: 3},
			{Title: "Final Balance", Description: "Remaining balance due before the event.", DueInDays: 50},
		},
		CancellationPolicy: "The booking deposit is non-refundable. Cancellations more than 14 days before the event are refunded any amount paid beyond the deposit.",
	},
	{
		ID:       VenueTemplateID,
		Name:     "Venue Rental Agreement",
		Category: "VENUE",
		Terms: `This Venue Rental Agreement is entered into between [ORGANIZER_NAME] ("Renter") and [VENDOR_NAME] ("Venue") for [EVENT_NAME] on [EVENT_DATE].

1. Premises. The Venue grants the Renter use of [SERVICE_NAME] for the agreed hours of the event date.
2. Fee. The total rental fee is [TOTAL_AMOUNT], payable according to the payment schedule.
3. Conduct. The Renter is responsible for guests' conduct and for damage beyond normal wear.
4. Vendors. Outside vendors must comply with the Venue's rules and provide proof of insurance on request.`,
		Deliverables: []DeliverableTemplate{
			{Title: "Site Visit", Description: "Walkthrough of the venue with the event team.", DueInDays: 14},
			{Title: "Floor Plan Approval", Description: "Approve layout, seating and vendor placement.", DueInDays: 30},
			{Title: "Venue Access on Event Day", Description: "Provide access for setup, the event and teardown.", DueInDays: 60},
		},
		PaymentSchedule: []MilestoneTemplate{
			{Title: "Reservation Deposit", Description: "Deposit to hold the date.", DueInDays: 3},
			{Title: "Final Rental Payment", Description: "Remaining rental fee.", DueInDays: 40},
		},
		CancellationPolicy: "The reservation deposit is refundable up to 60 days before the event. Later cancellations forfeit the deposit; cancellations within 14 days owe the full rental fee.",
	},
}
