package availability

import (
	"encoding/json"
	"strings"
	"time"

	"event-marketplace/internal/pkg/caldate"
	"event-marketplace/internal/pkg/errs"
)

var ErrInvalidRules = errs.Mark(errs.New("invalid availability rules"), errs.ErrValidation)

// Rule is one of Blocked, Custom or Recurring.
type Rule interface {
	isRule()
}

type Blocked struct {
	Date time.Time
}

type Custom struct {
	Date      time.Time
	Available bool
}

type Slot struct {
	Start string
	End   string
}

type Recurring struct {
	Weekday time.Weekday
	Slots   []Slot
}

func (Blocked) isRule()   {}
func (Custom) isRule()    {}
func (Recurring) isRule() {}

// Rules is the validated rule set of one service listing.
type Rules struct {
	rules []Rule
}

func NewRules(rules ...Rule) *Rules {
	return &Rules{rules: rules}
}

func (r *Rules) All() []Rule {
	if r == nil {
		return nil
	}
	return r.rules
}

// storage shape of the availability column
type rulesDoc struct {
	BlockedDates          []string             `json:"blockedDates,omitempty"`
	CustomAvailability    []customDoc          `json:"customAvailability,omitempty"`
	RecurringAvailability map[string][]slotDoc `json:"recurringAvailability,omitempty"`
}

type customDoc struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
}

type slotDoc struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Parse decodes the stored JSON document. Empty input or JSON null yields nil rules.
func Parse(raw []byte) (*Rules, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}

	var doc rulesDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode availability"), ErrInvalidRules)
	}

	out := &Rules{}
	for _, s := range doc.BlockedDates {
		d, err := caldate.Parse(s)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "blocked date %q", s), ErrInvalidRules)
		}
		out.rules = append(out.rules, Blocked{Date: d})
	}
	for _, c := range doc.CustomAvailability {
		d, err := caldate.Parse(c.Date)
		if err != nil {
			return nil, errs.Mark(errs.Wrapf(err, "custom date %q", c.Date), ErrInvalidRules)
		}
		out.rules = append(out.rules, Custom{Date: d, Available: c.Available})
	}
	seen := make(map[time.Weekday]string, len(doc.RecurringAvailability))
	for name, slots := range doc.RecurringAvailability {
		wd, ok := weekdays[strings.ToLower(name)]
		if !ok {
			return nil, errs.Mark(errs.Newf("unknown weekday %q", name), ErrInvalidRules)
		}
		if prev, dup := seen[wd]; dup {
			return nil, errs.Mark(errs.Newf("weekday %q repeats %q", name, prev), ErrInvalidRules)
		}
		seen[wd] = name
		rec := Recurring{Weekday: wd, Slots: make([]Slot, 0, len(slots))}
		for _, s := range slots {
			rec.Slots = append(rec.Slots, Slot(s))
		}
		out.rules = append(out.rules, rec)
	}
	return out, nil
}

// Marshal encodes rules back into the stored JSON document.
func Marshal(r *Rules) ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	doc := rulesDoc{}
	for _, rule := range r.rules {
		switch v := rule.(type) {
		case Blocked:
			doc.BlockedDates = append(doc.BlockedDates, caldate.Format(v.Date))
		case Custom:
			doc.CustomAvailability = append(doc.CustomAvailability, customDoc{Date: caldate.Format(v.Date), Available: v.Available})
		case Recurring:
			if doc.RecurringAvailability == nil {
				doc.RecurringAvailability = map[string][]slotDoc{}
			}
			slots := make([]slotDoc, 0, len(v.Slots))
			for _, s := range v.Slots {
				slots = append(slots, slotDoc(s))
			}
			doc.RecurringAvailability[strings.ToLower(v.Weekday.String())] = slots
		}
	}
	return json.Marshal(doc)
}
