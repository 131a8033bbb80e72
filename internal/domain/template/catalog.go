package template

import (
	"slices"
	"strings"

	"event-marketplace/internal/pkg/errs"
)

var ErrTemplateNotFound = errs.Mark(errs.New("agreement template not found"), errs.ErrNotFound)

const (
	CateringTemplateID    = "catering-template"
	PhotographyTemplateID = "photography-template"
	VenueTemplateID       = "venue-template"
)

// DeliverableTemplate is due DueInDays after instantiation.
type DeliverableTemplate struct {
	Title       string
	Description string
	DueInDays   int
}

type MilestoneTemplate struct {
	Title       string
	Description string
	DueInDays   int
}

type Template struct {
	ID                 string
	Name               string
	Category           string
	Terms              string
	Deliverables       []DeliverableTemplate
	PaymentSchedule    []MilestoneTemplate
	CancellationPolicy string
}

// Catalog is read-only after construction and safe for concurrent use.
type Catalog struct {
	byID       map[string]Template
	byCategory map[string]string
	fallback   string
	ordered    []Template
}

func NewCatalog(templates []Template, categories map[string]string, fallbackID string) (*Catalog, error) {
	c := &Catalog{
		byID:       make(map[string]Template, len(templates)),
		byCategory: make(map[string]string, len(categories)),
		fallback:   fallbackID,
	}
	for _, t := range templates {
		if _, dup := c.byID[t.ID]; dup {
			return nil, errs.Newf("duplicate template id %q", t.ID)
		}
		c.byID[t.ID] = t
	}
	for cat, id := range categories {
		if _, ok := c.byID[id]; !ok {
			return nil, errs.Newf("category %q maps to unknown template %q", cat, id)
		}
		c.byCategory[strings.ToUpper(cat)] = id
	}
	if _, ok := c.byID[fallbackID]; !ok {
		return nil, errs.Newf("fallback template %q not registered", fallbackID)
	}
	c.ordered = slices.Clone(templates)
	slices.SortFunc(c.ordered, func(a, b Template) int { return strings.Compare(a.ID, b.ID) })
	return c, nil
}

// NewDefaultCatalog builds the catalog shipped with the service.
func NewDefaultCatalog() *Catalog {
	c, err := NewCatalog(defaultTemplates, defaultCategories, CateringTemplateID)
	if err != nil {
		panic("agreement template catalog: " + err.Error())
	}
	return c
}

func (c *Catalog) Get(id string) (Template, error) {
	t, ok := c.byID[id]
	if !ok {
		return Template{}, errs.Wrapf(ErrTemplateNotFound, "%q", id)
	}
	return t, nil
}

// ForCategory falls back to the catering template for unmapped categories.
func (c *Catalog) ForCategory(category string) Template {
	if id, ok := c.byCategory[strings.ToUpper(strings.TrimSpace(category))]; ok {
		return c.byID[id]
	}
	return c.byID[c.fallback]
}

func (c *Catalog) All() []Template {
	return slices.Clone(c.ordered)
}
