package queries

import "event-marketplace/internal/domain/template"

//go:generate mockgen -source=template.go -destination=../../../tests/mock/queries/template_mock.go -package=queriesmock

type TemplateQueries interface {
	List() []template.Template
}

type templateQueriesImpl struct {
	catalog *template.Catalog
}

func NewTemplateQueries(catalog *template.Catalog) TemplateQueries {
	return &templateQueriesImpl{catalog: catalog}
}

func (q *templateQueriesImpl) List() []template.Template {
	return q.catalog.All()
}
