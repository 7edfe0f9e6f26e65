package httpapi

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/otel/attribute"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	viewIndex    = "index"
	viewShow     = "show"
	viewNew      = "new"
	viewEdit     = "edit"
	viewNotFound = "notfound"
	viewError    = "error"
)

// Views holds one parsed template set per page. Every set shares the layout
// and the bag form fields.
type Views struct {
	pages map[string]*template.Template
}

func NewViews() (*Views, error) {
	names := []string{viewIndex, viewShow, viewNew, viewEdit, viewNotFound, viewError}
	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		tmpl, err := template.New(name).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/fields.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parse view %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return &Views{pages: pages}, nil
}

func MustViews() *Views {
	views, err := NewViews()
	if err != nil {
		panic(err)
	}
	return views
}

// render executes into a pooled buffer first so a template failure never
// leaves a half-written page behind.
func (v *Views) render(ctx context.Context, w http.ResponseWriter, status int, name string, data any) error {
	ctx, span := startSpan(ctx, "httpapi.Views.render", attribute.String("view.name", name))
	defer span.End()

	tmpl, ok := v.pages[name]
	if !ok {
		err := fmt.Errorf("view %q is not registered", name)
		failSpan(ctx, err)
		return err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := tmpl.ExecuteTemplate(buf, "layout", data); err != nil {
		err = fmt.Errorf("execute view %s: %w", name, err)
		failSpan(ctx, err)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	return nil
}

type bagListPage struct {
	Title string
	Bags  []bagRow
}

type bagRow struct {
	ID       int64
	Player   string
	Capacity int
}

type bagDetailPage struct {
	Title    string
	Bag      bagDetail
	ClubName string
	Errors   map[string]string
}

type bagDetail struct {
	ID       int64
	Player   string
	Capacity int
	Clubs    []clubRow
}

type clubRow struct {
	ID   int64
	Name string
}

type bagFormPage struct {
	Title  string
	BagID  int64
	Form   bagForm
	Errors map[string]string
}

type messagePage struct {
	Title   string
	Message string
}
