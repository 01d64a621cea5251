package views

import (
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"time"

	"github.com/gin-gonic/gin/render"
	"github.com/yigit/campusadmin/internal/app/models"
)

//go:embed templates
var templateFS embed.FS

// MenuItem is one sidebar entry
type MenuItem struct {
	Label string
	Path  string
}

// Menu is the sidebar navigation
var Menu = []MenuItem{
	{Label: "Dashboard", Path: "/dashboard"},
	{Label: "Students", Path: "/students"},
	{Label: "Courses", Path: "/courses"},
	{Label: "Profile", Path: "/profile"},
}

// Page is the data every template receives. Title and Active drive the top
// bar and the sidebar; Data is the screen-specific payload. CSRFToken is
// embedded in every form that posts.
type Page struct {
	Title     string
	Active    string
	User      *models.User
	Menu      []MenuItem
	CSRFToken string
	Data      interface{}
}

// NewPage builds the shell data for an authenticated screen
func NewPage(title, active string, user *models.User, data interface{}) Page {
	return Page{
		Title:  title,
		Active: active,
		User:   user,
		Menu:   Menu,
		Data:   data,
	}
}

// WithCSRF returns a copy of p carrying the request's form token
func (p Page) WithCSRF(token string) Page {
	p.CSRFToken = token
	return p
}

// pages maps each page template onto the layout that wraps it
var pages = map[string]string{
	"login":     "bare",
	"error":     "bare",
	"dashboard": "shell",
	"students":  "shell",
	"courses":   "shell",
	"profile":   "shell",
}

// Renderer implements gin's render.HTMLRender over the embedded templates
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses every page together with its layout and the partials
func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for page, layout := range pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFS,
			"templates/layouts/"+layout+".html",
			"templates/partials/*.html",
			"templates/pages/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		r.templates[page] = tmpl
	}
	return r, nil
}

// Instance implements render.HTMLRender
func (r *Renderer) Instance(name string, data any) render.Render {
	tmpl, ok := r.templates[name]
	if !ok {
		tmpl = r.templates["error"]
		data = Page{Title: "Error", Data: ErrorData{Code: 500, Message: "Unknown page " + name}}
	}
	return render.HTML{Template: tmpl, Name: "layout", Data: data}
}

// ErrorData is the payload of the error page
type ErrorData struct {
	Code    int
	Message string
}

var funcs = template.FuncMap{
	"formatDate": FormatDate,
	"withQuery":  WithQuery,
	"genders":    models.GenderChoices,
	"today":      func() string { return time.Now().Format("Jan 2, 2006") },
}

// FormatDate renders a YYYY-MM-DD date for display; anything else is returned unchanged.
func FormatDate(s string) string {
	t, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return s
	}
	return t.Format("Jan 2, 2006")
}

// WithQuery appends the search text to path so it survives navigation
func WithQuery(path, q string) string {
	if q == "" {
		return path
	}
	return path + "?q=" + url.QueryEscape(q)
}
