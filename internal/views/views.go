// Package views renders the HTML pages of the library from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/sbilibin2017/gw-book-library/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page names
const (
	PageHome      = "home"
	PageRegister  = "register"
	PageLogin     = "login"
	PageDashboard = "dashboard"
	PageAddBook   = "add_book"
	PageProfile   = "profile"
	PageAdmin     = "admin"
	PageEditUser  = "edit_user"
	PageEditBook  = "edit_book"
	PageNotFound  = "not_found"
	PageError     = "error"
)

var pageTitles = map[string]string{
	PageHome:      "Home",
	PageRegister:  "Register",
	PageLogin:     "Login",
	PageDashboard: "Dashboard",
	PageAddBook:   "Add book",
	PageProfile:   "Profile",
	PageAdmin:     "Admin",
	PageEditUser:  "Edit user",
	PageEditBook:  "Edit book",
	PageNotFound:  "Not found",
	PageError:     "Error",
}

// PageData is passed to every template. Fields not used by a page stay zero.
type PageData struct {
	Title   string
	Claims  *models.SessionClaims
	Flashes []models.Flash
	User    *models.UserDB
	Users   []models.UserDB
	Book    *models.BookDB
	Books   []models.BookDB
}

// Renderer holds one parsed template set per page.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page together with the base layout.
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pageTitles))}
	for page := range pageTitles {
		tmpl, err := template.New(page).ParseFS(templatesFS, "templates/base.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// Render writes page with the given status. The page is executed into a
// buffer first so a template error never leaves a half-written response.
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data PageData) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	if data.Title == "" {
		data.Title = pageTitles[page]
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := w.Write(buf.Bytes())
	return err
}
