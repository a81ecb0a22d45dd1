package views

import (
	"bytes"
	"fmt"
	"hospital-web-service/internal/app/models"
	"hospital-web-service/internal/pkg/constvars"
	"hospital-web-service/internal/pkg/exceptions"
	"hospital-web-service/internal/pkg/utils"
	"html/template"
	"io/fs"
	"net/http"

	"go.uber.org/zap"
)

const (
	layoutTemplate = "layout.html"
	layoutName     = "layout"
	templateDir    = "templates/"
)

var pageTemplates = []string{
	constvars.TemplateHome,
	constvars.TemplateDepartments,
	constvars.TemplateDepartmentDetails,
	constvars.TemplateDoctors,
	constvars.TemplateAppointments,
	constvars.TemplateError,
}

// Renderer executes page templates inside the shared layout.
type Renderer struct {
	templates map[string]*template.Template
	Log       *zap.Logger
}

// NewRenderer parses every page once, each together with the layout.
func NewRenderer(templatesFS fs.FS, logger *zap.Logger) (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pageTemplates))
	for _, name := range pageTemplates {
		tmpl, err := template.New(name).Funcs(funcMap).ParseFS(templatesFS, templateDir+layoutTemplate, templateDir+name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return &Renderer{templates: templates, Log: logger}, nil
}

var funcMap = template.FuncMap{
	"departmentName": func(doctor models.Doctor, departments []models.Department) string {
		return doctor.DepartmentName(departments)
	},
}

// Render writes the page with the given status. The page is executed into
// a buffer first so a template failure never leaves a half-written body.
func (v *Renderer) Render(w http.ResponseWriter, r *http.Request, status int, name string, page *Page) {
	page.RequestID = utils.GetRequestID(r.Context())

	var buf bytes.Buffer
	if err := v.execute(&buf, name, page); err != nil {
		v.RenderError(w, r, exceptions.ErrRenderTemplate(err, name))
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.Header().Set(constvars.HeaderCacheControl, "no-store")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

// RenderError renders the error page for err. Falls back to plain text
// when the error page itself cannot be rendered.
func (v *Renderer) RenderError(w http.ResponseWriter, r *http.Request, err error) {
	code, clientMessage, _ := utils.ResolveCustomError(v.Log, err)
	page := &Page{
		Title:     "Error",
		RequestID: utils.GetRequestID(r.Context()),
		Data: ErrorPage{
			StatusCode: code,
			StatusText: http.StatusText(code),
			Message:    clientMessage,
		},
	}

	var buf bytes.Buffer
	if execErr := v.execute(&buf, constvars.TemplateError, page); execErr != nil {
		v.Log.Error("Renderer.RenderError failed to render error page",
			zap.String(constvars.LoggingRequestIDKey, page.RequestID),
			zap.Error(execErr),
		)
		w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlainCharsetUTF8)
		w.WriteHeader(code)
		w.Write([]byte(clientMessage))
		return
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextHTMLCharsetUTF8)
	w.WriteHeader(code)
	w.Write(buf.Bytes())
}

func (v *Renderer) execute(buf *bytes.Buffer, name string, page *Page) error {
	tmpl, ok := v.templates[name]
	if !ok {
		return fmt.Errorf("template %s is not registered", name)
	}
	return tmpl.ExecuteTemplate(buf, layoutName, page)
}
