package admin

import (
	"fmt"
	"strings"
	"time"

	"watchbill-admin/internal/database/models"
	apperrors "watchbill-admin/internal/errors"
)

// Ordering is a validated change-list sort: a column of the annotated
// sailor query and its direction.
type Ordering struct {
	Param  string
	Column string
	Desc   bool
}

// orderable maps the `o` parameter to query columns. watch_count is the
// annotated recent-watch aggregate.
var orderable = map[string]string{
	"name":        "name",
	"rate":        "rate",
	"qualdate":    "qualdate",
	"watch_count": "watch_count",
}

// ParseOrdering validates the `o` parameter. Empty means by name.
func ParseOrdering(o string) (Ordering, error) {
	if o == "" {
		return Ordering{Param: "name", Column: "name"}, nil
	}
	desc := strings.HasPrefix(o, "-")
	param := strings.TrimPrefix(o, "-")
	column, ok := orderable[param]
	if !ok {
		return Ordering{}, fmt.Errorf("o=%q: %w", o, apperrors.ErrInvalidOrder)
	}
	return Ordering{Param: param, Column: column, Desc: desc}, nil
}

// Fieldset is one line of the detail form.
type Fieldset []string

// Inline describes a related model edited on the sailor page.
type Inline struct {
	Name   string   `json:"name"`
	Model  string   `json:"model"`
	Fields []string `json:"fields"`
}

// Layout is the serialisable registration consumed by the UI.
type Layout struct {
	ListDisplay      []string   `json:"list_display"`
	ListDisplayLinks []string   `json:"list_display_links"`
	ListFilter       []string   `json:"list_filter"`
	Ordering         []string   `json:"sortable_by"`
	Actions          []Action   `json:"actions"`
	Fields           []Fieldset `json:"fields"`
	Inlines          []Inline   `json:"inlines"`
	ExportHeader     []string   `json:"export_header"`
	RecentWatchDays  int        `json:"recent_watch_days"`
}

// ChangeList is one rendered page of the sailor list.
type ChangeList struct {
	Rows        []Row        `json:"results"`
	Filters     []FilterSpec `json:"filters"`
	Total       int          `json:"result_count"`
	FullCount   int          `json:"full_result_count"`
	Page        int          `json:"page"`
	PageSize    int          `json:"page_size"`
	Ordering    string       `json:"ordering"`
	Actions     []Action     `json:"actions"`
	WindowSince string       `json:"window_since"`
}

// SailorAdmin wires filters, list columns, actions, the exporter and the
// form layout of the sailor admin page.
type SailorAdmin struct {
	exporter    *Exporter
	days        int
	now         func() time.Time
	listDisplay []string
	actions     []Action
	fields      []Fieldset
	inlines     []Inline
}

// NewSailorAdmin builds the sailor admin with the roster export layout.
func NewSailorAdmin(recentWatchDays int, now func() time.Time) (*SailorAdmin, error) {
	exporter, err := NewExporter(DefaultExportColumns())
	if err != nil {
		return nil, fmt.Errorf("build exporter: %w", err)
	}
	return NewSailorAdminWithExporter(exporter, recentWatchDays, now), nil
}

// NewSailorAdminWithExporter builds the sailor admin around a given exporter.
func NewSailorAdminWithExporter(exporter *Exporter, recentWatchDays int, now func() time.Time) *SailorAdmin {
	if recentWatchDays <= 0 {
		recentWatchDays = DefaultRecentWatchDays
	}
	if now == nil {
		now = time.Now
	}
	return &SailorAdmin{
		exporter: exporter,
		days:     recentWatchDays,
		now:      now,
		listDisplay: []string{
			"name", "rate", "phone", "quals", "qualdate", "availability",
			"notes", "get_watches", "watch_count", "dept_div", "dinq_date",
		},
		actions: []Action{
			{Name: ActionExport, Description: "Export Selected"},
			{Name: ActionAckJun, Description: "Ack'd Jun Message"},
		},
		fields: []Fieldset{
			{"name", "rate", "dept", "div"},
			{"phone", "work_email"},
			{"email", "in_teams"},
			{"availability", "notes"},
			{"qual"},
			{"quald"},
			{"qualdate", "report"},
			{"active"},
		},
		inlines: []Inline{
			{Name: "events", Model: "event", Fields: []string{"date", "position", "active"}},
		},
	}
}

// Window returns the recent-watch window as of now.
func (a *SailorAdmin) Window() Window {
	return NewWindow(a.now(), a.days)
}

// Exporter returns the CSV exporter used by the export action.
func (a *SailorAdmin) Exporter() *Exporter {
	return a.exporter
}

// Filters returns the sidebar filters in display order. The qualification
// filter is built over the current catalogue on every call.
func (a *SailorAdmin) Filters(catalogue []models.Qual) []Filter {
	return []Filter{
		NewQualFilter(catalogue),
		NewQualdFilter(),
		NewActiveFilter(),
		NewDeptFilter(),
		NewCoversheetFilter(),
	}
}

// HasAction reports whether name is a registered bulk action.
func (a *SailorAdmin) HasAction(name string) bool {
	for _, act := range a.actions {
		if act.Name == name {
			return true
		}
	}
	return false
}

// ChangeList filters the sailors, which must already be in display order,
// and renders the requested page.
func (a *SailorAdmin) ChangeList(params ListParams, catalogue []models.Qual, sailors []models.Sailor) (*ChangeList, error) {
	ordering, err := ParseOrdering(params.Order)
	if err != nil {
		return nil, err
	}

	narrowed, specs, err := Resolve(a.Filters(catalogue), params, sailors)
	if err != nil {
		return nil, err
	}

	page, size := params.Page, params.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	start := (page - 1) * size
	if start > len(narrowed) {
		start = len(narrowed)
	}
	end := start + size
	if end > len(narrowed) {
		end = len(narrowed)
	}

	w := a.Window()
	rows := make([]Row, 0, end-start)
	for i := start; i < end; i++ {
		rows = append(rows, NewRow(&narrowed[i], w))
	}

	order := ordering.Param
	if ordering.Desc {
		order = "-" + order
	}

	return &ChangeList{
		Rows:        rows,
		Filters:     specs,
		Total:       len(narrowed),
		FullCount:   len(sailors),
		Page:        page,
		PageSize:    size,
		Ordering:    order,
		Actions:     a.actions,
		WindowSince: w.Since.Format("2006-01-02"),
	}, nil
}

// Layout returns the registration for the UI.
func (a *SailorAdmin) Layout() Layout {
	sortable := make([]string, 0, len(orderable))
	for _, col := range a.listDisplay {
		if _, ok := orderable[col]; ok {
			sortable = append(sortable, col)
		}
	}
	filters := a.Filters(nil)
	names := make([]string, len(filters))
	for i, f := range filters {
		names[i] = f.ParameterName()
	}
	return Layout{
		ListDisplay:      a.listDisplay,
		ListDisplayLinks: a.listDisplay,
		ListFilter:       names,
		Ordering:         sortable,
		Actions:          a.actions,
		Fields:           a.fields,
		Inlines:          a.inlines,
		ExportHeader:     a.exporter.Header(),
		RecentWatchDays:  a.days,
	}
}
