package admin

import (
	"fmt"
	"sort"
	"strconv"

	"watchbill-admin/internal/database/models"
	apperrors "watchbill-admin/internal/errors"

	"github.com/google/uuid"
)

// AllValue selects every row in a default-value filter.
const AllValue = "_all"

// Choice is one selectable option in a filter sidebar.
type Choice struct {
	Display  string `json:"display"`
	Value    string `json:"value"`
	Selected bool   `json:"selected"`
	Query    string `json:"query_string"`
}

// FilterSpec is the rendered state of one filter for the UI.
type FilterSpec struct {
	Title     string   `json:"title"`
	Parameter string   `json:"parameter"`
	Choices   []Choice `json:"choices"`
}

// Filter narrows a sailor collection and describes its own sidebar options.
type Filter interface {
	Title() string
	ParameterName() string
	// Apply narrows sailors according to the selection in params.
	Apply(params ListParams, sailors []models.Sailor) ([]models.Sailor, error)
	// Choices lists the options given the base collection and the
	// collection after every filter has been applied.
	Choices(params ListParams, base, narrowed []models.Sailor) []Choice
}

// Resolve applies every filter in order and returns the narrowed collection
// together with each filter's options computed against it.
func Resolve(filters []Filter, params ListParams, base []models.Sailor) ([]models.Sailor, []FilterSpec, error) {
	narrowed := base
	for _, f := range filters {
		var err error
		narrowed, err = f.Apply(params, narrowed)
		if err != nil {
			return nil, nil, err
		}
	}

	specs := make([]FilterSpec, 0, len(filters))
	for _, f := range filters {
		specs = append(specs, FilterSpec{
			Title:     f.Title(),
			Parameter: f.ParameterName(),
			Choices:   f.Choices(params, base, narrowed),
		})
	}
	return narrowed, specs, nil
}

func selectWhere(sailors []models.Sailor, keep func(*models.Sailor) bool) []models.Sailor {
	out := make([]models.Sailor, 0, len(sailors))
	for i := range sailors {
		if keep(&sailors[i]) {
			out = append(out, sailors[i])
		}
	}
	return out
}

func invalidFilter(param, value string) error {
	return fmt.Errorf("%s=%q: %w", param, value, apperrors.ErrInvalidFilter)
}

func boolValue(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseBoolValue(v string) (bool, bool) {
	switch v {
	case "1":
		return true, true
	case "0":
		return false, true
	}
	return false, false
}

// Lookup is a static option of a default-value filter.
type Lookup struct {
	Value   string
	Display string
}

// DefaultFilter offers "All" plus a fixed set of lookups and, when the
// request carries no selection, narrows to its default lookup instead of
// showing every row.
type DefaultFilter struct {
	title   string
	param   string
	lookups []Lookup
	def     string
	field   func(*models.Sailor) string
}

// NewActiveFilter builds the Active filter, defaulting to active sailors.
func NewActiveFilter() *DefaultFilter {
	return &DefaultFilter{
		title: "Active",
		param: "active__exact",
		lookups: []Lookup{
			{Value: "0", Display: "No"},
			{Value: "1", Display: "Yes"},
		},
		def:   "1",
		field: func(s *models.Sailor) string { return boolValue(s.Active) },
	}
}

func (f *DefaultFilter) Title() string         { return f.title }
func (f *DefaultFilter) ParameterName() string { return f.param }

// Default returns the lookup value applied when nothing is selected.
func (f *DefaultFilter) Default() string { return f.def }

func (f *DefaultFilter) Apply(params ListParams, sailors []models.Sailor) ([]models.Sailor, error) {
	value, ok := params.Value(f.param)
	if ok && value == AllValue {
		return sailors, nil
	}
	if !ok {
		value = f.def
	} else if !f.known(value) {
		return nil, invalidFilter(f.param, value)
	}
	return selectWhere(sailors, func(s *models.Sailor) bool { return f.field(s) == value }), nil
}

func (f *DefaultFilter) known(value string) bool {
	for _, l := range f.lookups {
		if l.Value == value {
			return true
		}
	}
	return false
}

func (f *DefaultFilter) Choices(params ListParams, _, _ []models.Sailor) []Choice {
	value, ok := params.Value(f.param)
	choices := []Choice{{
		Display:  "All",
		Value:    AllValue,
		Selected: ok && value == AllValue,
		Query:    params.QueryString(map[string]string{f.param: AllValue}, PageParam),
	}}
	for _, l := range f.lookups {
		choices = append(choices, Choice{
			Display:  l.Display,
			Value:    l.Value,
			Selected: (ok && value == l.Value) || (!ok && f.def == l.Value),
			Query:    params.QueryString(map[string]string{f.param: l.Value}, PageParam),
		})
	}
	return choices
}

// QualFilter narrows by qualification and labels each qualification with
// the number of sailors holding it in the current collection.
type QualFilter struct {
	catalogue []models.Qual
}

// NewQualFilter builds the qualification filter over the qual catalogue.
func NewQualFilter(catalogue []models.Qual) *QualFilter {
	return &QualFilter{catalogue: catalogue}
}

func (f *QualFilter) Title() string         { return "Watch Qualification" }
func (f *QualFilter) ParameterName() string { return "qual" }

func (f *QualFilter) Apply(params ListParams, sailors []models.Sailor) ([]models.Sailor, error) {
	value, ok := params.Value(f.ParameterName())
	if !ok || value == "" || value == AllValue {
		return sailors, nil
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return nil, invalidFilter(f.ParameterName(), value)
	}
	return selectWhere(sailors, func(s *models.Sailor) bool {
		return s.QualID != nil && *s.QualID == id
	}), nil
}

func (f *QualFilter) Choices(params ListParams, _, narrowed []models.Sailor) []Choice {
	counts := make(map[uuid.UUID]int)
	for i := range narrowed {
		if narrowed[i].QualID != nil {
			counts[*narrowed[i].QualID]++
		}
	}

	value, _ := params.Value(f.ParameterName())
	choices := []Choice{{
		Display:  "All",
		Selected: value == "" || value == AllValue,
		Query:    params.QueryString(nil, f.ParameterName(), PageParam),
	}}
	for _, q := range f.catalogue {
		count := counts[q.ID]
		if count == 0 {
			continue
		}
		id := q.ID.String()
		choices = append(choices, Choice{
			Display:  fmt.Sprintf("%s (%d)", q.Name, count),
			Value:    id,
			Selected: value == id,
			Query:    params.QueryString(map[string]string{f.ParameterName(): id}, PageParam),
		})
	}
	return choices
}

// QualdFilter narrows by the qualification-achieved flag, labelling each
// present value with its count, most frequent first.
type QualdFilter struct{}

func NewQualdFilter() *QualdFilter { return &QualdFilter{} }

func (f *QualdFilter) Title() string         { return "Qualified" }
func (f *QualdFilter) ParameterName() string { return "quald" }

func (f *QualdFilter) Apply(params ListParams, sailors []models.Sailor) ([]models.Sailor, error) {
	value, ok := params.Value(f.ParameterName())
	if !ok || value == "" {
		return sailors, nil
	}
	quald, valid := parseBoolValue(value)
	if !valid {
		return nil, invalidFilter(f.ParameterName(), value)
	}
	return selectWhere(sailors, func(s *models.Sailor) bool { return s.Quald == quald }), nil
}

func (f *QualdFilter) Choices(params ListParams, _, narrowed []models.Sailor) []Choice {
	type bucket struct {
		quald bool
		count int
	}
	buckets := []bucket{{quald: false}, {quald: true}}
	for i := range narrowed {
		if narrowed[i].Quald {
			buckets[1].count++
		} else {
			buckets[0].count++
		}
	}
	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].count > buckets[j].count })

	value, _ := params.Value(f.ParameterName())
	choices := []Choice{{
		Display:  "All",
		Selected: value == "",
		Query:    params.QueryString(nil, f.ParameterName(), PageParam),
	}}
	for _, b := range buckets {
		if b.count == 0 {
			continue
		}
		v := boolValue(b.quald)
		display := "No"
		if b.quald {
			display = "Yes"
		}
		choices = append(choices, Choice{
			Display:  display + " (" + strconv.Itoa(b.count) + ")",
			Value:    v,
			Selected: value == v,
			Query:    params.QueryString(map[string]string{f.ParameterName(): v}, PageParam),
		})
	}
	return choices
}

// DeptFilter narrows by department, offering every department on record.
type DeptFilter struct{}

func NewDeptFilter() *DeptFilter { return &DeptFilter{} }

func (f *DeptFilter) Title() string         { return "Dept" }
func (f *DeptFilter) ParameterName() string { return "dept" }

func (f *DeptFilter) Apply(params ListParams, sailors []models.Sailor) ([]models.Sailor, error) {
	value, ok := params.Value(f.ParameterName())
	if !ok {
		return sailors, nil
	}
	return selectWhere(sailors, func(s *models.Sailor) bool { return s.Dept == value }), nil
}

func (f *DeptFilter) Choices(params ListParams, base, _ []models.Sailor) []Choice {
	seen := make(map[string]bool)
	var depts []string
	for i := range base {
		d := base[i].Dept
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		depts = append(depts, d)
	}
	sort.Strings(depts)

	value, ok := params.Value(f.ParameterName())
	choices := []Choice{{
		Display:  "All",
		Selected: !ok,
		Query:    params.QueryString(nil, f.ParameterName(), PageParam),
	}}
	for _, d := range depts {
		choices = append(choices, Choice{
			Display:  d,
			Value:    d,
			Selected: ok && value == d,
			Query:    params.QueryString(map[string]string{f.ParameterName(): d}, PageParam),
		})
	}
	return choices
}

// CoversheetFilter narrows on whether a report/coversheet is attached.
type CoversheetFilter struct{}

func NewCoversheetFilter() *CoversheetFilter { return &CoversheetFilter{} }

func (f *CoversheetFilter) Title() string         { return "Coversheet" }
func (f *CoversheetFilter) ParameterName() string { return "report__isempty" }

func (f *CoversheetFilter) Apply(params ListParams, sailors []models.Sailor) ([]models.Sailor, error) {
	value, ok := params.Value(f.ParameterName())
	if !ok || value == "" {
		return sailors, nil
	}
	empty, valid := parseBoolValue(value)
	if !valid {
		return nil, invalidFilter(f.ParameterName(), value)
	}
	return selectWhere(sailors, func(s *models.Sailor) bool { return s.HasReport() != empty }), nil
}

func (f *CoversheetFilter) Choices(params ListParams, _, _ []models.Sailor) []Choice {
	value, _ := params.Value(f.ParameterName())
	return []Choice{
		{
			Display:  "All",
			Selected: value == "",
			Query:    params.QueryString(nil, f.ParameterName(), PageParam),
		},
		{
			Display:  "Yes",
			Value:    "0",
			Selected: value == "0",
			Query:    params.QueryString(map[string]string{f.ParameterName(): "0"}, PageParam),
		},
		{
			Display:  "No",
			Value:    "1",
			Selected: value == "1",
			Query:    params.QueryString(map[string]string{f.ParameterName(): "1"}, PageParam),
		},
	}
}
