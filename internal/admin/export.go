package admin

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"watchbill-admin/internal/database/models"
	apperrors "watchbill-admin/internal/errors"
)

// ExportFilename is the attachment name of the roster export.
const ExportFilename = "WB_Roster.csv"

// Anchor headers the export layout is built around.
const (
	HeaderQualdate = "Qualdate"
	HeaderQuals    = "Quals"
	HeaderDinq     = "Dinq"
	HeaderWatches  = "Watches"
)

// SailorFields lists the sailor model fields in declaration order.
var SailorFields = []string{
	"id", "name", "rate", "dept", "div", "phone", "email", "work_email",
	"in_teams", "availability", "notes", "qual", "quald", "qualdate",
	"report", "active", "event",
}

// ExcludedExportFields are model fields that never appear in the export.
var ExcludedExportFields = []string{"id", "qual", "event"}

// ExportColumn is one column of the export: its header and how to pull the
// cell out of a sailor.
type ExportColumn struct {
	Header  string
	Extract func(s *models.Sailor, w Window) string
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(name string) string {
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + strings.ToLower(name[1:])
}

func pyBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

func field(name string, extract func(s *models.Sailor) string) ExportColumn {
	return ExportColumn{
		Header:  Capitalize(name),
		Extract: func(s *models.Sailor, _ Window) string { return extract(s) },
	}
}

// DefaultExportColumns is the roster export layout: the exported model
// fields in declaration order with Quals and Dinq following Qualdate and
// Watches last.
func DefaultExportColumns() []ExportColumn {
	return []ExportColumn{
		field("name", func(s *models.Sailor) string { return s.Name }),
		field("rate", func(s *models.Sailor) string { return s.Rate }),
		field("dept", func(s *models.Sailor) string { return s.Dept }),
		field("div", func(s *models.Sailor) string { return s.Div }),
		field("phone", func(s *models.Sailor) string { return s.Phone }),
		field("email", func(s *models.Sailor) string { return s.Email }),
		field("work_email", func(s *models.Sailor) string { return s.WorkEmail }),
		field("in_teams", func(s *models.Sailor) string { return pyBool(s.InTeams) }),
		field("availability", func(s *models.Sailor) string { return s.Availability }),
		field("notes", func(s *models.Sailor) string { return s.Notes }),
		field("quald", func(s *models.Sailor) string { return pyBool(s.Quald) }),
		field("qualdate", func(s *models.Sailor) string { return formatDate(s.QualDate) }),
		{
			Header:  HeaderQuals,
			Extract: func(s *models.Sailor, _ Window) string { return QualSummary(s) },
		},
		{
			Header:  HeaderDinq,
			Extract: DaysInQual,
		},
		field("report", func(s *models.Sailor) string { return s.Report }),
		field("active", func(s *models.Sailor) string { return pyBool(s.Active) }),
		{
			Header: HeaderWatches,
			Extract: func(s *models.Sailor, w Window) string {
				return strings.Join(RecentWatches(s, w), ", ")
			},
		},
	}
}

// Exporter writes sailors as CSV according to a validated column layout.
type Exporter struct {
	columns []ExportColumn
}

// NewExporter validates the layout and returns an exporter for it.
func NewExporter(columns []ExportColumn) (*Exporter, error) {
	if err := ValidateExportColumns(columns); err != nil {
		return nil, err
	}
	return &Exporter{columns: columns}, nil
}

// ValidateExportColumns checks that the anchor columns exist and sit where
// the roster layout expects them.
func ValidateExportColumns(columns []ExportColumn) error {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if c.Extract == nil {
			return &apperrors.SchemaError{Misplaced: []string{c.Header + " (no extractor)"}}
		}
		index[c.Header] = i
	}

	schemaErr := &apperrors.SchemaError{}
	for _, anchor := range []string{HeaderQualdate, HeaderQuals, HeaderDinq, HeaderWatches} {
		if _, ok := index[anchor]; !ok {
			schemaErr.Missing = append(schemaErr.Missing, anchor)
		}
	}
	if len(schemaErr.Missing) > 0 {
		return schemaErr
	}

	if index[HeaderQuals] != index[HeaderQualdate]+1 {
		schemaErr.Misplaced = append(schemaErr.Misplaced, HeaderQuals)
	}
	if index[HeaderDinq] != index[HeaderQuals]+1 {
		schemaErr.Misplaced = append(schemaErr.Misplaced, HeaderDinq)
	}
	if index[HeaderWatches] != len(columns)-1 {
		schemaErr.Misplaced = append(schemaErr.Misplaced, HeaderWatches)
	}
	if len(schemaErr.Misplaced) > 0 {
		return schemaErr
	}
	return nil
}

// Header returns the header row.
func (e *Exporter) Header() []string {
	header := make([]string, len(e.columns))
	for i, c := range e.columns {
		header[i] = c.Header
	}
	return header
}

// Record returns the data row for one sailor.
func (e *Exporter) Record(s *models.Sailor, w Window) []string {
	record := make([]string, len(e.columns))
	for i, c := range e.columns {
		record[i] = c.Extract(s, w)
	}
	return record
}

// Write emits the header and one row per sailor.
func (e *Exporter) Write(out io.Writer, sailors []models.Sailor, w Window) error {
	writer := csv.NewWriter(out)
	if err := writer.Write(e.Header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range sailors {
		if err := writer.Write(e.Record(&sailors[i], w)); err != nil {
			return fmt.Errorf("write row for %s: %w", sailors[i].Name, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
