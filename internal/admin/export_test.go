package admin

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"watchbill-admin/internal/database/models"
	apperrors "watchbill-admin/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Work_email", Capitalize("work_email"))
	assert.Equal(t, "Qualdate", Capitalize("qualdate"))
	assert.Equal(t, "Name", Capitalize("NAME"))
	assert.Equal(t, "", Capitalize(""))
}

func TestDefaultExportHeader(t *testing.T) {
	exporter, err := NewExporter(DefaultExportColumns())
	require.NoError(t, err)

	header := exporter.Header()
	assert.Len(t, header, len(SailorFields)-len(ExcludedExportFields)+3)
	assert.Equal(t, []string{
		"Name", "Rate", "Dept", "Div", "Phone", "Email", "Work_email", "In_teams",
		"Availability", "Notes", "Quald", "Qualdate", "Quals", "Dinq", "Report",
		"Active", "Watches",
	}, header)

	for i, h := range header {
		if h == HeaderQualdate {
			assert.Equal(t, HeaderQuals, header[i+1])
			assert.Equal(t, HeaderDinq, header[i+2])
		}
	}
	assert.Equal(t, HeaderWatches, header[len(header)-1])
}

func TestExportHeaderMatchesModelFields(t *testing.T) {
	excluded := make(map[string]bool)
	for _, f := range ExcludedExportFields {
		excluded[f] = true
	}
	var expected []string
	for _, f := range SailorFields {
		if !excluded[f] {
			expected = append(expected, Capitalize(f))
		}
	}

	exporter, err := NewExporter(DefaultExportColumns())
	require.NoError(t, err)

	var fieldHeaders []string
	for _, h := range exporter.Header() {
		switch h {
		case HeaderQuals, HeaderDinq, HeaderWatches:
			continue
		}
		fieldHeaders = append(fieldHeaders, h)
	}
	assert.Equal(t, expected, fieldHeaders)
}

func TestValidateExportColumns(t *testing.T) {
	noop := func(*models.Sailor, Window) string { return "" }
	col := func(h string) ExportColumn { return ExportColumn{Header: h, Extract: noop} }

	t.Run("missing anchors", func(t *testing.T) {
		_, err := NewExporter([]ExportColumn{col("Name"), col("Qualdate")})
		require.Error(t, err)
		var schemaErr *apperrors.SchemaError
		require.ErrorAs(t, err, &schemaErr)
		assert.Equal(t, []string{"Quals", "Dinq", "Watches"}, schemaErr.Missing)
	})

	t.Run("quals not after qualdate", func(t *testing.T) {
		_, err := NewExporter([]ExportColumn{
			col("Quals"), col("Qualdate"), col("Dinq"), col("Watches"),
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsSchema(err))
		assert.Contains(t, err.Error(), "misplaced columns Quals")
	})

	t.Run("watches not last", func(t *testing.T) {
		_, err := NewExporter([]ExportColumn{
			col("Qualdate"), col("Quals"), col("Dinq"), col("Watches"), col("Active"),
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Watches")
	})

	t.Run("missing extractor", func(t *testing.T) {
		_, err := NewExporter([]ExportColumn{{Header: "Name"}})
		assert.True(t, apperrors.IsSchema(err))
	})

	t.Run("minimal valid layout", func(t *testing.T) {
		_, err := NewExporter([]ExportColumn{
			col("Qualdate"), col("Quals"), col("Dinq"), col("Watches"),
		})
		assert.NoError(t, err)
	})
}

func TestExporterWrite(t *testing.T) {
	exporter, err := NewExporter(DefaultExportColumns())
	require.NoError(t, err)

	w := NewWindow(fixedNow, 100)
	qualdate := time.Date(2024, time.August, 2, 0, 0, 0, 0, time.UTC)
	sailors := []models.Sailor{
		{
			BaseModel:    models.BaseModel{ID: uuid.New()},
			Name:         "Jones, A",
			Rate:         "QM2",
			Dept:         "Nav",
			Div:          "NA",
			Phone:        "555-0100",
			Email:        "jones@example.com",
			WorkEmail:    "a.jones@navy.example",
			InTeams:      true,
			Availability: "weekends",
			Notes:        "JUN ack'd",
			Quald:        true,
			QualDate:     &qualdate,
			Report:       "reports/jones.pdf",
			Active:       true,
			Qual:         &models.Qual{Name: "Helm"},
			Events: []models.Event{
				event("Lookout", 20, true),
				event("Helm", 50, true),
				event("Helm", 150, true),
			},
		},
		{
			BaseModel: models.BaseModel{ID: uuid.New()},
			Name:      "Smith",
			Active:    false,
		},
	}

	var buf bytes.Buffer
	require.NoError(t, exporter.Write(&buf, sailors, w))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, exporter.Header(), records[0])
	assert.Equal(t, []string{
		"Jones, A", "QM2", "Nav", "NA", "555-0100", "jones@example.com",
		"a.jones@navy.example", "True", "weekends", "JUN ack'd", "True",
		"2024-08-02", "Helm", "30", "reports/jones.pdf", "True",
		daysAgo(50).Format("02-Jan") + " Helm, " + daysAgo(20).Format("02-Jan") + " Lookout",
	}, records[1])
	assert.Equal(t, []string{
		"Smith", "", "", "", "", "", "", "False", "", "", "False", "", "", "", "", "False", "",
	}, records[2])
}
