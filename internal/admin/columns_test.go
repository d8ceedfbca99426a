package admin

import (
	"testing"
	"time"

	"watchbill-admin/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var fixedNow = time.Date(2024, time.September, 1, 15, 30, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return dateOf(fixedNow).AddDate(0, 0, -n)
}

func event(position string, age int, active bool) models.Event {
	return models.Event{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Date:      daysAgo(age),
		Position:  position,
		Active:    active,
	}
}

func TestNewWindow(t *testing.T) {
	w := NewWindow(fixedNow, 100)
	assert.Equal(t, time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC), w.Today)
	assert.Equal(t, time.Date(2024, time.May, 24, 0, 0, 0, 0, time.UTC), w.Since)

	assert.True(t, w.Contains(daysAgo(100)))
	assert.False(t, w.Contains(daysAgo(101)))
	assert.True(t, w.Contains(fixedNow.AddDate(0, 0, 7)), "scheduled watches stay in the window")
}

func TestRecentWatches(t *testing.T) {
	w := NewWindow(fixedNow, 100)

	t.Run("keeps only the 50 day old watch", func(t *testing.T) {
		s := &models.Sailor{Events: []models.Event{
			event("Lookout", 150, true),
			event("Helm", 50, true),
		}}
		assert.Equal(t, []string{daysAgo(50).Format("02-Jan") + " Helm"}, RecentWatches(s, w))
	})

	t.Run("boundary and inactive events", func(t *testing.T) {
		s := &models.Sailor{Events: []models.Event{
			event("Helm", 101, true),
			event("Lookout", 100, true),
			event("Helm", 10, false),
		}}
		watches := RecentWatches(s, w)
		assert.Len(t, watches, 1)
		assert.Contains(t, watches[0], "Lookout")
	})

	t.Run("ordered by date ascending", func(t *testing.T) {
		s := &models.Sailor{Events: []models.Event{
			event("Helm", 3, true),
			event("Lookout", 30, true),
			event("Messenger", 12, true),
		}}
		assert.Equal(t, []string{
			daysAgo(30).Format("02-Jan") + " Lookout",
			daysAgo(12).Format("02-Jan") + " Messenger",
			daysAgo(3).Format("02-Jan") + " Helm",
		}, RecentWatches(s, w))
	})

	t.Run("format", func(t *testing.T) {
		s := &models.Sailor{Events: []models.Event{{
			Date: time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC), Position: "Helm", Active: true,
		}}}
		assert.Equal(t, []string{"05-Jun Helm"}, RecentWatches(s, w))
	})
}

func TestRecentWatchCount(t *testing.T) {
	w := NewWindow(fixedNow, 100)
	s := &models.Sailor{Events: []models.Event{
		event("Helm", 5, true),
		event("Lookout", 20, true),
		event(models.PositionSuper, 25, true),
		event("Helm", 40, false),
		event("Helm", 120, true),
	}}

	assert.Equal(t, 2, RecentWatchCount(s, w))
}

// Supervisory watches are counted out of watch_count but still listed
// among the recent watches. Unifying the two must be a deliberate change.
func TestSuperExcludedFromCountButListed(t *testing.T) {
	w := NewWindow(fixedNow, 100)
	s := &models.Sailor{Events: []models.Event{
		event(models.PositionSuper, 10, true),
	}}

	assert.Equal(t, []string{daysAgo(10).Format("02-Jan") + " Super"}, RecentWatches(s, w))
	assert.Equal(t, 0, RecentWatchCount(s, w))
}

func TestQualSummaryAndDeptDiv(t *testing.T) {
	s := &models.Sailor{Dept: "Ops", Div: "OI", Qual: &models.Qual{Name: "OOD"}}
	assert.Equal(t, "OOD", QualSummary(s))
	assert.Equal(t, "Ops/OI", DeptDiv(s))

	assert.Equal(t, "", QualSummary(&models.Sailor{}))
	assert.Equal(t, "Eng", DeptDiv(&models.Sailor{Dept: "Eng"}))
	assert.Equal(t, "MPA", DeptDiv(&models.Sailor{Div: "MPA"}))
}

func TestDaysInQual(t *testing.T) {
	w := NewWindow(fixedNow, 100)
	qualdate := time.Date(2024, time.August, 2, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "30", DaysInQual(&models.Sailor{QualDate: &qualdate}, w))
	assert.Equal(t, "", DaysInQual(&models.Sailor{}, w))
}

func TestNewRow(t *testing.T) {
	w := NewWindow(fixedNow, 100)
	qualdate := time.Date(2024, time.August, 2, 0, 0, 0, 0, time.UTC)
	s := &models.Sailor{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Jones",
		Rate:      "QM2",
		Dept:      "Nav",
		QualDate:  &qualdate,
		Qual:      &models.Qual{Name: "Helm"},
		Events:    []models.Event{event("Helm", 1, true)},
	}

	row := NewRow(s, w)
	assert.Equal(t, "Jones", row.Name)
	assert.Equal(t, "2024-08-02", row.QualDate)
	assert.Equal(t, "Helm", row.Quals)
	assert.Equal(t, 1, row.WatchCount)
	assert.Equal(t, "30", row.Dinq)
	assert.Equal(t, "Nav", row.DeptDiv)
	assert.Equal(t, "/sailors/"+s.ID.String(), row.Link)
}
