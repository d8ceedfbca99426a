package admin

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"watchbill-admin/internal/database/models"
)

// DefaultRecentWatchDays is the trailing window for recent watches.
const DefaultRecentWatchDays = 100

const watchDateLayout = "02-Jan"

// Window is the trailing date window that recent-watch columns are
// computed over. Both bounds are calendar dates at UTC midnight.
type Window struct {
	Today time.Time
	Since time.Time
}

// NewWindow returns the window of the given number of days ending on the
// calendar date of now.
func NewWindow(now time.Time, days int) Window {
	today := dateOf(now)
	return Window{
		Today: today,
		Since: today.AddDate(0, 0, -days),
	}
}

// Contains reports whether the calendar date of t is on or after Since.
// Scheduled watches later than today stay inside the window.
func (w Window) Contains(t time.Time) bool {
	return !dateOf(t).Before(w.Since)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func recentEvents(s *models.Sailor, w Window) []models.Event {
	events := make([]models.Event, 0, len(s.Events))
	for _, e := range s.Events {
		if e.Active && w.Contains(e.Date) {
			events = append(events, e)
		}
	}
	sort.SliceStable(events, func(i, j int) bool { return events[i].Date.Before(events[j].Date) })
	return events
}

// RecentWatches lists the sailor's active watches in the window, oldest
// first, each as "dd-Mon position".
func RecentWatches(s *models.Sailor, w Window) []string {
	events := recentEvents(s, w)
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Date.Format(watchDateLayout)+" "+e.Position)
	}
	return out
}

// RecentWatchCount counts the sailor's active watches in the window,
// leaving out supervisory watches. RecentWatches keeps them.
func RecentWatchCount(s *models.Sailor, w Window) int {
	count := 0
	for _, e := range recentEvents(s, w) {
		if e.Position != models.PositionSuper {
			count++
		}
	}
	return count
}

// QualSummary joins the sailor's qualification names.
func QualSummary(s *models.Sailor) string {
	return strings.Join(s.Quals(), ", ")
}

// DeptDiv renders department and division as "dept/div".
func DeptDiv(s *models.Sailor) string {
	switch {
	case s.Dept != "" && s.Div != "":
		return s.Dept + "/" + s.Div
	case s.Dept != "":
		return s.Dept
	default:
		return s.Div
	}
}

// DaysInQual returns the whole days since the qualification date, or an
// empty string when the sailor has none.
func DaysInQual(s *models.Sailor, w Window) string {
	if s.QualDate == nil {
		return ""
	}
	days := int(w.Today.Sub(dateOf(*s.QualDate)).Hours() / 24)
	return strconv.Itoa(days)
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

// Row is one rendered change-list row.
type Row struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Rate         string   `json:"rate"`
	Phone        string   `json:"phone"`
	Quals        string   `json:"quals"`
	QualDate     string   `json:"qualdate"`
	Availability string   `json:"availability"`
	Notes        string   `json:"notes"`
	Watches      []string `json:"get_watches"`
	WatchCount   int      `json:"watch_count"`
	DeptDiv      string   `json:"dept_div"`
	Dinq         string   `json:"dinq_date"`
	Link         string   `json:"link"`
}

// NewRow projects a sailor onto the change-list columns.
func NewRow(s *models.Sailor, w Window) Row {
	return Row{
		ID:           s.ID.String(),
		Name:         s.Name,
		Rate:         s.Rate,
		Phone:        s.Phone,
		Quals:        QualSummary(s),
		QualDate:     formatDate(s.QualDate),
		Availability: s.Availability,
		Notes:        s.Notes,
		Watches:      RecentWatches(s, w),
		WatchCount:   RecentWatchCount(s, w),
		DeptDiv:      DeptDiv(s),
		Dinq:         DaysInQual(s, w),
		Link:         "/sailors/" + s.ID.String(),
	}
}
