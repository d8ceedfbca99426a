package seed

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"watchbill-admin/internal/database/models"
	"watchbill-admin/internal/repository"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Simple structures that directly match the roster schema
type QualData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type EventData struct {
	Date     string `yaml:"date"`
	Position string `yaml:"position"`
	Active   *bool  `yaml:"active,omitempty"`
}

type SailorData struct {
	Name         string      `yaml:"name"`
	Rate         string      `yaml:"rate"`
	Dept         string      `yaml:"dept"`
	Div          string      `yaml:"div"`
	Phone        string      `yaml:"phone,omitempty"`
	Email        string      `yaml:"email,omitempty"`
	WorkEmail    string      `yaml:"work_email,omitempty"`
	InTeams      bool        `yaml:"in_teams"`
	Availability string      `yaml:"availability,omitempty"`
	Notes        string      `yaml:"notes,omitempty"`
	Qual         string      `yaml:"qual,omitempty"`
	Quald        bool        `yaml:"quald"`
	QualDate     string      `yaml:"qualdate,omitempty"`
	Report       string      `yaml:"report,omitempty"`
	Active       *bool       `yaml:"active,omitempty"`
	Events       []EventData `yaml:"events,omitempty"`
}

// RosterFile is one YAML seed document
type RosterFile struct {
	Quals   []QualData   `yaml:"quals"`
	Sailors []SailorData `yaml:"sailors"`
}

// Stats counts what a load created or updated
type Stats struct {
	QualsCreated   int
	QualsTotal     int
	SailorsCreated int
	SailorsUpdated int
	EventsCreated  int
	EventsSkipped  int
}

// Loader upserts roster files into the database. Quals and sailors are
// matched by name; events are skipped when the sailor already has a watch
// at that position on that date.
type Loader struct {
	db *gorm.DB
}

// NewLoader creates a loader on the given connection
func NewLoader(db *gorm.DB) *Loader {
	return &Loader{db: db}
}

// Parse decodes a roster document
func Parse(r io.Reader) (*RosterFile, error) {
	var file RosterFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return &file, nil
		}
		return nil, fmt.Errorf("failed to decode roster: %w", err)
	}
	return &file, nil
}

// LoadDir loads every .yaml file below dir
func (l *Loader) LoadDir(dir string) (*Stats, error) {
	total := &Stats{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !(strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml")) {
			return nil
		}
		stats, err := l.LoadFile(path)
		if err != nil {
			return err
		}
		total.add(stats)
		return nil
	})
	return total, err
}

// LoadFile loads one roster file
func (l *Loader) LoadFile(path string) (*Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	file, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l.Load(file)
}

// Load upserts the roster in a single transaction
func (l *Loader) Load(file *RosterFile) (*Stats, error) {
	stats := &Stats{}
	err := l.db.Transaction(func(tx *gorm.DB) error {
		quals := repository.NewQualRepository(tx)
		sailors := repository.NewSailorRepository(tx)
		events := repository.NewEventRepository(tx)

		qualMap := make(map[string]*models.Qual)
		for _, q := range file.Quals {
			qual, created, err := upsertQual(quals, q)
			if err != nil {
				return fmt.Errorf("failed to create qual %s: %w", q.Name, err)
			}
			qualMap[q.Name] = qual
			if created {
				stats.QualsCreated++
			}
		}
		stats.QualsTotal = len(file.Quals)

		for _, sd := range file.Sailors {
			sailor, created, err := upsertSailor(quals, sailors, sd, qualMap)
			if err != nil {
				return fmt.Errorf("failed to create sailor %s: %w", sd.Name, err)
			}
			if created {
				stats.SailorsCreated++
			} else {
				stats.SailorsUpdated++
			}

			for _, ed := range sd.Events {
				created, err := createEvent(events, sailor, ed)
				if err != nil {
					return fmt.Errorf("failed to create event %s %s for %s: %w", ed.Date, ed.Position, sd.Name, err)
				}
				if created {
					stats.EventsCreated++
				} else {
					stats.EventsSkipped++
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"quals_created":   stats.QualsCreated,
		"sailors_created": stats.SailorsCreated,
		"sailors_updated": stats.SailorsUpdated,
		"events_created":  stats.EventsCreated,
		"events_skipped":  stats.EventsSkipped,
	}).Info("Roster loaded")
	return stats, nil
}

func (s *Stats) add(o *Stats) {
	s.QualsCreated += o.QualsCreated
	s.QualsTotal += o.QualsTotal
	s.SailorsCreated += o.SailorsCreated
	s.SailorsUpdated += o.SailorsUpdated
	s.EventsCreated += o.EventsCreated
	s.EventsSkipped += o.EventsSkipped
}

func upsertQual(repo *repository.QualRepository, data QualData) (*models.Qual, bool, error) {
	if strings.TrimSpace(data.Name) == "" {
		return nil, false, fmt.Errorf("qual name is required")
	}
	existing, err := repo.GetByName(data.Name)
	if err == nil {
		if data.Description != "" && existing.Description != data.Description {
			existing.Description = data.Description
			if err := repo.Update(existing); err != nil {
				return nil, false, err
			}
		}
		return existing, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	qual := &models.Qual{Name: data.Name, Description: data.Description}
	if err := repo.Create(qual); err != nil {
		return nil, false, err
	}
	return qual, true, nil
}

func upsertSailor(quals *repository.QualRepository, repo *repository.SailorRepository, data SailorData, qualMap map[string]*models.Qual) (*models.Sailor, bool, error) {
	if strings.TrimSpace(data.Name) == "" {
		return nil, false, fmt.Errorf("sailor name is required")
	}

	var qualDate *time.Time
	if data.QualDate != "" {
		t, err := time.Parse("2006-01-02", data.QualDate)
		if err != nil {
			return nil, false, fmt.Errorf("invalid qualdate %q", data.QualDate)
		}
		qualDate = &t
	}

	var qual *models.Qual
	if data.Qual != "" {
		qual = qualMap[data.Qual]
		if qual == nil {
			q, err := quals.GetByName(data.Qual)
			if err != nil {
				return nil, false, fmt.Errorf("unknown qual %q", data.Qual)
			}
			qual = q
			qualMap[data.Qual] = q
		}
	}

	active := true
	if data.Active != nil {
		active = *data.Active
	}

	sailor, err := repo.GetByName(data.Name)
	created := false
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		sailor = &models.Sailor{Name: data.Name}
		created = true
	default:
		return nil, false, err
	}

	sailor.Rate = data.Rate
	sailor.Dept = data.Dept
	sailor.Div = data.Div
	sailor.Phone = data.Phone
	sailor.Email = data.Email
	sailor.WorkEmail = data.WorkEmail
	sailor.InTeams = data.InTeams
	sailor.Availability = data.Availability
	sailor.Notes = data.Notes
	sailor.Quald = data.Quald
	sailor.QualDate = qualDate
	sailor.Report = data.Report
	sailor.Active = active
	sailor.QualID = nil
	if qual != nil {
		sailor.QualID = &qual.ID
	}

	if created {
		err = repo.Create(sailor)
	} else {
		err = repo.Update(sailor)
	}
	if err != nil {
		return nil, false, err
	}
	return sailor, created, nil
}

func createEvent(repo *repository.EventRepository, sailor *models.Sailor, data EventData) (bool, error) {
	date, err := time.Parse("2006-01-02", data.Date)
	if err != nil {
		return false, fmt.Errorf("invalid date %q", data.Date)
	}
	if strings.TrimSpace(data.Position) == "" {
		return false, fmt.Errorf("position is required")
	}

	exists, err := repo.Exists(sailor.ID, date, data.Position)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}

	active := true
	if data.Active != nil {
		active = *data.Active
	}
	event := &models.Event{
		SailorID: sailor.ID,
		Date:     date,
		Position: data.Position,
		Active:   active,
	}
	if err := repo.Create(event); err != nil {
		return false, err
	}
	return true, nil
}
