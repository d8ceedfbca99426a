package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("full document", func(t *testing.T) {
		doc := `
quals:
  - name: Helm
    description: Helmsman
sailors:
  - name: Adams, R
    rate: QM2
    dept: Nav
    div: NA
    qual: Helm
    quald: true
    qualdate: "2024-08-02"
    active: false
    events:
      - date: "2024-06-05"
        position: Helm
      - date: "2024-06-12"
        position: Super
        active: false
`
		file, err := Parse(strings.NewReader(doc))
		require.NoError(t, err)

		require.Len(t, file.Quals, 1)
		assert.Equal(t, "Helm", file.Quals[0].Name)

		require.Len(t, file.Sailors, 1)
		s := file.Sailors[0]
		assert.Equal(t, "Adams, R", s.Name)
		assert.True(t, s.Quald)
		assert.Equal(t, "2024-08-02", s.QualDate)
		require.NotNil(t, s.Active)
		assert.False(t, *s.Active)

		require.Len(t, s.Events, 2)
		assert.Nil(t, s.Events[0].Active)
		require.NotNil(t, s.Events[1].Active)
		assert.False(t, *s.Events[1].Active)
	})

	t.Run("empty document", func(t *testing.T) {
		file, err := Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, file.Sailors)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Parse(strings.NewReader("sailors:\n  - name: Adams\n    rank: QM2\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "rank")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Parse(strings.NewReader("sailors: [\n"))
		assert.Error(t, err)
	})
}

func TestStatsAdd(t *testing.T) {
	total := &Stats{QualsCreated: 1, EventsSkipped: 2}
	total.add(&Stats{QualsCreated: 2, SailorsCreated: 3, SailorsUpdated: 1, EventsCreated: 4, EventsSkipped: 1, QualsTotal: 3})

	assert.Equal(t, Stats{QualsCreated: 3, QualsTotal: 3, SailorsCreated: 3, SailorsUpdated: 1, EventsCreated: 4, EventsSkipped: 3}, *total)
}
