package holiday

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendar(t *testing.T) {
	src := `
holidays:
  - name: Republic Day
    date: 2025-01-26
  - name: Raksha Bandhan
    date: "2025-08-09"
    description: Optional festival
    optional: true
`
	entries, err := ParseCalendar(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "Republic Day", entries[0].Name)
	assert.Equal(t, time.Date(2025, 1, 26, 0, 0, 0, 0, time.UTC), entries[0].Date)
	assert.False(t, entries[0].IsOptional)
	assert.True(t, entries[1].IsOptional)
	assert.Equal(t, "Optional festival", entries[1].Description)
}

func TestParseCalendar_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", "empty"},
		{"no holidays", "holidays: []\n", "no holidays"},
		{"bad date", "holidays:\n  - name: Diwali\n    date: 20-10-2025\n", "YYYY-MM-DD"},
		{"unknown field", "holidays:\n  - name: Diwali\n    day: 2025-10-20\n", "invalid calendar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCalendar(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
