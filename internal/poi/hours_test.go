package poi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHoursLabel(t *testing.T) {
	tests := []struct {
		name       string
		label      string
		wantClosed bool
		wantOK     bool
		wantOpen   int
		wantClose  int
	}{
		{"closed", "closed", true, true, 0, 0},
		{"closed case insensitive", "  Closed ", true, true, 0, 0},
		{"open 24 hours", "open 24 hours", false, true, 0, 24 * 60},
		{"simple range", "9:00 am-6:00 pm", false, true, 9 * 60, 18 * 60},
		{"no minutes", "9 am-6 pm", false, true, 9 * 60, 18 * 60},
		{"crosses midnight", "10:00 pm-2:00 am", false, true, 22 * 60, 24 * 60},
		{"unparseable", "by appointment only", false, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, closed, ok := ParseHoursLabel(tt.label)
			require.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantClosed, closed)
			if ok && !closed {
				assert.Equal(t, tt.wantOpen, w.Open)
				assert.Equal(t, tt.wantClose, w.Close)
			}
		})
	}
}

func TestIntersect(t *testing.T) {
	w, ok := Intersect(Window{Open: 9 * 60, Close: 18 * 60}, Window{Open: 10 * 60, Close: 22 * 60})
	require.True(t, ok)
	assert.Equal(t, 10*60, w.Open)
	assert.Equal(t, 18*60, w.Close)

	_, ok = Intersect(Window{Open: 9 * 60, Close: 10 * 60}, Window{Open: 11 * 60, Close: 12 * 60})
	assert.False(t, ok)
}

func TestResolveDay(t *testing.T) {
	dayWindow := Window{Open: 9 * 60, Close: 9*60 + 11*60}

	t.Run("closed label drops the day", func(t *testing.T) {
		_, closed := ResolveDay([]string{"closed"}, RoleAttraction, dayWindow)
		assert.True(t, closed)
	})

	t.Run("no labels uses role default intersected with day window", func(t *testing.T) {
		windows, closed := ResolveDay(nil, RoleAttraction, dayWindow)
		require.False(t, closed)
		require.Len(t, windows, 1)
		assert.Equal(t, dayWindow.Open, windows[0].Open)
	})

	t.Run("unparseable label falls back to default", func(t *testing.T) {
		windows, closed := ResolveDay([]string{"call for hours"}, RoleMeal, dayWindow)
		require.False(t, closed)
		require.Len(t, windows, 1)
	})

	t.Run("parsed label intersects with role default", func(t *testing.T) {
		windows, closed := ResolveDay([]string{"8:00 am-11:00 am"}, RoleMeal, dayWindow)
		require.False(t, closed)
		require.Len(t, windows, 1)
		assert.Equal(t, 10*60, windows[0].Open) // meal default starts 10:00
	})
}
