package slotgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindows(t *testing.T) {
	t.Run("30 minute sessions fill both blocks", func(t *testing.T) {
		ws := Windows(30)
		require.Len(t, ws, 12) // 6 in the morning block, 6 in the afternoon block
		assert.Equal(t, Window{Start: "10:00:00", End: "10:30:00"}, ws[0])
		assert.Equal(t, Window{Start: "12:30:00", End: "13:00:00"}, ws[5])
		assert.Equal(t, Window{Start: "15:00:00", End: "15:30:00"}, ws[6])
		assert.Equal(t, Window{Start: "17:30:00", End: "18:00:00"}, ws[11])
	})

	t.Run("60 minute sessions", func(t *testing.T) {
		ws := Windows(60)
		require.Len(t, ws, 6)
		assert.Equal(t, Window{Start: "10:00:00", End: "11:00:00"}, ws[0])
		assert.Equal(t, Window{Start: "17:00:00", End: "18:00:00"}, ws[5])
	})

	t.Run("unsupported lengths return nil", func(t *testing.T) {
		assert.Nil(t, Windows(0))
		assert.Nil(t, Windows(45))
		assert.Nil(t, Windows(-30))
	})
}

func TestMissing(t *testing.T) {
	catalog := Windows(60)

	t.Run("empty existing keeps the whole catalog", func(t *testing.T) {
		assert.Equal(t, catalog, Missing(catalog, map[string]struct{}{}))
	})

	t.Run("existing start times are skipped", func(t *testing.T) {
		existing := map[string]struct{}{
			"10:00:00": {},
			"16:00:00": {},
		}
		got := Missing(catalog, existing)
		require.Len(t, got, 4)
		for _, w := range got {
			_, taken := existing[w.Start]
			assert.False(t, taken, "window %s should have been skipped", w.Start)
		}
	})

	t.Run("a shorter slot at the same start blocks the window", func(t *testing.T) {
		// A pre-existing 30 minute slot at 10:00 must suppress the 60
		// minute 10:00 window rather than duplicate the start time.
		got := Missing(catalog, map[string]struct{}{"10:00:00": {}})
		require.Len(t, got, 5)
		assert.Equal(t, "11:00:00", got[0].Start)
	})
}
