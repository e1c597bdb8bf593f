package timeline

import (
	"testing"
	"time"

	"hangs.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventDate(t *testing.T) {
	parsed := ParseEventDate("2025-04-19T19:00")
	assert.Equal(t, time.Date(2025, 4, 19, 19, 0, 0, 0, time.Local), parsed)

	// Saniyeli ve RFC3339 varyantları da kabul edilir.
	assert.False(t, ParseEventDate("2025-04-19T19:00:30").IsZero())
	assert.False(t, ParseEventDate("2025-04-19T19:00:00Z").IsZero())

	assert.True(t, ParseEventDate("not-a-date").IsZero())
	assert.True(t, ParseEventDate("").IsZero())
}

func TestPartitionSplitsAtNow(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.Local)
	events := []models.Event{
		{ID: "1", Title: "Yesterday", Date: "2025-04-30T19:00"},
		{ID: "2", Title: "Tomorrow", Date: "2025-05-02T19:00"},
		{ID: "3", Title: "Next week", Date: "2025-05-08T10:00"},
		{ID: "4", Title: "Last month", Date: "2025-04-01T09:00"},
	}

	upcoming, past := Partition(events, now)

	require.Len(t, upcoming, 2)
	assert.Equal(t, "Tomorrow", upcoming[0].Title)
	assert.Equal(t, "Next week", upcoming[1].Title)

	require.Len(t, past, 2)
	assert.Equal(t, "Last month", past[0].Title)
	assert.Equal(t, "Yesterday", past[1].Title)
}

func TestPartitionBoundaryIsUpcoming(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.Local)
	events := []models.Event{{ID: "1", Title: "Right now", Date: "2025-05-01T12:00"}}

	upcoming, past := Partition(events, now)

	assert.Len(t, upcoming, 1)
	assert.Empty(t, past)
}

func TestPartitionSortsAscending(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)
	events := []models.Event{
		{ID: "3", Date: "2025-03-01T10:00"},
		{ID: "1", Date: "2025-01-10T10:00"},
		{ID: "2", Date: "2025-02-01T10:00"},
	}

	upcoming, _ := Partition(events, now)

	require.Len(t, upcoming, 3)
	assert.Equal(t, "1", upcoming[0].ID)
	assert.Equal(t, "2", upcoming[1].ID)
	assert.Equal(t, "3", upcoming[2].ID)
}

func TestIsPast(t *testing.T) {
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.Local)

	assert.True(t, IsPast(models.Event{Date: "2025-04-30T19:00"}, now))
	assert.False(t, IsPast(models.Event{Date: "2025-05-02T19:00"}, now))
	assert.False(t, IsPast(models.Event{Date: "2025-05-01T12:00"}, now))
}
