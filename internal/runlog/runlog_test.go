package runlog

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEntry() Entry {
	return Entry{
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		RunID:     uuid.NewString(),
		Total:     10,
		Approved:  7,
		Declined:  3,
		Status:    "completed",
	}
}

func TestAppendRead(t *testing.T) {
	ws := t.TempDir()
	e := sampleEntry()

	require.NoError(t, Append(ws, []Entry{e}))

	got, err := Read(ws)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, e, got[0])
}

func TestAppend_AccumulatesAcrossRuns(t *testing.T) {
	ws := t.TempDir()

	require.NoError(t, Append(ws, []Entry{sampleEntry()}))
	require.NoError(t, Append(ws, []Entry{sampleEntry()}))

	got, err := Read(ws)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.NotEqual(t, got[0].RunID, got[1].RunID)
}

func TestRead_MissingFile(t *testing.T) {
	got, err := Read(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestUnmarshalEntry_BadCount(t *testing.T) {
	row := MarshalEntry(sampleEntry())
	row[colTotal] = "lots"

	_, err := UnmarshalEntry(row)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing count")
}
