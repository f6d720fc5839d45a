package bins

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/payproc-dev/payproc/internal/model"
)

func sampleRanges() []model.BinRange {
	return []model.BinRange{
		{Name: "Sample Bank", RangeFrom: 4000000000, RangeTo: 4999999999, Category: model.CategoryDebit, Country: "EST"},
		{Name: "Credit Bank", RangeFrom: 5000000000, RangeTo: 5999999999, Category: model.CategoryCredit, Country: "DEU"},
	}
}

func TestLookup(t *testing.T) {
	d := NewDirectory(sampleRanges())

	b, ok := d.Lookup("4111111111111111")
	require.True(t, ok)
	assert.Equal(t, "Sample Bank", b.Name)
	assert.Equal(t, model.CategoryDebit, b.Category)

	b, ok = d.Lookup("5500005555555559")
	require.True(t, ok)
	assert.Equal(t, model.CategoryCredit, b.Category)
	assert.Equal(t, "DEU", b.Country)
}

func TestLookup_NoMatch(t *testing.T) {
	d := NewDirectory(sampleRanges())

	_, ok := d.Lookup("9999999999999999")
	assert.False(t, ok)
}

func TestLookup_MalformedPrefix(t *testing.T) {
	d := NewDirectory(sampleRanges())

	_, ok := d.Lookup("41111")
	assert.False(t, ok, "short card numbers report not-found")

	_, ok = d.Lookup("41111X1111111111")
	assert.False(t, ok, "non-numeric prefixes report not-found")
}

func TestLookup_OverlapFirstMatchWins(t *testing.T) {
	d := NewDirectory([]model.BinRange{
		{Name: "First", RangeFrom: 4000000000, RangeTo: 4999999999, Category: model.CategoryDebit, Country: "EST"},
		{Name: "Second", RangeFrom: 4111111111, RangeTo: 4111111111, Category: model.CategoryCredit, Country: "DEU"},
	})

	b, ok := d.Lookup("4111111111111111")
	require.True(t, ok)
	assert.Equal(t, "First", b.Name)
}

func TestReadRanges(t *testing.T) {
	in := strings.Join([]string{
		"name,range_from,range_to,type,country",
		"Sample Bank,4000000000,4999999999,DC,EST",
		"Credit Bank,5000000000,5999999999,CC,DEU",
	}, "\n")

	ranges, err := ReadRanges(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, ranges, 2)

	assert.Equal(t, "Sample Bank", ranges[0].Name)
	assert.Equal(t, uint64(4000000000), ranges[0].RangeFrom)
	assert.Equal(t, uint64(4999999999), ranges[0].RangeTo)
	assert.Equal(t, model.CategoryDebit, ranges[0].Category)
	assert.Equal(t, "EST", ranges[0].Country)
}

func TestReadRanges_BadBound(t *testing.T) {
	in := "name,range_from,range_to,type,country\nBank,abc,4999999999,DC,EST\n"

	_, err := ReadRanges(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
	assert.Contains(t, err.Error(), "range_from")
}

func TestReadRanges_HeaderOnly(t *testing.T) {
	ranges, err := ReadRanges(strings.NewReader("name,range_from,range_to,type,country\n"))
	require.NoError(t, err)
	assert.Empty(t, ranges)
}
