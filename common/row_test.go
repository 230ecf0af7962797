package common

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeader(t *testing.T) {
	assert.Equal(t, []string{"side", "qty", "price"}, Header())
}

func TestRandomRowBounds(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		row := RandomRow(rnd)
		assert.Contains(t, []Side{SIDE_BUY, SIDE_SELL}, row.Side)
		assert.GreaterOrEqual(t, row.Qty, MIN_QTY)
		assert.Less(t, row.Qty, MAX_QTY)
		assert.GreaterOrEqual(t, row.Price, MIN_PRICE)
		assert.Less(t, row.Price, MAX_PRICE)
	}
}

func TestRandomSideTakesBothValues(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	seen := make(map[Side]bool)
	for i := 0; i < 200; i++ {
		seen[RandomSide(rnd)] = true
	}
	assert.True(t, seen[SIDE_BUY])
	assert.True(t, seen[SIDE_SELL])
}

func TestRecordRoundTrip(t *testing.T) {
	row := Row{Side: SIDE_SELL, Qty: 42, Price: 107}
	record := row.Record()
	assert.Equal(t, []string{"sell", "42", "107"}, record)

	parsed, err := ParseRecord(record)
	assert.Nil(t, err)
	assert.Equal(t, row, parsed)
}

func TestParseRecordRejectsBadRows(t *testing.T) {
	bad := [][]string{
		{"buy", "10"},
		{"buy", "10", "100", "extra"},
		{"hold", "10", "100"},
		{"buy", "0", "100"},
		{"buy", "100", "100"},
		{"buy", "abc", "100"},
		{"buy", "10", "99"},
		{"buy", "10", "150"},
		{"buy", "10", "abc"},
	}
	for _, record := range bad {
		_, err := ParseRecord(record)
		assert.NotNil(t, err, "%v", record)
	}
}

func TestParseRecordAcceptsBoundaryValues(t *testing.T) {
	for _, record := range [][]string{
		{"buy", "1", "100"},
		{"sell", "99", "149"},
	} {
		_, err := ParseRecord(record)
		assert.Nil(t, err, "%v", record)
	}
}
