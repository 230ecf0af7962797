package main

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func reader(text string) *csv.Reader {
	return csv.NewReader(strings.NewReader(text))
}

func TestSummarize(t *testing.T) {
	summary, err := Summarize(reader("side,qty,price\nbuy,10,100\nsell,99,149\nbuy,1,120\n"))
	assert.Nil(t, err)

	assert.Equal(t, 3, summary.Rows)
	assert.Equal(t, 2, summary.Buys)
	assert.Equal(t, 1, summary.Sells)
	assert.Equal(t, 1, summary.MinQty)
	assert.Equal(t, 99, summary.MaxQty)
	assert.Equal(t, 100, summary.MinPrice)
	assert.Equal(t, 149, summary.MaxPrice)
	assert.Equal(t, 0, summary.Invalid)
}

func TestSummarizeHeaderOnly(t *testing.T) {
	summary, err := Summarize(reader("side,qty,price\n"))
	assert.Nil(t, err)
	assert.Equal(t, 0, summary.Rows)
}

func TestSummarizeCountsInvalidRows(t *testing.T) {
	summary, err := Summarize(reader("side,qty,price\nbuy,10,100\nhold,10,100\nsell,0,100\nbuy,10,150\nbuy,10\n"))
	assert.Nil(t, err)

	assert.Equal(t, 1, summary.Rows)
	assert.Equal(t, 4, summary.Invalid)
	assert.Equal(t, 3, summary.FirstInvalidLine)
}

func TestSummarizeRejectsBadHeader(t *testing.T) {
	_, err := Summarize(reader("qty,side,price\nbuy,10,100\n"))
	assert.NotNil(t, err)
}

func TestSummarizeRejectsEmptyInput(t *testing.T) {
	_, err := Summarize(reader(""))
	assert.NotNil(t, err)
}
