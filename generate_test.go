package main

import (
	"bytes"
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"github.com/mental32/exchange-orderbook/common"
	"github.com/stretchr/testify/assert"
)

func TestGenerateZeroRows(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Generate(buf, 0, rand.New(rand.NewSource(1)))
	assert.Nil(t, err)
	assert.Equal(t, "side,qty,price\n", buf.String())
}

func TestGenerateLineCount(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Generate(buf, 3, rand.New(rand.NewSource(1)))
	assert.Nil(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, 4, len(lines))
	assert.Equal(t, "side,qty,price", lines[0])

	rowPattern := regexp.MustCompile(`^(buy|sell),\d{1,2},\d{3}$`)
	for _, line := range lines[1:] {
		assert.Regexp(t, rowPattern, line)
	}
}

func TestGenerateRowsWithinBounds(t *testing.T) {
	buf := &bytes.Buffer{}
	err := Generate(buf, 500, rand.New(rand.NewSource(42)))
	assert.Nil(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, 501, len(lines))
	for _, line := range lines[1:] {
		_, err := common.ParseRecord(strings.Split(line, ","))
		assert.Nil(t, err, line)
	}
}

func TestGenerateNotDeterministic(t *testing.T) {
	first := &bytes.Buffer{}
	second := &bytes.Buffer{}
	assert.Nil(t, Generate(first, 100, rand.New(rand.NewSource(1))))
	assert.Nil(t, Generate(second, 100, rand.New(rand.NewSource(2))))

	assert.Equal(t, strings.Count(first.String(), "\n"), strings.Count(second.String(), "\n"))
	assert.NotEqual(t, first.String(), second.String())
}
