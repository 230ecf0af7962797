package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillMissingFromPreset(t *testing.T) {
	config := Config{Table: "orders", FileName: "aaa"}
	preset := Config{Schema: "fixtures", FileName: "bbb", Delimiter: ";"}

	config.FillMissingFromPreset(preset)
	assert.Equal(t, "fixtures", config.Schema)
	assert.Equal(t, "orders", config.Table)
	assert.Equal(t, "aaa", config.FileName)
	assert.Equal(t, ";", config.Delimiter)
}

func TestFillMissingFromPresetKeepsTableMode(t *testing.T) {
	config := Config{TableMode: MODE_CREATE}
	preset := Config{TableMode: MODE_TRUNCATE}

	config.FillMissingFromPreset(preset)
	assert.Equal(t, TableMode(MODE_CREATE), config.TableMode)
}

func TestTableModes(t *testing.T) {
	assert.True(t, TableMode(MODE_CREATE).CreateIfMissing())
	assert.True(t, TableMode(MODE_DROP_AND_CREATE).DropAndCreateIfExists())
	assert.True(t, TableMode(MODE_DELETE_ALL).DeletePrevious())
	assert.True(t, TableMode(MODE_TRUNCATE).TruncatePrevious())
	assert.False(t, TableMode(MODE_TABLE_AS_IS).CreateIfMissing())
}
