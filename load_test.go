package main

import (
	"reflect"
	"testing"

	"github.com/mental32/exchange-orderbook/common"
	"github.com/stretchr/testify/assert"
)

func TestVerifyHeader(t *testing.T) {
	assert.Nil(t, VerifyHeader([]string{"side", "qty", "price"}))
	assert.NotNil(t, VerifyHeader([]string{"qty", "side", "price"}))
	assert.NotNil(t, VerifyHeader([]string{"side", "qty"}))
	assert.NotNil(t, VerifyHeader([]string{"side", "qty", "price", "ts"}))
}

func TestBuildInsertSchema(t *testing.T) {
	dbSchema := common.NewSchema()
	dbSchema.Add("side", common.ColDef{GoType: reflect.String, OrderIndex: 0})
	dbSchema.Add("qty", common.ColDef{GoType: reflect.Int64, OrderIndex: 1})
	dbSchema.Add("price", common.ColDef{GoType: reflect.Int32, OrderIndex: 2})

	insertSchema, err := BuildInsertSchema(dbSchema)
	assert.Nil(t, err)
	assert.Equal(t, []string{"side", "qty", "price"}, insertSchema.OrderedDbColumns)

	// Column types of the existing table drive the value mapping.
	args, err := common.PrepareInsertArguments(insertSchema, []string{"buy", "42", "107"})
	assert.Nil(t, err)
	assert.Equal(t, []interface{}{"buy", int64(42), int64(107)}, args)
}

func TestBuildInsertSchemaMissingColumn(t *testing.T) {
	dbSchema := common.NewSchema()
	dbSchema.Add("side", common.ColDef{GoType: reflect.String, OrderIndex: 0})
	dbSchema.Add("price", common.ColDef{GoType: reflect.Int32, OrderIndex: 1})

	_, err := BuildInsertSchema(dbSchema)
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "qty")
}
