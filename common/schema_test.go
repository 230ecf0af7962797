package common

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixtureSchemaColumnOrder(t *testing.T) {
	schema := FixtureSchema()
	assert.Equal(t, Header(), schema.OrderedColumns())
}

func TestFixtureInsertSchemaMapsValues(t *testing.T) {
	insertSchema := FixtureSchema().ToInsertSchema()
	assert.Equal(t, Header(), insertSchema.OrderedDbColumns)

	args, err := PrepareInsertArguments(insertSchema, []string{"buy", "42", "107"})
	assert.Nil(t, err)
	assert.Equal(t, []interface{}{"buy", int64(42), int64(107)}, args)
}

func TestPrepareInsertArgumentsBadValue(t *testing.T) {
	insertSchema := FixtureSchema().ToInsertSchema()
	_, err := PrepareInsertArguments(insertSchema, []string{"buy", "abc", "107"})
	assert.NotNil(t, err)
}

func TestPrepareInsertArgumentsShortRecord(t *testing.T) {
	insertSchema := FixtureSchema().ToInsertSchema()
	_, err := PrepareInsertArguments(insertSchema, []string{"buy"})
	assert.NotNil(t, err)
}

func TestNullableMapper(t *testing.T) {
	mapper := NullableMapper{Source: Int64ValMapper}
	val, err := mapper.Apply("")
	assert.Nil(t, err)
	assert.Nil(t, val)

	val, err = mapper.Apply("7")
	assert.Nil(t, err)
	assert.Equal(t, int64(7), val)
}

func TestSchemaOrderedColumns(t *testing.T) {
	schema := NewSchema()
	schema.Add("b", ColDef{GoType: reflect.String, OrderIndex: 1})
	schema.Add("a", ColDef{GoType: reflect.String, OrderIndex: 0})
	assert.Equal(t, []string{"a", "b"}, schema.OrderedColumns())
}
