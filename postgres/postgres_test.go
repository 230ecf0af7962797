package postgres

import (
	"testing"

	"github.com/mental32/exchange-orderbook/common"
	"github.com/stretchr/testify/assert"
)

func TestTableName(t *testing.T) {
	tool := MakeDbTool(nil)
	tableName := tool.TableName("", "orders")
	assert.Equal(t, `"public"."orders"`, tableName.String())
	assert.Equal(t, "public", tableName.SchemaPlain)
	assert.Equal(t, "orders", tableName.TablePlain)
}

func TestInsertQuery(t *testing.T) {
	tool := MakeDbTool(nil)
	tableName := tool.TableName("fixtures", "orders")
	insertSchema := common.FixtureSchema().ToInsertSchema()

	query, err := tool.InsertQuery(tableName, insertSchema)
	assert.Nil(t, err)
	assert.Equal(t, `INSERT INTO "fixtures"."orders"("side","qty","price") VALUES ($1,$2,$3)`, query)
}

func TestInsertQueryMultiple(t *testing.T) {
	tool := MakeDbTool(nil)
	tableName := tool.TableName("fixtures", "orders")
	insertSchema := common.FixtureSchema().ToInsertSchema()

	query, err := tool.InsertQueryMultiple(tableName, insertSchema, 2)
	assert.Nil(t, err)
	assert.Equal(t, `INSERT INTO "fixtures"."orders"("side","qty","price") VALUES ($1,$2,$3),($4,$5,$6)`, query)
}

func TestInsertQueryNoColumns(t *testing.T) {
	tool := MakeDbTool(nil)
	_, err := tool.InsertQuery(tool.TableName("", "orders"), common.NewInsertSchema())
	assert.NotNil(t, err)
}
