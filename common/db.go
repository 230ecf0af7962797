package common

import (
	"bytes"
	"database/sql"
	"fmt"
	"reflect"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type DbTool interface {
	TableName(schema, table string) TableName
	Exists(tableName TableName) (bool, error)
	LoadSchema(tableName TableName) (Schema, error)
	CreateTable(tableName TableName, tabSchema Schema) error
	DeleteFromTable(tableName TableName) error
	TruncateTable(tableName TableName) error
	DropTable(tableName TableName) error
	InsertQuery(tableName TableName, insertSchema InsertSchema) (string, error)
	InsertQueryMultiple(tableName TableName, insertSchema InsertSchema, rows int) (string, error)
	CreateInserter(tableName TableName, insertSchema InsertSchema) (Inserter, error)
}

// CommonDbTool holds the dialect-independent parts of a DbTool.
// Driver packages embed it and register their type mappings.
type CommonDbTool struct {
	Db                *sql.DB
	DbToGoTypeMapping map[string]reflect.Kind
	GoTypeToDbMapping map[reflect.Kind]string
	DefaultSchema     string
	EscapeF           func(string) string
}

func (this CommonDbTool) RegisterType(goType reflect.Kind, dbPrimaryType string, dbTypes ...string) {
	this.DbToGoTypeMapping[dbPrimaryType] = goType
	for _, dbType := range dbTypes {
		this.DbToGoTypeMapping[dbType] = goType
	}
	this.GoTypeToDbMapping[goType] = dbPrimaryType
}

func (this CommonDbTool) Escape(s string) string {
	if this.EscapeF == nil {
		return s
	}
	return this.EscapeF(s)
}

func (this CommonDbTool) TableName(schema, table string) TableName {
	schemaPlain := this.NvlSchema(schema)
	return TableName{
		Schema:      this.Escape(schemaPlain),
		Table:       this.Escape(table),
		SchemaPlain: schemaPlain,
		TablePlain:  table,
	}
}

func (this CommonDbTool) CreateTable(tableName TableName, tabSchema Schema) error {
	if len(tabSchema.Types) == 0 {
		return errors.New("Can not create table without any column")
	}
	sb := bytes.NewBufferString("CREATE TABLE ")
	sb.WriteString(tableName.String())
	sb.WriteString("(")

	first := true
	for _, name := range tabSchema.OrderedColumns() {
		if first {
			first = false
		} else {
			sb.WriteString(", ")
		}
		colDef := tabSchema.Types[name]
		sqlType, registered := this.GoTypeToDbMapping[colDef.GoType]
		if !registered {
			return fmt.Errorf("No registered SQL type for go type %v", colDef.GoType)
		}
		sb.WriteString(this.Escape(name))
		sb.WriteString(" ")
		sb.WriteString(sqlType)
		if !colDef.Nullable {
			sb.WriteString(" NOT NULL")
		}
	}
	sb.WriteString(")")

	logrus.Debug(sb.String())

	_, err := this.Db.Exec(sb.String())
	return err
}

func (this CommonDbTool) DropTable(tableName TableName) error {
	_, err := this.Db.Exec(fmt.Sprintf("DROP TABLE %s", tableName.String()))
	return err
}

func (this CommonDbTool) TruncateTable(tableName TableName) error {
	_, err := this.Db.Exec(fmt.Sprintf("TRUNCATE TABLE %s", tableName.String()))
	return err
}

func (this CommonDbTool) DeleteFromTable(tableName TableName) error {
	_, err := this.Db.Exec(fmt.Sprintf("DELETE FROM %s", tableName.String()))
	return err
}

func (this CommonDbTool) NvlSchema(schema string) string {
	if schema == "" {
		return this.DefaultSchema
	}
	return schema
}
