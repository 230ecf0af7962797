package common

import (
	"reflect"
	"sort"
)

type Schema struct {
	Types map[string]ColDef
}

type ColDef struct {
	GoType     reflect.Kind
	Nullable   bool
	OrderIndex int
}

func NewSchema() Schema {
	return Schema{Types: make(map[string]ColDef)}
}

func (this *Schema) Add(name string, colDef ColDef) {
	this.Types[name] = colDef
}

// OrderedColumns returns column names sorted by OrderIndex.
func (this Schema) OrderedColumns() []string {
	names := make([]string, 0, len(this.Types))
	for name := range this.Types {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return this.Types[names[i]].OrderIndex < this.Types[names[j]].OrderIndex
	})
	return names
}

func (this Schema) ToInsertSchema() InsertSchema {
	insertSchema := NewInsertSchema()
	for _, name := range this.OrderedColumns() {
		insertSchema.Add(name, this.Types[name])
	}
	return insertSchema
}

func (this Schema) ToAsciiTable() string {
	return schemaToAsciiTable(this.Types)
}
