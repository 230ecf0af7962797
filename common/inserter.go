package common

import (
	"database/sql"
	"io"

	"github.com/pkg/errors"
)

type Inserter interface {
	io.Closer
	Add(...string) error
}

type CanPrepareStatement interface {
	Prepare(query string) (*sql.Stmt, error)
}

// PrepareInsertArguments converts one CSV record to driver arguments
// in insert schema column order.
func PrepareInsertArguments(insertSchema InsertSchema, line []string) ([]interface{}, error) {
	result := make([]interface{}, 0, insertSchema.Len())
	for _, name := range insertSchema.OrderedDbColumns {
		typeDef, found := insertSchema.Get(name)
		if !found {
			return nil, errors.Errorf("Can not find column %s in insert schema", name)
		}
		if typeDef.OrderIndex >= len(line) {
			return nil, errors.Errorf("Record has no field %d for column %s", typeDef.OrderIndex, name)
		}
		valStr := line[typeDef.OrderIndex]
		value, err := typeDef.ValMapper(valStr)
		if err != nil {
			return nil, errors.Wrapf(err, "Can not convert value %s at column %d to %v (nullable=%v)",
				valStr, typeDef.OrderIndex, typeDef.GoType, typeDef.Nullable)
		}
		result = append(result, value)
	}
	return result, nil
}
