package inserter

import (
	"database/sql"

	"github.com/mental32/exchange-orderbook/common"
	"github.com/sirupsen/logrus"
)

type basicInserter struct {
	stmt         *sql.Stmt
	insertSchema common.InsertSchema
}

func (this *basicInserter) Add(args ...string) error {
	objArgs, err := common.PrepareInsertArguments(this.insertSchema, args)
	if err != nil {
		return err
	}
	_, err = this.stmt.Exec(objArgs...)
	return err
}

func (this *basicInserter) Close() error {
	return this.stmt.Close()
}

func CreateBasicInserter(db common.CanPrepareStatement, dbTool common.DbTool, tableName common.TableName, insertSchema common.InsertSchema) (common.Inserter, error) {
	query, err := dbTool.InsertQuery(tableName, insertSchema)
	if err != nil {
		return nil, err
	}
	logrus.Debug("Insert query is ", query)

	stmt, err := db.Prepare(query)
	if err != nil {
		return nil, err
	}

	return &basicInserter{
		stmt:         stmt,
		insertSchema: insertSchema,
	}, nil
}
