package inserter

import (
	"database/sql"

	"github.com/mental32/exchange-orderbook/common"
	"github.com/sirupsen/logrus"
)

type txInserter struct {
	basicInserter
	tx *sql.Tx
}

// InitTxInserter wraps an already prepared statement so that Close
// commits the surrounding transaction (or rolls it back on failure).
func InitTxInserter(stmt *sql.Stmt, insertSchema common.InsertSchema, tx *sql.Tx) (common.Inserter, error) {
	return &txInserter{
		basicInserter: basicInserter{stmt: stmt, insertSchema: insertSchema},
		tx:            tx,
	}, nil
}

func CreateTxInserter(db *sql.DB, dbTool common.DbTool, tableName common.TableName, insertSchema common.InsertSchema) (common.Inserter, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}

	query, err := dbTool.InsertQuery(tableName, insertSchema)
	if err != nil {
		return nil, err
	}
	logrus.Debug("Insert query is ", query)

	stmt, err := tx.Prepare(query)
	if err != nil {
		return nil, err
	}

	return InitTxInserter(stmt, insertSchema, tx)
}

func (this *txInserter) Close() error {
	err := this.basicInserter.Close()
	if err != nil {
		logrus.Error("Can not close statement: ", err)
		return this.tx.Rollback()
	}
	return this.tx.Commit()
}
