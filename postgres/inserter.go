package postgres

import (
	"database/sql"

	"github.com/lib/pq"
	"github.com/mental32/exchange-orderbook/common"
	"github.com/sirupsen/logrus"
)

type copyInserter struct {
	stmt         *sql.Stmt
	tx           *sql.Tx
	insertSchema common.InsertSchema
}

// CreateCopyInserter streams rows with COPY FROM STDIN, which is the
// fastest bulk path lib/pq offers.
func CreateCopyInserter(db *sql.DB, dbTool common.DbTool, tableName common.TableName, insertSchema common.InsertSchema) (common.Inserter, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}

	query := pq.CopyInSchema(tableName.SchemaPlain, tableName.TablePlain, insertSchema.OrderedDbColumns...)
	logrus.Debug("Query is " + query)
	stmt, err := tx.Prepare(query)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	return &copyInserter{
		stmt:         stmt,
		tx:           tx,
		insertSchema: insertSchema,
	}, nil
}

func (this *copyInserter) Add(args ...string) error {
	objArgs, err := common.PrepareInsertArguments(this.insertSchema, args)
	if err != nil {
		return err
	}
	_, err = this.stmt.Exec(objArgs...)
	return err
}

func (this *copyInserter) Close() error {
	// Final Exec with no arguments flushes the COPY buffer.
	if _, err := this.stmt.Exec(); err != nil {
		logrus.Error("Can not finish COPY: ", err)
		this.tx.Rollback()
		return err
	}
	if err := this.stmt.Close(); err != nil {
		this.tx.Rollback()
		return err
	}
	return this.tx.Commit()
}
