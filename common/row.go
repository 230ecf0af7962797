package common

import (
	"math/rand"
	"reflect"
	"strconv"

	"github.com/pkg/errors"
)

type Side string

const SIDE_BUY = Side("buy")
const SIDE_SELL = Side("sell")

// Fixture value bounds. Upper bounds are exclusive.
const MIN_QTY = 1
const MAX_QTY = 100
const MIN_PRICE = 100
const MAX_PRICE = 150

// Row is one order book fixture record: side, quantity and price.
type Row struct {
	Side  Side
	Qty   int
	Price int
}

func Header() []string {
	return []string{"side", "qty", "price"}
}

func RandomSide(rnd *rand.Rand) Side {
	if rnd.Intn(2) == 0 {
		return SIDE_BUY
	}
	return SIDE_SELL
}

// RandomRow picks side, qty and price uniformly over the fixture bounds.
func RandomRow(rnd *rand.Rand) Row {
	return Row{
		Side:  RandomSide(rnd),
		Qty:   MIN_QTY + rnd.Intn(MAX_QTY-MIN_QTY),
		Price: MIN_PRICE + rnd.Intn(MAX_PRICE-MIN_PRICE),
	}
}

func (this Row) Record() []string {
	return []string{string(this.Side), strconv.Itoa(this.Qty), strconv.Itoa(this.Price)}
}

// ParseRecord converts a CSV record back to a Row and verifies it
// against the fixture bounds.
func ParseRecord(record []string) (Row, error) {
	if len(record) != len(Header()) {
		return Row{}, errors.Errorf("expected %d fields, got %d", len(Header()), len(record))
	}
	side := Side(record[0])
	if side != SIDE_BUY && side != SIDE_SELL {
		return Row{}, errors.Errorf("unknown side %q", record[0])
	}
	qty, err := strconv.Atoi(record[1])
	if err != nil {
		return Row{}, errors.Wrapf(err, "can not parse qty %q", record[1])
	}
	if qty < MIN_QTY || qty >= MAX_QTY {
		return Row{}, errors.Errorf("qty %d out of range [%d, %d)", qty, MIN_QTY, MAX_QTY)
	}
	price, err := strconv.Atoi(record[2])
	if err != nil {
		return Row{}, errors.Wrapf(err, "can not parse price %q", record[2])
	}
	if price < MIN_PRICE || price >= MAX_PRICE {
		return Row{}, errors.Errorf("price %d out of range [%d, %d)", price, MIN_PRICE, MAX_PRICE)
	}
	return Row{Side: side, Qty: qty, Price: price}, nil
}

// FixtureSchema is the fixed table schema for fixture CSVs. Column
// order follows Header().
func FixtureSchema() Schema {
	schema := NewSchema()
	schema.Add("side", ColDef{GoType: reflect.String, Nullable: false, OrderIndex: 0})
	schema.Add("qty", ColDef{GoType: reflect.Int16, Nullable: false, OrderIndex: 1})
	schema.Add("price", ColDef{GoType: reflect.Int32, Nullable: false, OrderIndex: 2})
	return schema
}
