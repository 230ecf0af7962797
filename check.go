package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mental32/exchange-orderbook/common"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"
)

func checkCommand() cli.Command {
	return cli.Command{
		Name:  "check",
		Usage: "Validate a fixture CSV and print a summary",
		Flags: []cli.Flag{
			cli.StringFlag{Name: INPUT_FILE_FLAG, Usage: "Input CSV file. Use -- to read from stdin", Value: STDIN_FILE_NAME},
			cli.StringFlag{Name: DELIMITER_FLAG, Usage: "CSV cell delimiter", Value: ","},
			cli.StringFlag{Name: ENCODING_FLAG, Usage: "Input file encoding", Value: "UTF-8"},
		},
		Action: checkAction,
	}
}

func checkAction(c *cli.Context) error {
	csvReader, closer, _, _, err := createReader(
		c.String(flagName(INPUT_FILE_FLAG)),
		c.String(flagName(ENCODING_FLAG)),
		c.String(flagName(DELIMITER_FLAG)))
	if err != nil {
		return err
	}
	defer closer.Close()

	summary, err := Summarize(csvReader)
	if err != nil {
		return err
	}
	summary.Print(os.Stdout)

	if summary.Invalid > 0 {
		return cli.NewExitError(
			fmt.Sprintf("%d invalid rows (first at line %d)", summary.Invalid, summary.FirstInvalidLine), 1)
	}
	return nil
}

type Summary struct {
	Rows             int
	Buys             int
	Sells            int
	MinQty           int
	MaxQty           int
	MinPrice         int
	MaxPrice         int
	Invalid          int
	FirstInvalidLine int
}

// Summarize checks the header and every row of a fixture CSV against
// the row model and accumulates counters. Invalid rows are counted,
// not fatal; a malformed header is.
func Summarize(csvReader *csv.Reader) (Summary, error) {
	// Ragged rows should be counted as invalid, not abort the scan.
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err == io.EOF {
		return Summary{}, errors.New("empty input: missing header")
	} else if err != nil {
		return Summary{}, errors.Wrap(err, "can not read CSV")
	}
	if err := VerifyHeader(header); err != nil {
		return Summary{}, err
	}

	summary := Summary{}
	line := 1
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return Summary{}, errors.Wrap(err, "can not read CSV")
		}
		line += 1

		row, err := common.ParseRecord(record)
		if err != nil {
			log.Warnf("Invalid row at line %d: %v", line, err)
			summary.Invalid += 1
			if summary.FirstInvalidLine == 0 {
				summary.FirstInvalidLine = line
			}
			continue
		}
		summary.add(row)
	}
	return summary, nil
}

func (this *Summary) add(row common.Row) {
	if this.Rows == 0 {
		this.MinQty, this.MaxQty = row.Qty, row.Qty
		this.MinPrice, this.MaxPrice = row.Price, row.Price
	} else {
		this.MinQty = min(this.MinQty, row.Qty)
		this.MaxQty = max(this.MaxQty, row.Qty)
		this.MinPrice = min(this.MinPrice, row.Price)
		this.MaxPrice = max(this.MaxPrice, row.Price)
	}
	this.Rows += 1
	if row.Side == common.SIDE_BUY {
		this.Buys += 1
	} else {
		this.Sells += 1
	}
}

func (this Summary) Print(out io.Writer) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"rows", strconv.Itoa(this.Rows)})
	table.Append([]string{"buys", strconv.Itoa(this.Buys)})
	table.Append([]string{"sells", strconv.Itoa(this.Sells)})
	table.Append([]string{"qty min", strconv.Itoa(this.MinQty)})
	table.Append([]string{"qty max", strconv.Itoa(this.MaxQty)})
	table.Append([]string{"price min", strconv.Itoa(this.MinPrice)})
	table.Append([]string{"price max", strconv.Itoa(this.MaxPrice)})
	table.Append([]string{"invalid", strconv.Itoa(this.Invalid)})
	table.Render()
}
