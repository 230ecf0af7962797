package main

import (
	"encoding/csv"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/mental32/exchange-orderbook/common"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"
)

// generateAction is the default action: `mkdata AMOUNT` writes the
// header plus AMOUNT random fixture rows to stdout. It takes exactly
// one positional argument and nothing else.
func generateAction(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.NewExitError("usage: mkdata AMOUNT", 1)
	}
	amount, err := strconv.Atoi(c.Args().First())
	if err != nil {
		return errors.Wrapf(err, "can not parse amount %q", c.Args().First())
	}
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	return Generate(os.Stdout, amount, rnd)
}

func Generate(out io.Writer, amount int, rnd *rand.Rand) error {
	w := csv.NewWriter(out)
	if err := w.Write(common.Header()); err != nil {
		return err
	}
	for i := 0; i < amount; i++ {
		if err := w.Write(common.RandomRow(rnd).Record()); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
