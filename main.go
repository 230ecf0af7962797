package main

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"
)

const DB_URL_FLAG = "url"
const TABLE_FLAG = "table, t"
const TABLE_MODE_FLAG = "table-mode, m"
const INPUT_FILE_FLAG = "input-file, i"
const DELIMITER_FLAG = "delimiter, d"
const ENCODING_FLAG = "encoding, e"
const INSERTER_FLAG = "inserter, I"
const STORE_PRESET_FLAG = "store-preset, s"
const PRESET_FLAG = "preset, p"
const LOG_LEVEL_FLAG = "log-level, l"

var version string = "development"

func main() {
	app := cli.NewApp()
	app.Name = "mkdata"
	app.Usage = "Generate, check and load order book fixture CSVs"
	app.ArgsUsage = "AMOUNT"
	app.Version = version
	app.Action = generateAction
	app.Commands = []cli.Command{
		checkCommand(),
		loadCommand(),
	}

	logLevels := make([]string, len(log.AllLevels))
	for i, ll := range log.AllLevels {
		logLevels[i] = ll.String()
	}

	app.Flags = []cli.Flag{
		cli.StringFlag{Name: LOG_LEVEL_FLAG, Usage: "Log level. Available are: " + strings.Join(logLevels, ", "), Value: log.InfoLevel.String()},
	}
	app.Before = initLogLevel

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func initLogLevel(c *cli.Context) error {
	logLevelStr := c.GlobalString(flagName(LOG_LEVEL_FLAG))
	logLevel, err := log.ParseLevel(logLevelStr)

	if err != nil {
		log.SetLevel(log.InfoLevel)
		log.Errorf("Can not set log level %s: %v", logLevelStr, err)
	} else {
		log.SetLevel(logLevel)
	}
	return nil
}

func flagName(flagName string) string {
	s := strings.Split(flagName, ",")
	return strings.TrimSpace(s[0])
}
