package main

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"gopkg.in/urfave/cli.v1"
)

func LoadConfig(c *cli.Context) Config {
	loadedConfig := loadFromCliArgs(c)
	configStorage := LoadConfigStorage()
	preset := getPreset(c, configStorage)

	loadedConfig.FillMissingFromPreset(preset)

	setPreset(c, configStorage, loadedConfig)

	loadedConfig.Validate()
	return loadedConfig
}

func loadFromCliArgs(c *cli.Context) Config {
	tableParts := strings.Split(c.String(flagName(TABLE_FLAG)), ".")
	schemaName := ""
	if len(tableParts) > 1 {
		schemaName = tableParts[0]
	}
	return Config{
		DbUrl: c.String(flagName(DB_URL_FLAG)),

		Schema:    schemaName,
		Table:     tableParts[len(tableParts)-1],
		TableMode: TableMode(c.String(flagName(TABLE_MODE_FLAG))),

		FileName:  c.String(flagName(INPUT_FILE_FLAG)),
		Delimiter: c.String(flagName(DELIMITER_FLAG)),
		Encoding:  c.String(flagName(ENCODING_FLAG)),

		Inserter: c.String(flagName(INSERTER_FLAG)),
	}
}

func getPreset(c *cli.Context, configStorage ConfigStorage) Config {
	presetName := c.String(flagName(PRESET_FLAG))
	if presetName == "" {
		presetName = DEFAULT_PRESET
	}
	preset, found := configStorage.Presets[presetName]
	if !found {
		if presetName != DEFAULT_PRESET {
			log.Warnf("No preset found by key %s", presetName)
		}
		return Config{}
	}
	return preset
}

func setPreset(c *cli.Context, configStorage ConfigStorage, preset Config) {
	storePreset := c.String(flagName(STORE_PRESET_FLAG))
	if storePreset != "" {
		configStorage.Presets[storePreset] = preset
		configStorage.Save()
	}
}
