package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"bikeshare/domain/entities/selection"
	"bikeshare/loader"
	"bikeshare/reporters"
	"bikeshare/utils"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFilepath = "./explorer/config/config.yaml"
	dataDirEnv            = "DATA_DIR"
	defaultLogLevel       = "warn"
)

var (
	ErrMissingCityFile = errors.New("missing file for city")
	ErrUnknownCity     = errors.New("file configured for unknown city")
)

// ExplorerConfig configuration of the bike share explorer
// + LogLevel: logrus level, LOG_LEVEL env var takes precedence
// + Loader: where the city files are, DATA_DIR env var overrides its data dir
// + Pager: how the raw trips are shown
type ExplorerConfig struct {
	LogLevel string                `yaml:"log_level"`
	Loader   loader.Config         `yaml:"loader"`
	Pager    reporters.PagerConfig `yaml:"pager"`
}

func LoadConfig(configFilepath string) (*ExplorerConfig, error) {
	configFile, err := utils.GetConfigFile(configFilepath)
	if err != nil {
		return nil, err
	}

	explorerConfig := ExplorerConfig{
		LogLevel: defaultLogLevel,
		Pager:    reporters.DefaultPagerConfig(),
	}
	err = yaml.Unmarshal(configFile, &explorerConfig)
	if err != nil {
		return nil, fmt.Errorf("error parsing explorer config file: %w", err)
	}

	if dataDir := os.Getenv(dataDirEnv); dataDir != "" {
		explorerConfig.Loader.DataDir = dataDir
	}

	if len(explorerConfig.Loader.TimestampLayouts) == 0 {
		explorerConfig.Loader.TimestampLayouts = loader.DefaultTimestampLayouts()
	}

	if err := explorerConfig.Validate(); err != nil {
		return nil, err
	}

	return &explorerConfig, nil
}

// Validate checks that every supported city, and only those, has a file
func (ec *ExplorerConfig) Validate() error {
	cities := selection.Cities()
	var missing []string
	for _, city := range cities {
		if ec.Loader.CityFiles[city] == "" {
			missing = append(missing, city)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCityFile, strings.Join(missing, ", "))
	}

	for city := range ec.Loader.CityFiles {
		if !utils.ContainsString(city, cities) {
			return fmt.Errorf("%w: %s", ErrUnknownCity, city)
		}
	}

	return nil
}
