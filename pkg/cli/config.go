package cli

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/flowlint/flowlint/pkg/constants"
	"github.com/flowlint/flowlint/pkg/logger"
)

var configLog = logger.New("cli:config")

// FileConfig holds the settings read from .flowlint.yml in the working
// directory. Command-line flags override anything set here.
type FileConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"`
	Strict bool   `yaml:"strict"`
	Jobs   int    `yaml:"jobs"`
}

// loadFileConfig reads the config file if one exists. A missing file is
// not an error; it just yields an empty config.
func loadFileConfig() (*FileConfig, error) {
	data, err := os.ReadFile(constants.ConfigFileName)
	if os.IsNotExist(err) {
		return &FileConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read '%s': %w", constants.ConfigFileName, err)
	}

	var config FileConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse '%s': %w", constants.ConfigFileName, err)
	}
	configLog.Printf("Loaded %s: dir=%q format=%q strict=%t jobs=%d",
		constants.ConfigFileName, config.Dir, config.Format, config.Strict, config.Jobs)
	return &config, nil
}
