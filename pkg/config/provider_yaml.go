package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

// YAMLProvider implements ConfigProvider for YAML configuration files
type YAMLProvider struct {
	filename string
	config   *ConfigData
}

// NewYAMLProvider creates a new YAML configuration provider
func NewYAMLProvider(filename string) *YAMLProvider {
	return &YAMLProvider{
		filename: filename,
	}
}

// LoadConfig loads the complete configuration from YAML file
func (y *YAMLProvider) LoadConfig() (*ConfigData, error) {
	cfgFile, err := os.ReadFile(y.filename)
	if err != nil {
		return nil, err
	}

	// Load into temporary struct with YAML tags
	var yamlConfig struct {
		Input struct {
			Path   string `yaml:"path,omitempty"`
			Strict bool   `yaml:"strict,omitempty"`
		} `yaml:"input,omitempty"`
		Stats struct {
			Mode string `yaml:"mode,omitempty"`
		} `yaml:"stats,omitempty"`
		Output struct {
			Format string `yaml:"format,omitempty"`
		} `yaml:"output,omitempty"`
		REST struct {
			ListenAddr string `yaml:"listen-addr,omitempty"`
			Port       int    `yaml:"port,omitempty"`
			Cert       string `yaml:"cert,omitempty"`
			Key        string `yaml:"key,omitempty"`
		} `yaml:"rest,omitempty"`
	}

	err = yaml.UnmarshalStrict(cfgFile, &yamlConfig)
	if err != nil {
		return nil, err
	}

	// Convert to our internal format
	config := &ConfigData{
		Input: InputData{
			Path:   yamlConfig.Input.Path,
			Strict: yamlConfig.Input.Strict,
		},
		Stats: StatsData{
			Mode: yamlConfig.Stats.Mode,
		},
		Output: OutputData{
			Format: yamlConfig.Output.Format,
		},
		REST: RESTServerData{
			ListenAddr: yamlConfig.REST.ListenAddr,
			Port:       yamlConfig.REST.Port,
			Cert:       yamlConfig.REST.Cert,
			Key:        yamlConfig.REST.Key,
		},
	}
	config.ApplyDefaults()

	y.config = config
	return config, nil
}

func (y *YAMLProvider) loaded() (*ConfigData, error) {
	if y.config == nil {
		if _, err := y.LoadConfig(); err != nil {
			return nil, err
		}
	}
	return y.config, nil
}

// GetInputConfig returns the input section
func (y *YAMLProvider) GetInputConfig() (*InputData, error) {
	cfg, err := y.loaded()
	if err != nil {
		return nil, err
	}
	return &cfg.Input, nil
}

// GetStatsConfig returns the statistics section
func (y *YAMLProvider) GetStatsConfig() (*StatsData, error) {
	cfg, err := y.loaded()
	if err != nil {
		return nil, err
	}
	return &cfg.Stats, nil
}

// GetRESTServerConfig returns the REST server section
func (y *YAMLProvider) GetRESTServerConfig() (*RESTServerData, error) {
	cfg, err := y.loaded()
	if err != nil {
		return nil, err
	}
	return &cfg.REST, nil
}

// Close is a no-op for YAML provider
func (y *YAMLProvider) Close() error {
	return nil
}
