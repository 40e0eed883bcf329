package config

// ConfigProvider defines the interface for configuration data sources
type ConfigProvider interface {
	// Load complete configuration
	LoadConfig() (*ConfigData, error)

	// Get specific configuration sections
	GetInputConfig() (*InputData, error)
	GetStatsConfig() (*StatsData, error)
	GetRESTServerConfig() (*RESTServerData, error)

	Close() error
}

// Defaults applied to any value left unset
const (
	DefaultInputPath  = "registro.txt"
	DefaultModeName   = "per-level"
	DefaultFormat     = "text"
	DefaultListenAddr = "0.0.0.0"
	DefaultHTTPPort   = 8080
)

// ConfigData represents the complete configuration structure
type ConfigData struct {
	Input  InputData      `json:"input"`
	Stats  StatsData      `json:"stats"`
	Output OutputData     `json:"output"`
	REST   RESTServerData `json:"rest"`
}

// InputData describes where the readings come from and how bad lines are handled
type InputData struct {
	Path   string `json:"path"`
	Strict bool   `json:"strict"`
}

// StatsData holds statistics options
type StatsData struct {
	// Mode is the tie handling strategy for the mode: "per-level" or "legacy"
	Mode string `json:"mode"`
}

// OutputData holds the report encoding for one-shot runs
type OutputData struct {
	Format string `json:"format"`
}

// RESTServerData holds the configuration for the HTTP report server
type RESTServerData struct {
	ListenAddr string `json:"listen_addr,omitempty"`
	Port       int    `json:"port,omitempty"`
	Cert       string `json:"cert,omitempty"`
	Key        string `json:"key,omitempty"`
}

// ApplyDefaults fills in any unset values
func (c *ConfigData) ApplyDefaults() {
	if c.Input.Path == "" {
		c.Input.Path = DefaultInputPath
	}
	if c.Stats.Mode == "" {
		c.Stats.Mode = DefaultModeName
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}
	if c.REST.ListenAddr == "" {
		c.REST.ListenAddr = DefaultListenAddr
	}
	if c.REST.Port == 0 {
		c.REST.Port = DefaultHTTPPort
	}
}

// StaticProvider serves a fixed configuration, used when no config file is given
type StaticProvider struct {
	config *ConfigData
}

// NewStaticProvider creates a provider returning cfg with defaults applied
func NewStaticProvider(cfg ConfigData) *StaticProvider {
	cfg.ApplyDefaults()
	return &StaticProvider{config: &cfg}
}

// LoadConfig returns the static configuration
func (s *StaticProvider) LoadConfig() (*ConfigData, error) {
	return s.config, nil
}

// GetInputConfig returns the input section
func (s *StaticProvider) GetInputConfig() (*InputData, error) {
	return &s.config.Input, nil
}

// GetStatsConfig returns the statistics section
func (s *StaticProvider) GetStatsConfig() (*StatsData, error) {
	return &s.config.Stats, nil
}

// GetRESTServerConfig returns the REST server section
func (s *StaticProvider) GetRESTServerConfig() (*RESTServerData, error) {
	return &s.config.REST, nil
}

// Close is a no-op for the static provider
func (s *StaticProvider) Close() error {
	return nil
}
