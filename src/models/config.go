package models

// MConfig Structure
type MConfig struct {
	Name      string           `yaml:"name"`
	Host      string           `yaml:"host"`
	Port      int              `yaml:"port"`
	LogLevel  string           `yaml:"log_level"`
	GrpcHost  string           `yaml:"grpc_host"`
	GrpcPort  int              `yaml:"grpc_port"`
	Storage   MStorageConfig   `yaml:"storage"`
	Network   MNetworkConfig   `yaml:"network"`
	Source    MSourceConfig    `yaml:"data_source"`
	Streaming MStreamingConfig `yaml:"streaming"`
	Cache     MCacheConfig     `yaml:"cache"`
	Publisher MPublisherConfig `yaml:"publisher"`
}

type MStorageConfig struct {
	Enabled            bool   `yaml:"enabled"`
	DBType             string `yaml:"db_type"`
	DBPath             string `yaml:"db_path"`
	DBConnectionString string `yaml:"db_connection_string"`
	DataRetentionDays  int    `yaml:"data_retention_days"`
}

type MNetworkConfig struct {
	RequestTimeout int    `yaml:"timeout"`
	MaxRetries     int    `yaml:"retries"`
	UserAgent      string `yaml:"user_agent"`
}

type MSourceConfig struct {
	Name         string `yaml:"name"`
	Endpoint     string `yaml:"endpoint"`
	APIKey       string `yaml:"api_key"` // Optional
	ResampleBars int    `yaml:"resample_bars"`
}

type MStreamingConfig struct {
	DefaultRefreshSeconds int `yaml:"default_refresh_seconds"`
	FailureBackoffSeconds int `yaml:"failure_backoff_seconds"`
}

type MCacheConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Addr       string `yaml:"addr"`
	Password   string `yaml:"password"`
	DB         int    `yaml:"db"`
	TTLSeconds int    `yaml:"ttl_seconds"`
}

type MPublisherConfig struct {
	Enabled       bool   `yaml:"enabled"`
	URL           string `yaml:"url"`
	ClientID      string `yaml:"client_id"`
	SubjectPrefix string `yaml:"subject_prefix"`
}
