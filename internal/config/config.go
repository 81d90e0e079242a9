package config

type Config struct {
	Engine     EngineConfig `mapstructure:"engine"`
	Output     OutputConfig `mapstructure:"output"`
	Audit      AuditConfig  `mapstructure:"audit"`
	ConfigPath string       `mapstructure:"-"`
}

type EngineConfig struct {
	// OnError decides what a failing record does to a run: "abort"
	// stops processing at the record, "skip" drops it and continues.
	OnError string `mapstructure:"on_error"`
}

type OutputConfig struct {
	Pretty bool `mapstructure:"pretty"`
}

type AuditConfig struct {
	// Path of the sqlite database runs are recorded to. Empty disables
	// auditing unless --audit-db is passed explicitly.
	Path string `mapstructure:"path"`
}

func NewDefault() *Config {
	return &Config{
		Engine: EngineConfig{OnError: "abort"},
		Output: OutputConfig{Pretty: false},
		Audit:  AuditConfig{Path: ""},
	}
}
