package configs

// Config holds all configuration for the application.
type Config struct {
	Server        ServerConfig        `mapstructure:"server" validate:"required"`
	Log           LogConfig           `mapstructure:"log" validate:"required"`
	Database      DatabaseConfig      `mapstructure:"database" validate:"required"`
	Queue         QueueConfig         `mapstructure:"queue" validate:"required"`
	Worker        WorkerConfig        `mapstructure:"worker" validate:"required"`
	Ingestion     IngestionConfig     `mapstructure:"ingestion" validate:"required"`
	BusinessClock BusinessClockConfig `mapstructure:"business_clock" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// DatabaseConfig holds the event store connection settings.
type DatabaseConfig struct {
	Driver           string `mapstructure:"driver" validate:"required,oneof=sqlite3 postgres"`
	DSN              string `mapstructure:"dsn" validate:"required"`
	OperationTimeout int    `mapstructure:"operation_timeout" validate:"required,min=1"` // seconds per store call
	MaxOpenConns     int    `mapstructure:"max_open_conns" validate:"min=0"`
}

// QueueConfig holds ingestion queue settings.
type QueueConfig struct {
	Capacity         int `mapstructure:"capacity" validate:"required,min=1"`
	DequeueTimeoutMs int `mapstructure:"dequeue_timeout_ms" validate:"required,min=1"`
}

// WorkerConfig holds aggregation worker retry settings.
type WorkerConfig struct {
	MaxAttempts    int `mapstructure:"max_attempts" validate:"required,min=1,max=10"`
	RetryBackoffMs int `mapstructure:"retry_backoff_ms" validate:"min=0"`
}

// IngestionConfig selects how accepted webhooks reach the store.
type IngestionConfig struct {
	Mode string `mapstructure:"mode" validate:"required,oneof=async sync"`
}

// BusinessClockConfig defines the processing-date rule.
type BusinessClockConfig struct {
	Timezone string `mapstructure:"timezone" validate:"required,timezone"`
	Cutoff   string `mapstructure:"cutoff" validate:"required,clocktime"`
}
