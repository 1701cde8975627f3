package config

// Config holds the application configuration.
type Config struct {
	Logger   Logger   `yaml:"logger"`
	Server   Server   `yaml:"server"`
	Database Database `yaml:"database"`
	Paging   Paging   `yaml:"paging"`
}

// Database holds the configuration for the database.
// MediaTypes is the seed vocabulary; names already present are never
// duplicated.
type Database struct {
	Path       string   `yaml:"path" validate:"required"`
	MediaTypes []string `yaml:"media_types"`
}

// Server hold the configuration for the Fiber server Config
type Server struct {
	PrintRoutes bool   `yaml:"show_routes"`
	Port        uint32 `yaml:"port"`
}

// Logger holds the configuration for the app logging
type Logger struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
}

// Paging holds the page size policy for list endpoints. A request without a
// take gets DefaultPageSize rows; MaxPageSize caps oversized requests, 0
// means uncapped.
type Paging struct {
	DefaultPageSize int `yaml:"default_page_size" validate:"gte=1"`
	MaxPageSize     int `yaml:"max_page_size" validate:"gte=0"`
}
