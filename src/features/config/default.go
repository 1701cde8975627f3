package config

var defaultConfig = Config{
	Logger: Logger{
		Enabled: true,
		Level:   "info",
		Format:  "text",
	},
	Server: Server{
		PrintRoutes: false,
		Port:        3535,
	},
	Database: Database{
		Path:       "./catalog.db",
		MediaTypes: []string{"MPEG audio file", "AAC audio file", "Protected AAC audio file", "Purchased AAC audio file", "Video file"},
	},
	Paging: Paging{
		DefaultPageSize: 15,
		MaxPageSize:     100,
	},
}
