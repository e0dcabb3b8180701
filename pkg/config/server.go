package config

// ServerConfig configures the HTTP listener and ambient middleware.
type ServerConfig struct {
	Port        string
	CORSOrigins string
	LogLevel    string
	LogFormat   string
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
	}
}
