// Package config provides type-safe environment variable loading with
// per-type caching. Each configuration struct type is parsed once and
// cached for subsequent calls; a .env file is loaded automatically on
// first use when present.
//
//	type ServerConfig struct {
//		Addr            string        `env:"SERVER_ADDR" envDefault:":8080"`
//		ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
// MustLoad panics instead of returning the error, which reads better
// at the top of main.
package config
