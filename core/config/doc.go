// Package config provides configuration management for the inventory sync service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Printify: upstream API credentials (token, shop id, endpoint)
//   - Sync: pass pacing and report settings
//   - Storage: S3/MinIO credentials and report bucket
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Printify.ShopID)
package config
