package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/ds124wfegd/digit-canvas/config"
	"github.com/ds124wfegd/digit-canvas/internal/appServer"
)

func main() {
	// Local overrides for the three storage values; absent file is fine.
	_ = godotenv.Load()

	v, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("error loading config: %s", err.Error())
	}

	cfg, err := config.ParseConfig(v)
	if err != nil {
		logrus.Fatalf("error parsing config: %s", err.Error())
	}

	cfg.Storage.Endpoint = config.GetEnv("STORAGE_ENDPOINT", cfg.Storage.Endpoint)
	cfg.Storage.AccessKey = config.GetEnv("STORAGE_ACCESS_KEY", cfg.Storage.AccessKey)
	cfg.Storage.SecretKey = config.GetEnv("STORAGE_SECRET_KEY", cfg.Storage.SecretKey)
	cfg.Storage.Bucket = config.GetEnv("STORAGE_BUCKET", cfg.Storage.Bucket)

	appServer.NewServer(cfg)
}
