package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// HTTP
	Port string `envconfig:"PORT" default:"8080"`
	// DB
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`
	// Session cart storage
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	// Auth
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
	// Product image uploads
	UploadDir string `envconfig:"UPLOAD_DIR" default:"./uploads"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
