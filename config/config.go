package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// App holds everything read from the environment. A .env file in the working
// directory is picked up when present, so local runs need no exported vars.
type App struct {
	DatabasePath string `envconfig:"DATABASE_PATH" default:"./tajhotel.db"`
	LogPath      string `envconfig:"LOG_PATH" default:"./hotel_system.log"`

	HTTPAddr  string `envconfig:"HTTP_ADDR" default:":3000"`
	JWTSecret string `envconfig:"JWT_SECRET" default:"secret"`

	SMTPHost     string `envconfig:"SMTP_HOST" default:"smtp.gmail.com"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPSender   string `envconfig:"SMTP_SENDER"`
	SMTPPassword string `envconfig:"SMTP_PASSWORD"`
}

func Load() (App, error) {
	_ = godotenv.Load()

	var c App
	if err := envconfig.Process("", &c); err != nil {
		return App{}, err
	}
	return c, nil
}
