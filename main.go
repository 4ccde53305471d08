package main

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/mfdez/evermore/internal/infrastructure"
	"github.com/mfdez/evermore/internal/webserver"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var version string = "unknown"

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatal().Err(err).Msg("error parsing configuration from environment variables")
	}

	if cfg.DbPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatal().Msg("error retrieving user home dir")
		}
		if err = os.MkdirAll(fmt.Sprintf("%s/evermore", homeDir), os.ModePerm); err != nil {
			log.Fatal().Err(err).Msg("couldn't create the application directory")
		}
		cfg.DbPath = fmt.Sprintf("%s/evermore/evermore.db", homeDir)
	}

	run(cfg)
}

func run(cfg Config) {
	db := infrastructure.Connect(cfg.DbPath)

	var sender webserver.Sender = &infrastructure.NoEmail{}
	if cfg.SmtpServer != "" && cfg.SmtpUser != "" && cfg.SmtpPassword != "" {
		sender = &infrastructure.SMTP{
			Server:   cfg.SmtpServer,
			Port:     cfg.SmtpPort,
			User:     cfg.SmtpUser,
			Password: cfg.SmtpPassword,
			SiteName: cfg.SiteName,
		}
	}

	webserverConfig := webserver.Config{
		SiteName:    cfg.SiteName,
		FQDN:        cfg.FQDN,
		JwtSecret:   []byte(cfg.JwtSecret),
		AdminEmails: cfg.AdminEmails,
		NotifyEmail: cfg.NotifyEmail,
	}

	controllers := webserver.SetupControllers(webserverConfig, db, sender)
	app := webserver.New(webserverConfig, controllers)

	log.Info().Str("version", version).Str("port", cfg.Port).Msg("started listening")
	if err := app.Listen(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		log.Fatal().Err(err).Msg("error starting the web server")
	}
}
