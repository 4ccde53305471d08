package infrastructure

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/mfdez/evermore/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func Connect(path string) *gorm.DB {
	if _, err := os.Stat(path); os.IsNotExist(err) && !strings.Contains(path, ":memory:") {
		if _, err = os.Create(path); err != nil {
			log.Fatal().Err(err).Msg("couldn't create database file")
		}
		log.Info().Str("path", path).Msg("created database")
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", path)), &gorm.Config{
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("couldn't open database")
	}

	if err := db.AutoMigrate(&model.Guest{}, &model.Event{}, &model.EventInvite{}); err != nil {
		log.Fatal().Err(err).Msg("couldn't migrate database")
	}
	return db
}
