package app

import (
	"database/sql"

	"github.com/go-chi/oauth"

	"github.com/bmeers/student-intake/config"
	"github.com/bmeers/student-intake/database"
)

type App struct {
	*sql.DB
	*oauth.BearerServer
	config.Config
	Store *database.Store
}
