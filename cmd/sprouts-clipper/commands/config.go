package commands

import (
	"log/slog"

	"github.com/kingb12/sprouts-coupons/lib/configuration"
	"github.com/kingb12/sprouts-coupons/lib/configutil"
	"github.com/kingb12/sprouts-coupons/lib/osutil"
	"github.com/kingb12/sprouts-coupons/lib/scrapers/sprouts"
	"github.com/kingb12/sprouts-coupons/services/clipper"
	"github.com/kingb12/sprouts-coupons/services/clipper/db"
)

type Config struct {
	// session cookies exported from a logged-in browser
	SessionFile  string `json:"session_file"`
	UserInfoFile string `json:"user_info_file"`

	ZoneId     string   `json:"zone_id"`
	PostalCode string   `json:"postal_code"`
	OfferLimit int      `json:"offer_limit"`
	Watchlist  []string `json:"watchlist"`

	Database configuration.Libsql `json:"database"`
	Smtp     clipper.SmtpConfig   `json:"smtp"`
}

func loadConfig() Config {
	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		osutil.Fatal("failed to read config.json5", err)
	}
	if cfg.SessionFile == "" {
		cfg.SessionFile = "session.json"
	}
	if cfg.UserInfoFile == "" {
		cfg.UserInfoFile = "USER_INFO.txt"
	}
	return cfg
}

func newClient(cfg Config) *sprouts.Client {
	session, err := sprouts.LoadSession(cfg.SessionFile)
	if err != nil {
		osutil.Fatal("failed to load session", err)
	}
	slog.Info("loaded session", "user", session.UserName, "store", session.StoreName)

	err = session.WriteUserInfo(cfg.UserInfoFile)
	if err != nil {
		slog.Warn("failed to write user info file", "path", cfg.UserInfoFile, "err", err)
	}

	return sprouts.NewClient(session, sprouts.ClientOptions{
		ZoneId:     cfg.ZoneId,
		PostalCode: cfg.PostalCode,
	})
}

// openStore opens the run history database when one is configured.
// the returned cleanup is safe to call either way.
func openStore(cfg Config) (*clipper.Store, func()) {
	if cfg.Database.File == "" && cfg.Database.Url == "" {
		return nil, func() {}
	}

	database, err := cfg.Database.OpenDB()
	if err != nil {
		osutil.Fatal("failed to open database", err)
	}
	_, err = database.Exec(db.Schema)
	if err != nil {
		osutil.Fatal("failed to apply schema", err)
	}

	store := clipper.NewStore(database)
	return &store, func() { database.Close() }
}
