package cmd

import (
	"fmt"
	"log"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/jnt-tracker/internal/job"
	"github.com/spigell/jnt-tracker/internal/ledger"
	"github.com/spigell/jnt-tracker/internal/logger"
	"github.com/spigell/jnt-tracker/internal/match"
	"github.com/spigell/jnt-tracker/internal/saved"
	"github.com/spigell/jnt-tracker/internal/store"
)

const preferencesKey = "jobTrackerPreferences"

// session wires the shared collaborators for a single command invocation.
// There is no global state: every command builds its own session and passes
// it down explicitly.
type session struct {
	config  *Config
	logger  *zap.Logger
	store   store.Store
	catalog *job.Jobs
	ledger  *ledger.Ledger
	saved   *saved.Set
}

// newSession assembles logger, config, store and ledger. The catalog is
// loaded only when asked for, since some commands (ship, prefs) never read
// it.
func newSession(withCatalog bool) (*session, error) {
	zlog, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		return nil, fmt.Errorf("creating a logger: %w", err)
	}

	config, err := getConfig()
	if err != nil {
		return nil, fmt.Errorf("getting a config: %w", err)
	}
	if config == nil {
		config = &Config{}
	}

	stateDir := config.StateDir
	if stateDir == "" {
		stateDir = viper.GetString("state-dir")
	}

	var st store.Store
	fileStore, err := store.NewFile(stateDir, zlog)
	if err != nil {
		// Degrade to an in-memory session rather than failing: every
		// state slice falls back to its default value.
		zlog.Warn("state directory unavailable, state will not persist",
			zap.String("state_dir", stateDir),
			zap.Error(err),
		)
		st = store.NewMemory()
	} else {
		st = fileStore
	}

	s := &session{
		config: config,
		logger: zlog,
		store:  st,
		ledger: ledger.New(st, zlog),
		saved:  saved.New(st),
	}

	if withCatalog {
		catalog, err := job.LoadCatalog(config.CatalogFile)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
		zlog.Info("loaded job catalog",
			zap.String("path", config.CatalogFile),
			zap.Int("count", catalog.Len()),
		)
		s.catalog = catalog
	}

	return s, nil
}

// preferences returns the persisted preferences, or nil when none were
// saved yet. Scoring treats nil as "score everything 0".
func (s *session) preferences() *match.Preferences {
	var prefs match.Preferences
	if !store.GetJSON(s.store, preferencesKey, &prefs) {
		return nil
	}
	return &prefs
}

// savePreferences overwrites the persisted preferences wholesale.
func (s *session) savePreferences(prefs *match.Preferences) {
	s.store.Set(preferencesKey, prefs)
}

// fatal aborts before a session logger exists.
func fatal(err error) {
	log.Fatalf("%s: %v", app, err)
}
