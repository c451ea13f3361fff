package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/urna/db"
	"github.com/danielhkuo/urna/voting"
)

const defaultEnvFile = ".env"

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	EnvFile      string

	SerializableVotes      bool
	BallotScope            string
	RequireRegisteredVoter bool
}

// VotingOptions returns the ballot checks selected by the configuration
func (c Config) VotingOptions() voting.Options {
	return voting.Options{
		Serializable:           c.SerializableVotes,
		Scope:                  c.BallotScope,
		RequireRegisteredVoter: c.RequireRegisteredVoter,
	}
}

// ParseFlags validates flags and fills the rest from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("urna", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.EnvFile, "env-file", defaultEnvFile, "File with KEY=value lines loaded into the environment")

	// Ballot checks
	fs.BoolVar(&cfg.SerializableVotes, "serializable", false, "Cast votes inside a serializable transaction")
	fs.StringVar(&cfg.BallotScope, "scope", "", "Ballot scope: any or latest")
	fs.BoolVar(&cfg.RequireRegisteredVoter, "require-voter", false, "Only registered voters may vote")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	// Real environment variables win over the file
	if err := godotenv.Load(cfg.EnvFile); err != nil {
		if !errors.Is(err, os.ErrNotExist) || set["env-file"] {
			return Config{}, fmt.Errorf("failed to load env file %s: %w", cfg.EnvFile, err)
		}
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3000 // default
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = db.SQLite
		}
	}
	if cfg.DatabaseType != db.SQLite && cfg.DatabaseType != db.Postgres {
		return Config{}, fmt.Errorf("unknown database type %q", cfg.DatabaseType)
	}

	if !set["serializable"] {
		v, err := envBool("SERIALIZABLE_VOTES")
		if err != nil {
			return Config{}, err
		}
		cfg.SerializableVotes = v
	}
	if !set["require-voter"] {
		v, err := envBool("REQUIRE_REGISTERED_VOTER")
		if err != nil {
			return Config{}, err
		}
		cfg.RequireRegisteredVoter = v
	}

	if cfg.BallotScope == "" {
		cfg.BallotScope = os.Getenv("BALLOT_SCOPE")
		if cfg.BallotScope == "" {
			cfg.BallotScope = voting.ScopeAny
		}
	}
	if err := cfg.VotingOptions().Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func envBool(key string) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s env variable: %w", key, err)
	}
	return v, nil
}
