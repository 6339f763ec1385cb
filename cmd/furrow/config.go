package main

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"furrow"
	nt "furrow/entity"
	"furrow/mock"
	"furrow/store/duck"
	"furrow/store/lite"
	"furrow/store/memory"
	"furrow/util"
)

// Config is read from the --config yaml file.
type Config struct {
	Store    string `yaml:"store"`              // memory, duck or sqlite
	Path     string `yaml:"path,omitempty"`     // sqlite database file
	Data     string `yaml:"data,omitempty"`     // jobs file, yaml or json
	Generate int    `yaml:"generate,omitempty"` // random jobs added to the sample listings
	Seed     int64  `yaml:"seed,omitempty"`
	LogFile  string `yaml:"log_file,omitempty"`
	Layout   string `yaml:"layout,omitempty"` // layout file
}

const (
	storeMemory = "memory"
	storeDuck   = "duck"
	storeSqlite = "sqlite"

	fileMode = 0o644
)

// sampleConfig is written by the init command.
var sampleConfig = Config{
	Store:    storeMemory,
	Generate: 40,
	Seed:     1,
	LogFile:  "furrow.log",
}

func loadConfig(path string) (cfg *Config, err error) {

	cfg = &Config{}
	if path != "" {
		err = util.LoadConfig(cfg, path)
		if err != nil {
			return
		}
	}

	if cfg.Store == "" {
		cfg.Store = storeMemory
	}
	if cfg.Path == "" {
		cfg.Path = lite.Memory
	}
	return
}

func openStore(ctx context.Context, cfg *Config, lgr nt.Logger) (store furrow.Store, err error) {

	switch cfg.Store {
	case storeMemory:
		store = memory.New(lgr)
	case storeDuck:
		store, err = duck.New(ctx, lgr)
	case storeSqlite:
		store, err = lite.New(ctx, cfg.Path, lgr)
	default:
		err = errors.Errorf("unknown store %q, want one of memory, duck or sqlite", cfg.Store)
	}
	return
}

func loadJobs(cfg *Config) (jobs []nt.Job, err error) {

	if cfg.Data != "" {
		return util.LoadJobs(cfg.Data)
	}

	jobs = mock.Sample()
	if cfg.Generate <= 0 {
		return
	}

	generated, err := mock.Generate(cfg.Generate, cfg.Seed)
	if err != nil {
		return
	}
	jobs = append(jobs, generated...)
	return
}

// loadedStore opens the configured store with its jobs loaded.
func loadedStore(ctx context.Context, cfg *Config, lgr nt.Logger) (store furrow.Store, err error) {

	jobs, err := loadJobs(cfg)
	if err != nil {
		return
	}

	store, err = openStore(ctx, cfg, lgr)
	if err != nil {
		return
	}

	err = store.Load(ctx, jobs)
	if err != nil {
		store.Close()
		store = nil
	}
	return
}

func openLog(cfg *Config) (io.Writer, error) {
	return util.OpenLog(cfg.LogFile, fileMode)
}

func closeLog(file io.Writer) {
	util.CloseLog(file)
}
