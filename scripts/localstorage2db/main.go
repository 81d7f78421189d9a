package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/golang-migrate/migrate/v4"
	migratep "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/gorodgovorit/board/internal/codec"
	"github.com/gorodgovorit/board/internal/storage"
	"github.com/gorodgovorit/board/internal/storage/pebbledb"
	"github.com/gorodgovorit/board/internal/storage/postgres"
)

var opts = struct {
	Dump               string `long:"dump" env:"DUMP" default:"localstorage.json" description:"path to localStorage dump, a json object of key to string value"`
	Storage            string `long:"storage" env:"STORAGE" default:"pebble" description:"storage backend" choice:"pebble" choice:"postgres"`
	PebblePath         string `long:"pebble.path" env:"PEBBLE_PATH" default:"data/board" description:"pebble database directory"`
	Postgres           string `long:"postgres" env:"POSTGRES" default:"host=localhost port=5432 user=postgres password=root sslmode=disable" description:"postgres dsn"`
	PostgresMigrations string `long:"postgres.migrations" env:"POSTGRES_MIGRATIONS" default:"scripts/migrations/postgres" description:"postgres migrations directory"`
	Spew               bool   `long:"spew" env:"SPEW" description:"print imported state"`
}{}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "localstorage2db"
	parser.LongDescription = "Browser localStorage dump to database importer"

	_, err := parser.Parse()

	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(os.Stdout)
			os.Exit(0)
		}
		logrus.WithError(err).Fatal("error occurred while parsing flags")
	}

	logrus.Info("localstorage2db started")
	logrus.Infof("%+v", opts)

	b, err := ioutil.ReadFile(opts.Dump)
	if err != nil {
		logrus.WithError(err).Fatal("failed to read dump")
	}

	var dump map[string]string

	if err := json.Unmarshal(b, &dump); err != nil {
		logrus.WithError(err).Fatal("failed to unmarshal dump")
	}

	s := mustGetStorage()
	defer s.Close() // nolint:errcheck

	ctx := context.Background()

	n, err := importDump(ctx, s, dump)
	if err != nil {
		logrus.WithError(err).Fatal("failed to import dump")
	}
	logrus.Infof("%d of %d keys imported", n, len(dump))

	snap, err := codec.New(s).Load(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("failed to load imported state")
	}

	logrus.WithFields(logrus.Fields{
		"identity":      snap.CurrentIdentity,
		"posts":         len(snap.Posts),
		"reactions":     len(snap.Reactions),
		"conversations": len(snap.Conversations),
		"retired":       len(snap.Retired),
		"ads":           len(snap.Ads),
	}).Info("done")

	if opts.Spew {
		spew.Fdump(os.Stdout, snap)
	}
}

// importDump copies known partitions of dump into s in one transaction.
func importDump(ctx context.Context, s storage.Storage, dump map[string]string) (int, error) {
	known := make(map[string]bool, len(codec.Partitions))
	for _, p := range codec.Partitions {
		known[string(p)] = true
	}

	for k := range dump {
		if !known[k] {
			logrus.WithField("key", k).Warn("skip unknown key")
		}
	}

	n := 0
	err := s.InTx(ctx, func(s storage.Storage) error {
		for _, p := range codec.Partitions {
			v, ok := dump[string(p)]
			if !ok {
				continue
			}

			if err := s.Set(ctx, string(p), []byte(v)); err != nil {
				return fmt.Errorf("failed to import %s: %w", p, err)
			}
			n++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return n, nil
}

func mustGetStorage() storage.Storage {
	if opts.Storage == "postgres" {
		return postgres.New(mustGetDB())
	}

	s, err := pebbledb.Open(opts.PebblePath)
	if err != nil {
		logrus.WithError(err).Fatal("failed to open pebble")
	}

	return s
}

func mustGetDB() *sql.DB {
	db, err := sql.Open("postgres", opts.Postgres)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create postgres connection")
	}

	if err := db.PingContext(context.Background()); err != nil {
		logrus.WithError(err).Fatal("failed to ping postgres")
	}

	driver, err := migratep.WithInstance(db, &migratep.Config{})
	if err != nil {
		logrus.WithError(err).Fatal("failed to create database migrate driver")
	}

	migrator, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", opts.PostgresMigrations), "postgres", driver)
	if err != nil {
		logrus.WithError(err).Fatal("failed to create migrator")
	}

	switch err := migrator.Up(); err {
	case nil:
		logrus.Info("database was migrated")
	case migrate.ErrNoChange:
		logrus.Info("database is up-to-date")
	default:
		logrus.WithError(err).Fatal("failed to migrate db")
	}

	return db
}
