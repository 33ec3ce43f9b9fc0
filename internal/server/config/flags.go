package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/userdb/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN
//	-o int      max open connections
//	-i int      max idle connections
//	-l int      connection max lifetime, minutes
//	-m bool     apply migrations on start
//	-v string   log level (debug, info, warn, error)
//	-w bool     keep running until SIGINT/SIGTERM
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, so the -c/-config flag handled by parseJson does not
// collide with these.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-o", "-i", "-l", "-v"}, "-m", "-w")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.IntVar(&config.MaxOpenConns, "o", config.MaxOpenConns, "max open connections")
	fs.IntVar(&config.MaxIdleConns, "i", config.MaxIdleConns, "max idle connections")

	connMaxLifetime := fs.Int("l", 0, "connection max lifetime (in minutes)")

	fs.BoolVar(&config.MigrateOnStart, "m", config.MigrateOnStart, "apply migrations on start")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")
	fs.BoolVar(&config.Wait, "w", config.Wait, "wait for a signal before closing the pool")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	// -l only overrides earlier layers when given explicitly
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "l" {
			config.ConnMaxLifetime = time.Duration(*connMaxLifetime) * time.Minute
		}
	})
}
