package config

import (
	"github.com/namsral/flag"
)

type Config struct {
	Letters  string
	Word     string
	LogLevel string
	Progress bool
	// DBPath is a SQLite file to keep finished runs in. Empty means
	// nothing is written anywhere.
	DBPath  string
	Recount bool
	// RunID reports a run already saved in DBPath instead of counting.
	RunID int64
}

// Load loads the configs from the given arguments. Every flag can also be
// set through the environment, e.g. LOG_LEVEL=debug.
func (c *Config) Load(args []string) error {
	fs := flag.NewFlagSet("foxgrid", flag.ContinueOnError)

	fs.StringVar(&c.Letters, "letters", "f5o6x5", "tile composition, as runs (f5o6x5) or raw tiles (fffoox)")
	fs.StringVar(&c.Word, "word", "fox", "word to look for, forwards or backwards")
	fs.StringVar(&c.LogLevel, "log-level", "warn", "log level")
	fs.BoolVar(&c.Progress, "progress", false, "show a progress bar on stderr while counting")
	fs.StringVar(&c.DBPath, "db", "", "sqlite file to save runs to and reuse them from")
	fs.BoolVar(&c.Recount, "recount", false, "enumerate again even if the db already has this run")
	fs.Int64Var(&c.RunID, "run-id", 0, "print the saved run with this id from -db and exit")
	err := fs.Parse(args)
	return err
}
