package config

import (
	"flag"
	"os"

	"github.com/dkravchenko/hiredesk/internal/flagx"
)

// parseFlags overlays selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the remote API (default from Config)
//	-s string   path of the session file (default from Config)
//
// Arguments are filtered to only the flags handled here, so other
// components can define their own flags without interference.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the remote API")
	fs.StringVar(&cfg.SessionFile, "s", cfg.SessionFile, "path of the session file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
