package cmd

import (
	"errors"

	"github.com/alecthomas/kong"
)

// ErrReported marks a failure that has already been shown to the user; the
// caller should only set the exit status.
var ErrReported = errors.New("failure already reported")

type CLI struct {
	Color    string `help:"Color output: auto, always, never." enum:"auto,always,never" default:"auto"`
	JSON     bool   `help:"JSON output to stdout; disables colors."`
	Plain    bool   `help:"TSV output to stdout; disables colors."`
	Verbose  bool   `help:"Enable debug logging."`
	Endpoint string `help:"Estimation service URL (overrides config)."`
	Lang     string `help:"Message language: en, th." enum:",en,th" default:""`

	VersionFlag kong.VersionFlag `help:"Print version."`

	Version  VersionCmd  `cmd:"" help:"Print version."`
	Config   ConfigCmd   `cmd:"" help:"Manage configuration."`
	Estimate EstimateCmd `cmd:"" help:"Estimate a salary from age, gender, education and experience."`
	Ping     PingCmd     `cmd:"" help:"Check that the estimation service is reachable."`
}

func NewCLI() *CLI {
	return &CLI{}
}
