package cmd

import (
	"io"

	"github.com/jimezsa/salarycli/internal/config"
	"github.com/jimezsa/salarycli/internal/estimator"
	"github.com/jimezsa/salarycli/internal/models"
	"github.com/jimezsa/salarycli/internal/network"
	"github.com/jimezsa/salarycli/internal/ui"
	"github.com/rs/zerolog"
)

type Context struct {
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
	UI         *ui.UI
	Config     config.Config
	ConfigDir  string
	Logger     zerolog.Logger
	Verbose    bool
	JSONOutput bool
	PlainText  bool
	Version    string
	ColorMode  ui.ColorMode
	Language   estimator.Language

	// NewDoer builds the transport; nil means network.NewClient.
	NewDoer func(cfg models.ServiceConfig) (estimator.Doer, error)
}

func (c *Context) estimatorClient() (*estimator.Client, error) {
	svc := c.Config.Service()
	newDoer := c.NewDoer
	if newDoer == nil {
		newDoer = func(cfg models.ServiceConfig) (estimator.Doer, error) {
			return network.NewClient(cfg)
		}
	}
	doer, err := newDoer(svc)
	if err != nil {
		return nil, err
	}
	return estimator.New(doer, svc, c.Logger), nil
}
