package cmd

import (
	"bytes"
	"io"
	"testing"

	"github.com/jimezsa/salarycli/internal/config"
	"github.com/jimezsa/salarycli/internal/estimator"
	"github.com/jimezsa/salarycli/internal/estimator/estimatortest"
	"github.com/jimezsa/salarycli/internal/models"
	"github.com/jimezsa/salarycli/internal/ui"
	"github.com/rs/zerolog"
)

type testEnv struct {
	ctx  *Context
	doer *estimatortest.Doer
	out  *bytes.Buffer
	err  *bytes.Buffer
}

func newTestEnv(t *testing.T, in io.Reader, responses ...estimatortest.Response) *testEnv {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	doer := estimatortest.New(responses...)

	return &testEnv{
		ctx: &Context{
			In:       in,
			Out:      out,
			Err:      errOut,
			UI:       ui.New(out, errOut, ui.ColorNever, false),
			Config:   config.DefaultConfig(),
			Logger:   zerolog.Nop(),
			Language: estimator.English,
			NewDoer: func(models.ServiceConfig) (estimator.Doer, error) {
				return doer, nil
			},
		},
		doer: doer,
		out:  out,
		err:  errOut,
	}
}
