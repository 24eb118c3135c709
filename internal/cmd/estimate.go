package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jimezsa/salarycli/internal/estimator"
	"github.com/jimezsa/salarycli/internal/export"
	"github.com/jimezsa/salarycli/internal/form"
	"github.com/jimezsa/salarycli/internal/models"
	"github.com/jimezsa/salarycli/internal/ui"
)

const maxPromptAttempts = 3

type EstimateCmd struct {
	Age         string `help:"Age in years (20 - 55)."`
	Gender      string `help:"Gender: 0/female or 1/male."`
	Education   string `help:"Education level: 0/bachelor, 1/master, 2/doctorate."`
	Experience  string `help:"Years of experience (0 - 30)."`
	Interactive bool   `short:"i" help:"Prompt for fields not given as flags."`
	Format      string `help:"Output format: card, json, csv, tsv, md, table." enum:",card,json,csv,tsv,md,table" default:""`
}

type failureOutput struct {
	Error failureDetail `json:"error"`
}

type failureDetail struct {
	Kind    string   `json:"kind"`
	Message string   `json:"message"`
	Status  int      `json:"status,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}

func (e *EstimateCmd) Run(ctx *Context) error {
	format, err := resolveFormat(ctx, e.Format)
	if err != nil {
		return err
	}

	client, err := ctx.estimatorClient()
	if err != nil {
		return err
	}

	f := form.New(client, ctx.Logger)
	e.apply(f)

	if e.Interactive {
		if err := promptPending(ctx, f); err != nil {
			return err
		}
	}
	warnOutOfRange(ctx, f)

	stop := watchLoading(ctx, f)
	state, err := f.Submit(context.Background())
	stop()

	switch s := state.(type) {
	case form.Succeeded:
		input, _ := f.Request()
		return writeEstimate(ctx, models.Estimate{Input: input, Result: s.Result}, format)
	case form.Failed:
		return reportFailure(ctx, s.Err)
	}
	return err
}

func (e *EstimateCmd) apply(f *form.Form) {
	f.UpdateField(form.FieldAge, e.Age)
	f.UpdateField(form.FieldGender, e.Gender)
	f.UpdateField(form.FieldEducation, e.Education)
	f.UpdateField(form.FieldExperience, e.Experience)
}

func resolveFormat(ctx *Context, value string) (export.Format, error) {
	if ctx.JSONOutput {
		return export.FormatJSON, nil
	}
	if ctx.PlainText {
		return export.FormatTSV, nil
	}
	return export.ParseFormat(value)
}

func promptPending(ctx *Context, f *form.Form) error {
	if ctx.In == nil {
		return fmt.Errorf("--interactive requires stdin")
	}
	pending := f.Pending()
	if len(pending) == 0 {
		return nil
	}

	reader := bufio.NewReader(ctx.In)
	fmt.Fprintln(ctx.Err, ctx.UI.Title())
	for _, field := range pending {
		for attempt := 0; attempt < maxPromptAttempts; attempt++ {
			fmt.Fprintf(ctx.Err, "%s: ", ui.Prompt(field))
			line, err := reader.ReadString('\n')
			if line != "" {
				f.UpdateField(field, strings.TrimRight(line, "\r\n"))
			}
			if err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
			if _, ok := f.Value(field); ok {
				break
			}
			if f.Invalid(field) {
				ctx.UI.Warnf("invalid %s: %q", field, strings.TrimSpace(line))
			}
		}
	}
	return nil
}

func warnOutOfRange(ctx *Context, f *form.Form) {
	for _, field := range f.OutOfRange() {
		value, _ := f.Value(field)
		ctx.Logger.Debug().Str("field", field.String()).Int("value", value).Msg("value outside advisory range")
		if ctx.UI != nil && !ctx.JSONOutput {
			ctx.UI.Warnf("%s %d is outside the expected range; the service may reject it", field, value)
		}
	}
}

// watchLoading drives the terminal indicator from form state changes and
// returns a function that stops it.
func watchLoading(ctx *Context, f *form.Form) func() {
	var stopIndicator func()
	stop := func() {
		if stopIndicator != nil {
			stopIndicator()
			stopIndicator = nil
		}
	}
	if ctx.UI == nil {
		return stop
	}

	f.Subscribe(func(state form.State) {
		if form.IsLoading(state) {
			if stopIndicator == nil {
				stopIndicator = ctx.UI.StartIndicator(ctx.UI.LoadingLabel())
			}
			return
		}
		stop()
	})
	return stop
}

func writeEstimate(ctx *Context, est models.Estimate, format export.Format) error {
	if format == export.FormatCard {
		ctx.UI.RenderState(form.Succeeded{Result: est.Result})
		return nil
	}
	return export.WriteEstimate(ctx.Out, est, format)
}

func reportFailure(ctx *Context, estErr *estimator.Error) error {
	if ctx.JSONOutput {
		out := failureOutput{Error: failureDetail{
			Kind:    estErr.Kind.String(),
			Message: estErr.Message(ctx.Language),
			Status:  estErr.Status,
			Fields:  estErr.Fields,
		}}
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
		return ErrReported
	}

	ctx.UI.RenderState(form.Failed{Err: estErr})
	if ctx.Verbose && estErr.Err != nil {
		ctx.UI.Warnf("  cause: %v", estErr.Err)
	}
	return ErrReported
}
