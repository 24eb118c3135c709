package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jimezsa/salarycli/internal/estimator"
)

type PingCmd struct {
	Timeout int `help:"Timeout in seconds." default:"15"`
}

type PingResult struct {
	Endpoint  string `json:"endpoint"`
	Status    string `json:"status"`
	LatencyMS int64  `json:"latency_ms"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

func (p *PingCmd) Run(ctx *Context) error {
	client, err := ctx.estimatorClient()
	if err != nil {
		return err
	}

	target, err := estimator.HelloURL(client.Endpoint())
	if err != nil {
		return err
	}

	result := PingResult{Endpoint: target}
	start := time.Now()
	message, err := pingWithTimeout(client, time.Duration(p.Timeout)*time.Second)
	result.LatencyMS = time.Since(start).Milliseconds()
	if err != nil {
		estErr := estimator.AsError(err)
		result.Status = estErr.Kind.String()
		result.Error = estErr.Message(ctx.Language)
		ctx.Logger.Debug().Err(err).Str("endpoint", target).Msg("ping failed")
	} else {
		result.Status = "ok"
		result.Message = message
	}

	if writeErr := writePingResult(ctx, result); writeErr != nil {
		return writeErr
	}
	if err != nil {
		return ErrReported
	}
	return nil
}

func pingWithTimeout(client *estimator.Client, timeout time.Duration) (string, error) {
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return client.Ping(ctx)
}

func writePingResult(ctx *Context, result PingResult) error {
	if ctx.JSONOutput {
		enc := json.NewEncoder(ctx.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	if ctx.PlainText {
		line := []string{result.Endpoint, result.Status, fmt.Sprintf("%d", result.LatencyMS), result.Message, result.Error}
		_, err := fmt.Fprintln(ctx.Out, strings.Join(line, "\t"))
		return err
	}

	if result.Error != "" {
		ctx.UI.Errorf("%s: %s", result.Endpoint, result.Error)
		return nil
	}

	tw := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "endpoint\tstatus\tlatency_ms\tmessage")
	fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", result.Endpoint, result.Status, result.LatencyMS, result.Message)
	return tw.Flush()
}
