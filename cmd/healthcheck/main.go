// Command healthcheck probes a running estate API server and exits with a
// non-zero status when it is not healthy. It is meant for container
// HEALTHCHECK instructions.
//
//	healthcheck -a localhost:8080 -t 3s
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MKhiriev/go-estate-api/internal/adapter"
	"github.com/MKhiriev/go-estate-api/internal/logger"
	"github.com/caarlos0/env/v11"
)

const (
	exitHealthy   = 0
	exitUnhealthy = 1
	exitUsage     = 2
)

type options struct {
	Address string        `env:"SERVER_ADDRESS" envDefault:"localhost:8080"`
	Timeout time.Duration `env:"HEALTHCHECK_TIMEOUT" envDefault:"3s"`
	Retries int           `env:"HEALTHCHECK_RETRIES" envDefault:"2"`
	Verbose bool          `env:"HEALTHCHECK_VERBOSE"`
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// parseOptions reads env first; flags override it.
func parseOptions(args []string, stderr io.Writer) (options, error) {
	var opts options
	if err := env.Parse(&opts); err != nil {
		return options{}, fmt.Errorf("error getting env configs: %w", err)
	}

	fs := flag.NewFlagSet("healthcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.Address, "a", opts.Address, "server address (host:port or URL)")
	fs.DurationVar(&opts.Timeout, "t", opts.Timeout, "overall probe timeout")
	fs.IntVar(&opts.Retries, "r", opts.Retries, "retries on 503 or connection errors")
	fs.BoolVar(&opts.Verbose, "v", opts.Verbose, "log requests to stderr")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	return opts, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	log := logger.Nop()
	if opts.Verbose {
		log = logger.NewLogger("go-estate-healthcheck", "debug")
	}

	client, err := adapter.NewHTTPServerAdapter(adapter.HTTPClientConfig{
		Address: opts.Address,
		Timeout: opts.Timeout,
		Retries: opts.Retries,
	}, log)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	ctx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	if err = client.Health(ctx); err != nil {
		fmt.Fprintf(stderr, "DOWN: %v\n", err)
		return exitUnhealthy
	}

	fmt.Fprintln(stdout, "UP")
	return exitHealthy
}
