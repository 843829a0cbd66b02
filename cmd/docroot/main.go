// Command docroot serves static files from a directory.
//
//	docroot [port] [root]
//
// The port defaults to 8080 and the root to ./www.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/indigo-web/docroot"
	"github.com/indigo-web/docroot/config"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: docroot [port] [root]")
	}
	flag.Parse()

	cfg, err := parseArgs(flag.Args(), config.Default())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	app, err := docroot.New(cfg)
	if err != nil {
		log.Fatalf("docroot: %v", err)
	}

	if err = app.Bind(); err != nil {
		log.Fatalf("failed to start: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		app.Stop()
	}()

	if err = app.Serve(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

var errInvalidPort = errors.New("invalid port, use 1-65535")

// parseArgs applies the positional arguments on top of the config.
func parseArgs(args []string, cfg *config.Config) (*config.Config, error) {
	if len(args) > 2 {
		return nil, errors.New("usage: docroot [port] [root]")
	}

	if len(args) > 0 {
		port, err := strconv.Atoi(args[0])
		if err != nil || port < 1 || port > 65535 {
			return nil, errInvalidPort
		}

		cfg.Port = port
	}

	if len(args) > 1 {
		cfg.Root = args[1]
	}

	return cfg, nil
}
