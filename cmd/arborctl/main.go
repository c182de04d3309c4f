// Copyright 2026 The arbor Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v2"

	"github.com/arborlog/arbor"
	"github.com/arborlog/arbor/config"
)

var log = arbor.GetLogger("arborctl")

func main() {
	app := &cli.App{
		Name:    "arborctl",
		Version: "1.0.0",
		Usage:   "run and inspect arbor-configured applications",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to the arbor config file (yaml/json/toml)",
			},
		},
		Before: before,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "load a config file, install it, and block until interrupted",
				Action: runServe,
			},
			{
				Name:   "check",
				Usage:  "validate a config file without installing it, reporting every problem found",
				Action: runCheck,
			},
		},
	}
	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func before(c *cli.Context) error {
	if c.String("config") == "" {
		return errors.New("arborctl: -config is required")
	}
	return nil
}

func runServe(c *cli.Context) error {
	path := c.String("config")
	reg := config.NewRegistry()

	handle, reloader, err := config.LoadAndInit(path, reg)
	if err != nil {
		return errors.Wrapf(err, "arborctl: loading %s", path)
	}
	log.Info(fmt.Sprintf("installed config from %s", path))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutting down")
	if reloader != nil {
		reloader.Stop()
	}
	_ = handle
	return arbor.Shutdown()
}

func runCheck(c *cli.Context) error {
	path := c.String("config")
	reg := config.NewRegistry()

	raw, err := config.LoadDocument(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return cli.Exit("", 1)
	}
	doc, err := config.DecodeDocument(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return cli.Exit("", 1)
	}

	problems := config.Validate(doc, reg)
	if len(problems) == 0 {
		fmt.Printf("%s: ok\n", path)
		return nil
	}
	for _, p := range problems {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, p)
	}
	return cli.Exit(fmt.Sprintf("%d problem(s) found", len(problems)), 1)
}
