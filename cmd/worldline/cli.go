// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/worldline/internal/api"
	"github.com/katalvlaran/worldline/internal/config"
	"github.com/katalvlaran/worldline/internal/observability"
	"github.com/katalvlaran/worldline/kinerr"
	"github.com/katalvlaran/worldline/rendezvous"
	"github.com/katalvlaran/worldline/spacetime"
	"github.com/katalvlaran/worldline/trajectory"
	"github.com/katalvlaran/worldline/units"
	"github.com/katalvlaran/worldline/validate"
)

// Exit codes.
const (
	exitFailure  = 1 // usage, config, I/O
	exitRejected = 2 // a kinematics check rejected the request
	exitInvalid  = 3 // validate found problems in the trajectory
)

// appState is filled by the Before hook and shared by every command.
type appState struct {
	cfg    config.Config
	logger zerolog.Logger
}

func (s *appState) options() []units.Option {
	return s.cfg.Options()
}

// newCLIApp creates the CLI application with all commands.
func newCLIApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	st := &appState{cfg: config.Default(), logger: zerolog.Nop()}
	app := &cli.App{
		Name:      "worldline",
		Usage:     "Relativistic rendezvous solver and worldline sampler",
		Version:   Version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, EnvVars: []string{"WORLDLINE_CONFIG"}, Usage: "TOML config file"},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return cli.Exit(err.Error(), exitFailure)
			}
			st.cfg = cfg
			st.logger = observability.InitLogger("worldline", c.App.ErrWriter, cfg.LogLevel(), cfg.Log.Console)
			return nil
		},
		Commands: []*cli.Command{
			solveCmd(st),
			sampleCmd(st),
			planCmd(st),
			validateCmd(),
			serveCmd(st),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// solveCmd creates the solve command.
func solveCmd(st *appState) *cli.Command {
	return &cli.Command{
		Name:  "solve",
		Usage: "Solve the constant-acceleration rendezvous from (x0, t0, v0) to (x1, t1)",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "x0", Usage: "Start position"},
			&cli.Float64Flag{Name: "t0", Usage: "Start time"},
			&cli.Float64Flag{Name: "v0", Usage: "Start velocity (fraction of c)"},
			&cli.Float64Flag{Name: "x1", Usage: "Target position", Required: true},
			&cli.Float64Flag{Name: "t1", Usage: "Target time", Required: true},
		},
		Action: func(c *cli.Context) error {
			sol, err := rendezvous.Solve(c.Float64("x0"), c.Float64("t0"), c.Float64("v0"),
				c.Float64("x1"), c.Float64("t1"), st.options()...)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c.App.Writer, sol)
		},
	}
}

// sampleCmd creates the sample command.
func sampleCmd(st *appState) *cli.Command {
	return &cli.Command{
		Name:  "sample",
		Usage: "Sample the worldline of a constant proper acceleration",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "x0", Usage: "Start position"},
			&cli.Float64Flag{Name: "t0", Usage: "Start time"},
			&cli.Float64Flag{Name: "v0", Usage: "Start velocity (fraction of c)"},
			&cli.Float64Flag{Name: "alpha", Aliases: []string{"a"}, Usage: "Proper acceleration", Required: true},
			&cli.Float64Flag{Name: "tau-f", Usage: "Final proper time", Required: true},
			&cli.IntFlag{Name: "n", Usage: "Sample count (0: configured default)"},
			&cli.Float64Flag{Name: "dtau", Usage: "Fixed proper-time step; overrides --n"},
			&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "Parallel workers for fixed-count sampling"},
		},
		Action: func(c *cli.Context) error {
			x0, t0, v0 := c.Float64("x0"), c.Float64("t0"), c.Float64("v0")
			alpha, tauF := c.Float64("alpha"), c.Float64("tau-f")

			var (
				pts []spacetime.Point
				err error
			)
			switch {
			case c.IsSet("dtau"):
				pts, err = trajectory.GenerateWithStep(x0, t0, v0, alpha, tauF, c.Float64("dtau"), st.options()...)
			case c.Int("workers") > 0:
				pts, err = trajectory.GenerateParallel(c.Context, x0, t0, v0, alpha, tauF, c.Int("n"), c.Int("workers"), st.options()...)
			default:
				pts, err = trajectory.Generate(x0, t0, v0, alpha, tauF, c.Int("n"), st.options()...)
			}
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c.App.Writer, map[string]any{"points": pts})
		},
	}
}

// planCmd creates the plan command.
func planCmd(st *appState) *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "Validate, solve, sample and check a rendezvous in one step",
		Flags: []cli.Flag{
			&cli.Float64Flag{Name: "from-x", Usage: "Start position"},
			&cli.Float64Flag{Name: "from-t", Usage: "Start time"},
			&cli.Float64Flag{Name: "to-x", Usage: "Target position", Required: true},
			&cli.Float64Flag{Name: "to-t", Usage: "Target time", Required: true},
			&cli.Float64Flag{Name: "v0", Usage: "Start velocity (fraction of c)"},
			&cli.IntFlag{Name: "n", Usage: "Sample count (0: configured default)"},
		},
		Action: func(c *cli.Context) error {
			from := spacetime.Event{X: c.Float64("from-x"), T: c.Float64("from-t")}
			to := spacetime.Event{X: c.Float64("to-x"), T: c.Float64("to-t")}
			plan, err := trajectory.Rendezvous(from, to, c.Float64("v0"), c.Int("n"), st.options()...)
			if err != nil {
				return outputError(err)
			}
			return outputJSON(c.App.Writer, plan)
		},
	}
}

// validateCmd creates the validate command.
func validateCmd() *cli.Command {
	return &cli.Command{
		Name:  "validate",
		Usage: "Check a sampled worldline (JSON array or {\"points\": [...]} on stdin)",
		Action: func(c *cli.Context) error {
			pts, err := readPoints(c.App.Reader)
			if err != nil {
				return cli.Exit(fmt.Sprintf("read points: %v", err), exitFailure)
			}
			res := validate.Trajectory(pts)
			if err := outputJSON(c.App.Writer, res); err != nil {
				return err
			}
			if !res.Valid {
				return cli.Exit(fmt.Sprintf("trajectory invalid: %d problem(s)", len(res.Errors)), exitInvalid)
			}
			return nil
		},
	}
}

// serveCmd creates the serve command.
func serveCmd(st *appState) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the HTTP API until interrupted",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Usage: "Listen address (overrides [server] addr)"},
		},
		Action: func(c *cli.Context) error {
			srvCfg := st.cfg.Server
			if c.IsSet("addr") {
				srvCfg.Addr = c.String("addr")
			}
			srv := api.NewServer(api.NewServerOptions{
				Config: srvCfg,
				Units:  st.options(),
				Logger: st.logger,
			})

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start() }()

			select {
			case err := <-errCh:
				if err != nil {
					return cli.Exit(fmt.Sprintf("serve: %v", err), exitFailure)
				}
				return nil
			case <-ctx.Done():
			}

			st.logger.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), srvCfg.ShutdownTimeout)
			defer cancel()
			if err := srv.Stop(shutdownCtx); err != nil {
				return cli.Exit(fmt.Sprintf("shutdown: %v", err), exitFailure)
			}
			return <-errCh
		},
	}
}

// readPoints accepts a bare JSON array or an object with a points field.
func readPoints(r io.Reader) ([]spacetime.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("no input")
	}

	var pts []spacetime.Point
	if data[0] == '[' {
		err = json.Unmarshal(data, &pts)
	} else {
		var wrapped struct {
			Points []spacetime.Point `json:"points"`
		}
		err = json.Unmarshal(data, &wrapped)
		pts = wrapped.Points
	}
	if err != nil {
		return nil, err
	}
	return pts, nil
}

// outputJSON writes indented JSON to w.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	var kerr *kinerr.Error
	if errors.As(err, &kerr) {
		return cli.Exit(fmt.Sprintf("[%s] %s", kerr.Kind, kerr.Error()), exitRejected)
	}
	return cli.Exit(err.Error(), exitFailure)
}

// exitCode extracts the process exit status from an Action error.
func exitCode(err error) int {
	var coder cli.ExitCoder
	if errors.As(err, &coder) && coder.ExitCode() != 0 {
		return coder.ExitCode()
	}
	return exitFailure
}
