package cmd

import (
	"context"
	"log"
	"os/signal"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ironsmile/qruuid/src/config"
	"github.com/ironsmile/qruuid/src/daemon"
	"github.com/ironsmile/qruuid/src/helpers"
	"github.com/ironsmile/qruuid/src/webserver"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP JSON API",
		Args:  inputArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := afero.NewOsFs()

			var (
				cfg config.Config
				err error
			)
			if configFile != "" {
				cfg, err = config.Load(fs, configFile)
			} else {
				cfg, err = config.FindAndParse(fs)
			}
			if err != nil {
				return err
			}

			userPath, err := helpers.ProjectUserPath()
			if err != nil {
				return err
			}
			cfg.ResolvePaths(userPath)

			ctx, stop := signal.NotifyContext(cmd.Context(), daemon.StopSignals...)
			defer stop()

			return serve(ctx, fs, cfg)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "",
		"configuration file, defaults to $HOME/.qruuid/config.json")

	return cmd
}

// serve runs the web server until ctx is cancelled.
func serve(ctx context.Context, fs afero.Fs, cfg config.Config) error {
	if cfg.LogFile != "" {
		if err := helpers.SetLogsFile(fs, cfg.LogFile); err != nil {
			return err
		}
	}

	if cfg.PidFile != "" {
		if err := helpers.SetUpPidFile(fs, cfg.PidFile); err != nil {
			return err
		}
		defer func() {
			if err := helpers.RemovePidFile(fs, cfg.PidFile); err != nil {
				log.Printf("Error removing PID file: %s\n", err)
			}
		}()
	}

	srv := webserver.NewServer(cfg)
	if err := srv.Serve(); err != nil {
		return err
	}

	stopped := make(chan struct{})
	g := new(errgroup.Group)

	g.Go(func() error {
		srv.Wait()
		close(stopped)
		return nil
	})

	g.Go(func() error {
		select {
		case <-stopped:
			return nil
		case <-ctx.Done():
		}

		log.Println("Shutting down the webserver.")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(shutdownCtx)
	})

	return g.Wait()
}
