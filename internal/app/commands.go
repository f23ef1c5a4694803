package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-smooai-config/internal/cascade"
	"github.com/MKhiriev/go-smooai-config/internal/handler"
	"github.com/MKhiriev/go-smooai-config/internal/locator"
	"github.com/MKhiriev/go-smooai-config/internal/logger"
	"github.com/MKhiriev/go-smooai-config/internal/server"
	"github.com/MKhiriev/go-smooai-config/internal/service"
	"github.com/MKhiriev/go-smooai-config/internal/workers"
	"github.com/MKhiriev/go-smooai-config/models"
)

func (a *App) locateCommand() *cobra.Command {
	var candidates bool

	cmd := &cobra.Command{
		Use:   "locate",
		Short: "Print the configuration directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := a.consoleLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			sess, err := a.bootstrap(log)
			if err != nil {
				return err
			}

			dir, err := sess.services.Locator.Locate(locator.Options{IgnoreCache: true})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)

			if candidates {
				for _, stem := range cascade.Candidates(sess.services.Resolver.Context()) {
					fmt.Fprintln(cmd.OutOrStdout(), "  "+stem)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&candidates, "candidates", false, "Also list the cascade file stems in merge order")
	return cmd
}

func (a *App) resolveCommand() *cobra.Command {
	var tier string

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved configuration as JSON",
		Long: "Resolve merges the file cascade, remote values and environment variables " +
			"and prints the result. With --tier only the keys the schema declares in that tier are printed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := a.consoleLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			sess, err := a.bootstrap(log)
			if err != nil {
				return err
			}

			var values map[string]any
			if tier == "" {
				values, err = sess.services.ConfigManager.Values(cmd.Context())
			} else {
				values, err = tierValues(cmd.Context(), sess, models.Tier(tier))
			}
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), values)
		},
	}
	cmd.Flags().StringVar(&tier, "tier", "", "Only print one tier: public, secret or feature_flag")
	return cmd
}

func tierValues(ctx context.Context, sess *session, tier models.Tier) (map[string]any, error) {
	if !tier.Valid() {
		return nil, fmt.Errorf("%s %q", MsgUnknownTier, tier)
	}
	if sess.schema == nil {
		return nil, errors.New(MsgTierNeedsSchema)
	}

	get := tierGetter(sess.services.ConfigManager, tier)
	keys := sess.schema.KeysIn(tier)
	out := make(map[string]any, len(keys))
	for _, key := range keys {
		v, err := get(ctx, key)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}
	return out, nil
}

func tierGetter(m service.ConfigManager, tier models.Tier) func(context.Context, string) (any, error) {
	switch tier {
	case models.TierSecret:
		return m.GetSecretConfig
	case models.TierFeatureFlag:
		return m.GetFeatureFlag
	default:
		return m.GetPublicConfig
	}
}

func (a *App) checkSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check-schema <file>",
		Short: "Check a JSON Schema against the subset every SDK language supports",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := a.consoleLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			doc, err := a.readJSONObject(args[0])
			if err != nil {
				return err
			}

			report := service.NewSchemaService(log).Check(doc)
			out := cmd.OutOrStdout()
			if report.Valid() {
				fmt.Fprintln(out, MsgSchemaCompatible)
				return nil
			}

			for _, issue := range report {
				fmt.Fprintf(out, "%s: %s\n", issue.Path, issue.Message)
				if issue.Suggestion != "" {
					fmt.Fprintf(out, "  suggestion: %s\n", issue.Suggestion)
				}
			}
			return fmt.Errorf("%s: %d issue(s)", MsgSchemaIncompatible, len(report))
		},
	}
}

func (a *App) serveCommand() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve resolved values over the local development API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, err := a.level()
			if err != nil {
				return err
			}
			log := logger.NewLogger(role + "-server")
			log.Logger = log.Level(level)

			sess, err := a.bootstrap(log)
			if err != nil {
				return err
			}

			handlers, err := handler.NewHandlers(sess.services, sess.settings, log)
			if err != nil {
				return err
			}
			srv, err := server.NewServer(handlers, sess.settings.Server, log)
			if err != nil {
				return err
			}

			if !watch {
				return srv.Run(cmd.Context())
			}
			return serveWatching(cmd.Context(), srv, sess)
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", false, "Reload values when files in the configuration directory change")
	return cmd
}

// serveWatching runs srv next to a directory watcher and stops both
// together.
func serveWatching(ctx context.Context, srv server.Server, sess *session) error {
	dir, err := sess.services.Locator.Locate(locator.Options{})
	if err != nil {
		return err
	}

	ws := workers.NewWorkers(sess.logger,
		workers.NewDirWatcher(dir, workers.DefaultDebounce, sess.logger, sess.services.ConfigManager),
	)

	wctx, cancel := context.WithCancel(ctx)
	done := make(chan error, 1)
	go func() { done <- ws.Run(wctx) }()

	err = srv.Run(ctx)
	cancel()
	return errors.Join(err, <-done)
}

func (a *App) versionCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), a.build.Response())
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Build version: %s\n", a.build.Version())
			fmt.Fprintf(out, "Build date: %s\n", a.build.Date())
			fmt.Fprintf(out, "Build commit: %s\n", a.build.Commit())
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}
