// Package app builds the smooai-config command tree.
//
// Every command shares the engine flags registered by config.BindFlags plus
// --schema and --log-level. Command results go to stdout and logs to
// stderr, so output can be piped.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-smooai-config/internal/config"
	"github.com/MKhiriev/go-smooai-config/internal/logger"
	"github.com/MKhiriev/go-smooai-config/internal/schema"
	"github.com/MKhiriev/go-smooai-config/internal/service"
	"github.com/MKhiriev/go-smooai-config/models"
)

const role = "smooai-config"

// App holds the state shared by all commands of one invocation.
type App struct {
	build models.AppBuildInfo
	fs    afero.Fs

	flags      *config.FlagSettings
	schemaPath string
	logLevel   string
}

// session is what a command gets after settings and services are built.
type session struct {
	settings *config.Settings
	schema   *schema.Schema
	services *service.Services
	logger   *logger.Logger
}

func newApp(build models.AppBuildInfo) *App {
	return &App{build: build, fs: afero.NewOsFs()}
}

// NewRootCommand returns the smooai-config root command.
func NewRootCommand(build models.AppBuildInfo) *cobra.Command {
	return newApp(build).rootCommand()
}

// Execute runs the CLI until the command finishes or SIGINT, SIGTERM or
// SIGQUIT is received, and returns the process exit code.
func Execute(build models.AppBuildInfo) int {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	cmd := NewRootCommand(build)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return 1
	}
	return 0
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "smooai-config",
		Short:         "Resolve layered configuration for the current environment",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	a.flags = config.BindFlags(pf)
	pf.StringVar(&a.schemaPath, "schema", "", "JSON Schema file declaring the configuration keys")
	pf.StringVar(&a.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	root.AddCommand(
		a.locateCommand(),
		a.resolveCommand(),
		a.checkSchemaCommand(),
		a.serveCommand(),
		a.versionCommand(),
	)
	return root
}

func (a *App) level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(a.logLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%s: --log-level: %w", MsgInvalidSettings, err)
	}
	return level, nil
}

func (a *App) consoleLogger(w io.Writer) (*logger.Logger, error) {
	level, err := a.level()
	if err != nil {
		return nil, err
	}
	return logger.NewConsoleLogger(role, w, level), nil
}

// bootstrap loads settings and the optional schema, then wires services.
func (a *App) bootstrap(log *logger.Logger) (*session, error) {
	settings, err := config.Load(a.flags.Settings())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MsgInvalidSettings, err)
	}
	log.Debug().Any("settings", settings).Msg("received settings")

	s, err := a.loadSchema()
	if err != nil {
		return nil, err
	}

	services, err := service.NewServices(settings, service.Deps{Schema: s, Build: a.build}, log)
	if err != nil {
		return nil, err
	}

	return &session{settings: settings, schema: s, services: services, logger: log}, nil
}

func (a *App) loadSchema() (*schema.Schema, error) {
	if a.schemaPath == "" {
		return nil, nil
	}

	doc, err := a.readJSONObject(a.schemaPath)
	if err != nil {
		return nil, err
	}
	return schema.FromJSONSchema(doc)
}

func (a *App) readJSONObject(path string) (map[string]any, error) {
	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MsgInvalidSchemaFile, err)
	}

	var doc map[string]any
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s %s: %w", MsgInvalidSchemaFile, path, err)
	}
	if doc == nil {
		return nil, fmt.Errorf("%s %s: not a JSON object", MsgInvalidSchemaFile, path)
	}
	return doc, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
