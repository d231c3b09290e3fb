package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"tpledit/actions"
	"tpledit/config"
	"tpledit/misc"
	"tpledit/state"
)

// initializeAppContext runs after command line is parsed and before any
// command: it loads configuration, opens debug report and sets up logging.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if cmd.NArg() == 0 {
		// help or version requested
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)
	configFile := cmd.String("config")

	var err error
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if url := cmd.String("service"); len(url) > 0 {
		env.Cfg.Service.BaseURL = url
	}
	if cmd.Bool("debug") {
		if err := prepareReport(env, configFile); err != nil {
			return ctx, err
		}
	}
	if env.Log, err = env.Cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started",
		zap.Strings("args", os.Args),
		zap.String("ver", misc.GetVersion()),
		zap.String("runtime", runtime.Version()),
		zap.String("hash", misc.GetGitHash()),
		zap.String("service", env.Cfg.Service.BaseURL))

	if env.Rpt != nil {
		env.Log.Info("Creating debug report", zap.String("location", env.Rpt.Name()))
	}
	if len(configFile) == 0 {
		env.Log.Info("Using defaults (no configuration file)")
	}
	return ctx, nil
}

// prepareReport opens debug report and puts effective configuration into it,
// secrets are masked by the dump.
func prepareReport(env *state.LocalEnv, configFile string) (err error) {
	if env.Rpt, err = env.Cfg.Reporting.Prepare(); err != nil {
		return fmt.Errorf("unable to prepare debug reporter: %w", err)
	}
	name := "config/defaults.yaml"
	if len(configFile) > 0 {
		name = "config/" + filepath.Base(configFile)
	}
	if data, err := config.Dump(env.Cfg); err == nil {
		env.Rpt.StoreData(name, data)
	}
	return nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		done, failed := env.Counts()
		if failed > 0 {
			env.Log.Warn("Some templates were not processed", zap.Int("processed", done), zap.Int("failed", failed))
		}
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}
	env.RestoreStdLog()

	// logs are synced and could go into report, from now on errors go to
	// stderr directly
	if env.Rpt != nil {
		if er := env.Rpt.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
		}
	}
	if env.Cfg != nil && len(env.Cfg.Logging.FileLogger.Destination) > 0 {
		err = multierr.Append(err, removeEmptyPanicLog(env.Cfg.Logging.FileLogger.Destination))
	}
	return
}

func removeEmptyPanicLog(logFile string) error {
	debug.SetCrashOutput(nil, debug.CrashOptions{})
	fname := filepath.Join(filepath.Dir(logFile), misc.GetAppName()+"-panic.log")
	fi, err := os.Stat(fname)
	if err != nil || fi.Size() != 0 {
		return nil
	}
	if err := os.Remove(fname); err != nil {
		return fmt.Errorf("unable to remove empty panic log file '%s': %w", fname, err)
	}
	return nil
}

// Commands return regular errors, cli.Exit is not used. Error is logged by
// exitErrHandler while log is still open, otherwise main prints it.
var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	if env := state.EnvFromContext(ctx); env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	if env := state.EnvFromContext(ctx); env.Log != nil {
		env.Log.Warn("Unknown command, nothing to do", zap.String("command", name))
	}
}

func main() {

	// interrupt cancels in-flight service requests
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	outputFlags := []cli.Flag{
		&cli.BoolFlag{Name: "nodirs", Aliases: []string{"nd"}, Usage: "when producing output do not keep input directory structure"},
		&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "continue even if destination exits, overwrite files"},
		&cli.StringFlag{Name: "force-zip-cp",
			Usage: "Force `ENCODING` for ALL non UTF-8 file names in processed archives (see IANA.org for character set names)"},
	}
	withOutput := func(flags ...cli.Flag) []cli.Flag {
		return append(flags, outputFlags...)
	}

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "editing engine for PDF generation templates",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, produces report archive"},
			&cli.StringFlag{Name: "service", Usage: "generation service `URL`, overrides configuration"},
		},
		Commands: []*cli.Command{
			{
				Name:               "normalize",
				Usage:              "Rewrites template(s) in canonical form",
				OnUsageError:       usageErrorHandler,
				Action:             actions.Normalize,
				Flags:              withOutput(),
				ArgsUsage:          "SOURCE [DESTINATION]",
				CustomHelpTemplate: cli.CommandHelpTemplate + sourceHelp + destinationHelp,
			},
			{
				Name:         "apply",
				Usage:        "Runs editing script against template(s)",
				OnUsageError: usageErrorHandler,
				Action:       actions.Apply,
				Flags: withOutput(
					&cli.StringFlag{Name: "script", Aliases: []string{"s"}, Required: true, Usage: "editing script `FILE` (YAML list of actions)"},
				),
				ArgsUsage: "SOURCE [DESTINATION]",
				CustomHelpTemplate: cli.CommandHelpTemplate + sourceHelp + destinationHelp + `
SCRIPT:
    list of editing actions, each with "action" and its arguments, for example:
        - action: insert
          kind: image
        - action: set_image
          handle: image-0
          data: "@logo.png"    # picture file relative to the script
`,
			},
			{
				Name:         "inspect",
				Usage:        "Prints structure of template(s)",
				OnUsageError: usageErrorHandler,
				Action:       actions.Inspect,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "fields", Usage: "list form fields"},
					&cli.StringFlag{Name: "force-zip-cp", Usage: "Force `ENCODING` for ALL non UTF-8 file names in processed archives"},
				},
				ArgsUsage:          "SOURCE",
				CustomHelpTemplate: cli.CommandHelpTemplate + sourceHelp,
			},
			{
				Name:         "generate",
				Usage:        "Produces PDF document(s) using generation service",
				OnUsageError: usageErrorHandler,
				Action:       actions.Generate,
				Flags: withOutput(
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "use template `NAME` stored by the service instead of SOURCE"},
					&cli.BoolFlag{Name: "verify", Usage: "check structure of produced PDF"},
					&cli.BoolFlag{Name: "check-fonts", Usage: "refuse templates using fonts unknown to the service"},
				),
				ArgsUsage:          "SOURCE|--name NAME [DESTINATION]",
				CustomHelpTemplate: cli.CommandHelpTemplate + sourceHelp + destinationHelp,
			},
			{
				Name:         "fill",
				Usage:        "Fills PDF form with field values of template(s) using generation service",
				OnUsageError: usageErrorHandler,
				Action:       actions.Fill,
				Flags: withOutput(
					&cli.StringFlag{Name: "pdf", Required: true, Usage: "PDF `FILE` to fill"},
					&cli.StringFlag{Name: "values", Usage: "XFDF `FILE` with field values to put into template(s) first"},
				),
				ArgsUsage:          "SOURCE [DESTINATION]",
				CustomHelpTemplate: cli.CommandHelpTemplate + sourceHelp + destinationHelp,
			},
			{
				Name:               "xfdf",
				Usage:              "Exports form fields of template(s) as XFDF",
				OnUsageError:       usageErrorHandler,
				Action:             actions.Export,
				Flags:              withOutput(),
				ArgsUsage:          "SOURCE [DESTINATION]",
				CustomHelpTemplate: cli.CommandHelpTemplate + sourceHelp + destinationHelp,
			},
			{
				Name:         "fonts",
				Usage:        "Lists fonts known to generation service or reports unknown fonts used by template(s)",
				OnUsageError: usageErrorHandler,
				Action:       actions.Fonts,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "force-zip-cp", Usage: "Force `ENCODING` for ALL non UTF-8 file names in processed archives"},
				},
				ArgsUsage: "[SOURCE]",
			},
			{
				Name:         "upload-font",
				Usage:        "Uploads TrueType or OpenType font to generation service",
				OnUsageError: usageErrorHandler,
				Action:       actions.UploadFont,
				ArgsUsage:    "FILE",
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file to write configuration to, STDOUT when omitted

By default the configuration in effect is written: embedded defaults merged
with configuration file and --service flag. Use --default to see embedded
defaults only.
`, cli.CommandHelpTemplate),
			},
		},
	}

	err := app.Run(ctx, os.Args)
	stop()
	if err == nil {
		return
	}
	// log may be closed or never opened
	if !errWasHandled {
		fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
	}
	os.Exit(1)
}

const sourceHelp = `
SOURCE:
    where templates are taken from:
        single template file: "[dir/]order.json"
        directory: "[dir/]templates" - every .json under it, symbolic links are skipped
        template inside archive: "[dir/]set.zip/invoices/order.json"
        directory inside archive: "[dir/]set.zip[/invoices]" - every .json under that path

	Archives nested in archives are not opened.
`

const destinationHelp = `
DESTINATION:
    output directory, current working directory when omitted. File names are
    derived from template names and output configuration
`

// outputConfiguration writes effective or default configuration as YAML to
// the given file or to standard output.
func outputConfiguration(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("config")

	args := cmd.Args().Slice()
	if len(args) > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", args[1:]))
	}

	which, dump := "actual", func() ([]byte, error) { return config.Dump(env.Cfg) }
	if cmd.Bool("default") {
		which, dump = "default", config.Prepare
	}
	data, err := dump()
	if err != nil {
		return fmt.Errorf("unable to get %s configuration: %w", which, err)
	}

	if len(args) == 0 {
		log.Info("Writing configuration", zap.String("state", which), zap.String("file", "STDOUT"))
		_, err = cmd.Root().Writer.Write(data)
		return err
	}

	fname := args[0]
	log.Info("Writing configuration", zap.String("state", which), zap.String("file", fname))
	if err := os.WriteFile(fname, data, 0644); err != nil {
		return fmt.Errorf("unable to write configuration to '%s': %w", fname, err)
	}
	return nil
}
