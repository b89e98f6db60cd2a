// Command markup escapes text for HTML and serves markup fragments for preview.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"pkt.systems/version"

	"github.com/vango-dev/markup/internal/errors"
)

const modulePath = "github.com/vango-dev/markup"

// cli carries the streams, settings and logger shared by every command.
type cli struct {
	stdin     io.Reader
	stdout    io.Writer
	stderr    io.Writer
	stderrTTY bool

	verbose     bool
	color       string
	errorFormat string
	logger      *slog.Logger
}

func main() {
	version.SetDefaultModule(modulePath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	c := &cli{
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		stderrTTY: term.IsTerminal(int(os.Stderr.Fd())),
	}
	code := c.execute(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}

// execute runs the command line in args and reports any failure on stderr
// in the requested --error-format. It returns the process exit code.
func (c *cli) execute(ctx context.Context, args []string) int {
	// Flag errors are reported before the persistent hook runs.
	_ = applyColor(colorAuto, c.stderrTTY)

	cmd := newRootCmd(c)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	out, perr := errors.ParseOutput(c.errorFormat)
	if perr != nil {
		out = errors.OutputText
	}
	errors.Fprint(c.stderr, err, out)
	return 1
}

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

func applyColor(mode string, tty bool) error {
	switch mode {
	case colorAlways:
		errors.EnableColors()
	case colorNever:
		errors.DisableColors()
	case colorAuto:
		if tty {
			errors.EnableColors()
		} else {
			errors.DisableColors()
		}
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", mode)
	}
	return nil
}

func newRootCmd(c *cli) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "markup",
		Short: "HTML escaping and markup preview",
		Long: `markup escapes untrusted text for HTML and serves markup
fragments for preview.

  • escape   stream files or stdin through the HTML escaper
  • render   write a demo page
  • serve    preview registered pages over HTTP and WebSocket
  • init     write a markup.json with default settings
  • errors   list error codes or explain one
  • version  print build information`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			c.logger = newLogger(c.stderr, c.verbose)
			if _, err := errors.ParseOutput(c.errorFormat); err != nil {
				c.errorFormat = string(errors.OutputText)
				return err
			}
			return applyColor(c.color, c.stderrTTY)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&c.color, "color", colorAuto, "Color error output: auto, always or never")
	flags.StringVar(&c.errorFormat, "error-format", string(errors.OutputText), "Error output: text, compact or json")
	rootCmd.SetIn(c.stdin)
	rootCmd.SetOut(c.stdout)
	rootCmd.SetErr(c.stderr)

	rootCmd.AddCommand(
		escapeCmd(c),
		renderCmd(c),
		serveCmd(c),
		initCmd(c),
		errorsCmd(c),
		versionCmd(c),
	)

	return rootCmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
