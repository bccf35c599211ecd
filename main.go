package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/coreos/pkg/capnslog"
	"github.com/pontaoski/logoparse/config"
	"github.com/pontaoski/logoparse/lexer"
	"github.com/pontaoski/logoparse/parser"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
)

var plog = capnslog.NewPackageLogger("github.com/pontaoski/logoparse", "main")

var settings = config.Default()

func setup(c *cli.Context) error {
	var err error
	if c.IsSet("config") {
		settings, err = config.Load(c.String("config"))
	} else {
		settings, err = config.LoadDefault()
	}
	if err != nil {
		return err
	}

	if c.IsSet("log-level") {
		settings.LogLevel = c.String("log-level")
	}
	if c.Bool("trace") {
		settings.Trace = true
	}

	level, err := capnslog.ParseLevel(strings.ToUpper(settings.LogLevel))
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", settings.LogLevel, err)
	}
	capnslog.SetFormatter(capnslog.NewPrettyFormatter(os.Stderr, level >= capnslog.DEBUG))
	capnslog.SetGlobalLogLevel(level)

	return nil
}

func sourceFile(c *cli.Context) (string, error) {
	file := c.Args().First()
	if file == "" {
		return "", fmt.Errorf("no source file provided")
	}
	plog.Infof("processing %s", file)
	return file, nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "logoparse",
		Usage: "parse turtle-graphics programs into an AST",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "configuration file (.yaml or .toml)",
				Value: config.DefaultPath,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG or TRACE",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "print errors with a stack trace",
			},
		},
		Before: setup,
		ExitErrHandler: func(context *cli.Context, err error) {
			if err == nil {
				return
			}
			if settings.Trace {
				tracerr.PrintSourceColor(err)
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(1)
		},
		Commands: []*cli.Command{
			{
				Name:      "tokens",
				Usage:     "print the tokens of a file",
				ArgsUsage: "FILE",
				Action: func(c *cli.Context) error {
					file, err := sourceFile(c)
					if err != nil {
						return err
					}

					tokens, err := lexer.TokenizeFile(file)
					if err != nil {
						return err
					}
					for _, tok := range tokens {
						fmt.Fprintf(c.App.Writer, "%s\t%s\n", tok.Location.From, tok)
					}
					return nil
				},
			},
			{
				Name:      "parse",
				Usage:     "print the AST of a file",
				ArgsUsage: "FILE",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Usage: "one of " + strings.Join(config.Formats, ", "),
					},
				},
				Action: func(c *cli.Context) error {
					file, err := sourceFile(c)
					if err != nil {
						return err
					}

					format := settings.Format
					if c.IsSet("format") {
						format = c.String("format")
					}

					program, err := parser.ParseFile(file)
					if err != nil {
						return err
					}
					return writeProgram(c.App.Writer, format, program)
				},
			},
			{
				Name:      "check",
				Usage:     "report whether a file parses",
				ArgsUsage: "FILE",
				Action: func(c *cli.Context) error {
					file, err := sourceFile(c)
					if err != nil {
						return err
					}

					program, err := parser.ParseFile(file)
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "%s: ok, %d statement(s), %d procedure(s)\n", file, len(program.Body), len(program.Procedures))
					return nil
				},
			},
			{
				Name:      "init",
				Usage:     "write a default configuration file",
				ArgsUsage: "[FILE]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "overwrite an existing file",
					},
				},
				Action: func(c *cli.Context) error {
					path := c.Args().First()
					if path == "" {
						path = config.DefaultPath
					}
					if _, err := os.Stat(path); err == nil && !c.Bool("force") {
						return fmt.Errorf("%s already exists", path)
					}

					if err := config.Default().Write(path); err != nil {
						return err
					}
					plog.Infof("wrote %s", path)
					return nil
				},
			},
		},
	}
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
