// Command sheetcli is a front end over the spreadsheet core: set, get, and
// clear individual cells, print the whole printable rectangle, or drop
// into an interactive grid view.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/urfave/cli/v2"

	"github.com/halvorsen/spreadsheet/internal/config"
	"github.com/halvorsen/spreadsheet/packages/formula"
	"github.com/halvorsen/spreadsheet/packages/spreadsheet"
)

func init() {
	spreadsheet.SetFormulaParser(formula.Parse)
}

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
var headerStyle = lipgloss.NewStyle().Bold(true)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "sheetcli",
		Usage: "inspect and edit a single in-memory spreadsheet",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a sheetcli.yaml config file",
			},
		},
		Before: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return fmt.Errorf("sheetcli: loading config: %w", err)
			}
			level, err := parseLogLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("sheetcli: %w", err)
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			c.App.Metadata["config"] = cfg
			c.App.Metadata["sheet"] = loadSheet(cfg)
			return nil
		},
		Commands: []*cli.Command{
			setCommand(),
			getCommand(),
			clearCommand(),
			printCommand(),
			replCommand(),
		},
	}
}

func parseLogLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid logLevel %q: %w", name, err)
	}
	return level, nil
}

// loadSheet returns the process-lifetime Sheet every subcommand in a
// single invocation shares, bounded by the config's maxRows/maxCols
// override. sheetcli has no on-disk persistence (spec's core is an
// in-memory evaluation engine, not a file format), so each invocation
// starts from an empty sheet and set/get/clear see only their own edit;
// the `repl` subcommand keeps one sheet across edits for its whole session.
func loadSheet(cfg config.Config) *spreadsheet.Sheet {
	return spreadsheet.NewSheetWithBounds(spreadsheet.Size{Rows: cfg.MaxRows, Cols: cfg.MaxCols})
}

func sheetFrom(c *cli.Context) *spreadsheet.Sheet {
	return c.App.Metadata["sheet"].(*spreadsheet.Sheet)
}

func configFrom(c *cli.Context) config.Config {
	return c.App.Metadata["config"].(config.Config)
}

func setCommand() *cli.Command {
	return &cli.Command{
		Name:      "set",
		Usage:     "set a cell's text",
		ArgsUsage: "<addr> <text>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return cli.Exit("usage: sheetcli set <addr> <text>", 1)
			}
			addr, text := c.Args().Get(0), c.Args().Get(1)
			pos, err := spreadsheet.ParsePosition(addr)
			if err != nil {
				return fmt.Errorf("sheetcli: %w", err)
			}
			if err := sheetFrom(c).SetCell(pos, text); err != nil {
				slog.Error("edit rejected", "addr", addr, "error", err)
				return fmt.Errorf("sheetcli: %w", err)
			}
			return nil
		},
	}
}

func getCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "print a cell's value and stored text",
		ArgsUsage: "<addr>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: sheetcli get <addr>", 1)
			}
			addr := c.Args().Get(0)
			pos, err := spreadsheet.ParsePosition(addr)
			if err != nil {
				return fmt.Errorf("sheetcli: %w", err)
			}
			cell, err := sheetFrom(c).GetCell(pos)
			if err != nil {
				return fmt.Errorf("sheetcli: %w", err)
			}
			if cell == nil {
				fmt.Println("(empty)")
				return nil
			}
			if ferr, ok := cell.GetValue().(*spreadsheet.FormulaError); ok {
				slog.Warn("formula evaluated to an error", "addr", addr, "token", ferr.Token())
			}
			fmt.Printf("text:  %s\nvalue: %v\n", cell.GetText(), cell.GetValue())
			return nil
		},
	}
}

func clearCommand() *cli.Command {
	return &cli.Command{
		Name:      "clear",
		Usage:     "clear a cell",
		ArgsUsage: "<addr>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return cli.Exit("usage: sheetcli clear <addr>", 1)
			}
			pos, err := spreadsheet.ParsePosition(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("sheetcli: %w", err)
			}
			if err := sheetFrom(c).ClearCell(pos); err != nil {
				return fmt.Errorf("sheetcli: %w", err)
			}
			return nil
		},
	}
}

func printCommand() *cli.Command {
	return &cli.Command{
		Name:  "print",
		Usage: "print the printable rectangle",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "texts", Usage: "print raw stored text instead of values"},
		},
		Action: func(c *cli.Context) error {
			sheet := sheetFrom(c)
			cfg := configFrom(c)
			fmt.Println(headerStyle.Render(fmt.Sprintf("printable size: %+v", sheet.GetPrintableSize())))
			if c.Bool("texts") {
				return sheet.PrintTexts(os.Stdout, cfg.PrintDelimiter)
			}
			return sheet.PrintValues(os.Stdout, cfg.PrintDelimiter)
		},
	}
}
