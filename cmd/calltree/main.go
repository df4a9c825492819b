// Command calltree builds a reverse call tree from a cscope.out or GNU
// GLOBAL tag database and prints it as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/standardbeagle/calltree/internal/config"
	"github.com/standardbeagle/calltree/internal/driver"
)

func main() {
	app := &cli.App{
		Name:  "calltree",
		Usage: "build a reverse call tree from a cscope.out or GNU GLOBAL database",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to a .calltree.kdl config file",
				Value:   ".calltree.kdl",
			},
			&cli.StringFlag{
				Name:    "backend",
				Aliases: []string{"b"},
				Usage:   "tag database backend: cscope or global",
			},
			&cli.StringFlag{
				Name:    "db",
				Aliases: []string{"d"},
				Usage:   "path to cscope.out, or the directory holding GTAGS/GRTAGS/GPATH",
			},
			&cli.StringSliceFlag{
				Name:    "root",
				Aliases: []string{"r"},
				Usage:   "root symbol to build a call tree for (repeatable)",
			},
			&cli.IntFlag{
				Name:  "depth",
				Usage: "maximum traversal depth; -1 disables the cap",
				Value: -1,
			},
			&cli.StringSliceFlag{
				Name:  "blacklist",
				Usage: "regex pattern (anchored at the start) for symbols to prune (repeatable)",
			},
			&cli.BoolFlag{
				Name:  "show-position",
				Usage: "attach the reference site to each caller edge",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log parse warnings and resolution diagnostics to stderr",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "calltree:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.LoadKDL(c.String("config"))
	if err != nil {
		return err
	}
	applyFlagOverrides(c, &cfg)

	forest, err := driver.Run(cfg)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(forest)
}

func applyFlagOverrides(c *cli.Context, cfg *config.Config) {
	if v := c.String("backend"); v != "" {
		cfg.Backend = v
	}
	if v := c.String("db"); v != "" {
		cfg.DBPath = v
	}
	if roots := c.StringSlice("root"); len(roots) > 0 {
		cfg.Roots = roots
	}
	if c.IsSet("depth") {
		cfg.MaxDepth = c.Int("depth")
	}
	if bl := c.StringSlice("blacklist"); len(bl) > 0 {
		cfg.Blacklist = bl
	}
	if c.IsSet("show-position") {
		cfg.ShowPosition = c.Bool("show-position")
	}
	if c.IsSet("verbose") {
		cfg.Verbose = c.Bool("verbose")
	}
}
