package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/recipebox/internal/cliconfig"
	"github.com/bft-labs/recipebox/pkg/log"
	"github.com/bft-labs/recipebox/pkg/recipebox"
)

var longHelp = strings.TrimSpace(`
Keep your recipes in a local catalog.

The whole catalog is stored as one JSON document under a single key, either
as a file in the data directory or in a SQLite database. On first use the
catalog is seeded with a few sample recipes.
`)

var exampleUsage = strings.TrimSpace(`
  recipebox list
  recipebox show 1
  recipebox add --title Tea --description "Hot drink" --ingredient water --ingredient "tea bag" --step boil --step steep
  recipebox edit 1 --title "Carbonara"
  recipebox --backend sqlite --data-dir ~/recipes watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return recipebox.Version
}

// cli carries what every command needs after configuration is resolved.
type cli struct {
	cfg     cliconfig.Config
	cfgPath string
	out     io.Writer
	errOut  io.Writer
	logger  *log.ZerologAdapter
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	c := &cli{cfg: cliconfig.DefaultConfig(), out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "recipebox",
		Short:         "Keep your recipes in a local catalog",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.resolveConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runList(cmd.Context())
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	f := root.PersistentFlags()
	f.StringVar(&c.cfgPath, "config", "", "path to config file (default: $HOME/.recipebox/config.toml)")
	f.StringVar(&c.cfg.DataDir, "data-dir", c.cfg.DataDir, "directory holding the catalog")
	f.StringVar(&c.cfg.Backend, "backend", c.cfg.Backend, "storage backend: file, sqlite or memory")
	f.StringVar(&c.cfg.DBPath, "db-path", c.cfg.DBPath, "SQLite database file (defaults to data-dir/recipes.db)")
	f.StringVar(&c.cfg.StorageKey, "storage-key", c.cfg.StorageKey, "key the catalog is stored under")
	f.StringVar(&c.cfg.IDScheme, "id-scheme", c.cfg.IDScheme, "identifier scheme for new recipes: clock or uuid")
	f.IntVar(&c.cfg.MaxBlobBytes, "max-blob-bytes", c.cfg.MaxBlobBytes, "treat stored catalogs larger than this as corrupt")
	f.IntVar(&c.cfg.QuotaBytes, "quota-bytes", c.cfg.QuotaBytes, "reject writes larger than this (0 = unlimited)")
	f.BoolVar(&c.cfg.Seed, "seed", c.cfg.Seed, "seed sample recipes when the catalog is empty")
	f.DurationVar(&c.cfg.RedirectDelay, "redirect-delay", c.cfg.RedirectDelay, "pause before showing the list after a missing recipe")
	f.StringVar(&c.cfg.LogLevel, "log-level", c.cfg.LogLevel, "log level: debug, info, warn, error")
	for _, name := range []string{"max-blob-bytes", "storage-key"} {
		if err := f.MarkHidden(name); err != nil {
			fmt.Fprintf(errOut, "failed to hide %s flag: %v\n", name, err)
		}
	}

	root.AddCommand(
		c.listCmd(),
		c.showCmd(),
		c.addCmd(),
		c.editCmd(),
		c.deleteCmd(),
		c.seedCmd(),
		c.watchCmd(),
	)
	return root
}

// resolveConfig layers the config file, then RECIPEBOX_* variables, under
// the flags that were set explicitly.
func (c *cli) resolveConfig(cmd *cobra.Command) error {
	cfgFile := c.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}

	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&c.cfg, fc, changed); err != nil {
			return err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&c.cfg, changed); err != nil {
		return err
	}

	if err := c.cfg.Validate(); err != nil {
		return err
	}

	c.logger = cliconfig.Logger(c.cfg.LogLevel)
	c.logger.Debug("configuration", log.Any("config", c.cfg))
	return nil
}

// open creates the catalog and seeds it when configured to.
func (c *cli) open(ctx context.Context) (*recipebox.Catalog, error) {
	cat, err := recipebox.New(c.cfg.Library(), c.loggerOption())
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	if c.cfg.Seed {
		seeded := cat.SeedIfEmpty(ctx)
		c.logger.Debug("seed checked", log.Bool("seeded", seeded))
	}
	return cat, nil
}

func (c *cli) loggerOption() recipebox.Option {
	return recipebox.WithLogger(c.logger)
}
