package main

import (
	"os"

	"github.com/jpicht/vsel/lib/config"
	"github.com/jpicht/vsel/lib/vsel"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type globalFlags struct {
	config string
	debug  bool
}

// newRootCmd builds the vsel command tree
func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	root := &cobra.Command{
		Use:           "vsel",
		Short:         "Hide text in text with Unicode variation selectors",
		Long:          "vsel appends invisible variation selectors to the characters of a carrier text, one per byte of a secret, and recovers them again.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&g.config, "config", "", "config file (default $XDG_CONFIG_HOME/vsel/config.yml)")
	root.PersistentFlags().BoolVar(&g.debug, "debug", false, "verbose development logging")

	root.AddCommand(
		newEncodeCmd(g),
		newDecodeCmd(g),
		newChatCmd(g),
		newQueryCmd(g),
	)
	return root
}

// load resolves the configuration: defaults, then the global file, then
// the file given with --config
func (g *globalFlags) load() (config.Config, error) {
	cfg := config.Default()

	if fc, err := config.LoadGlobal(); err == nil {
		if cfg, err = fc.Apply(cfg); err != nil {
			return cfg, err
		}
	}

	if g.config != "" {
		fc, err := config.LoadFile(g.config)
		if err != nil {
			return cfg, err
		}
		if cfg, err = fc.Apply(cfg); err != nil {
			return cfg, err
		}
	}

	if g.debug {
		cfg.Development = true
		cfg.Level = zapcore.DebugLevel
	}
	return cfg, nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.Level)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

// setup loads the configuration and builds the logger
func (g *globalFlags) setup() (config.Config, *zap.Logger, error) {
	cfg, err := g.load()
	if err != nil {
		return cfg, nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, logger, nil
}

func permuter(seed int64) vsel.Permuter {
	if seed == 0 {
		return nil
	}
	return vsel.NewSeededPermuter(seed)
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
