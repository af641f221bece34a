// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package cmd implements the treedepth command line on top of
// github.com/spf13/cobra. Flags are bound to viper, so every setting can
// also come from a TREEDEPTH_* environment variable or from a YAML config
// file ($HOME/.treedepth.yaml unless --config says otherwise).
package cmd

import (
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	bintree "github.com/absolutelightning/go-tree-depth"
	"github.com/absolutelightning/go-tree-depth/internal/config"
	"github.com/absolutelightning/go-tree-depth/internal/ctxlog"
)

// cli holds the state shared by the commands of one root command.
type cli struct {
	v       *viper.Viper
	cfgFile string

	cfg   *config.Config
	cache *bintree.Cache[int]
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}
	config.SetDefaults(c.v)

	root := &cobra.Command{
		Use:   "treedepth",
		Short: "Measure the maximum depth of binary trees",
		Long: `treedepth builds binary trees from level-order sequences such as
"[3, 9, 20, null, null, 15, 7]" and measures their maximum depth with a
recursive depth-first or an iterative breadth-first algorithm.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default $HOME/.treedepth.yaml)")
	flags.Int("sentinel", bintree.DefaultSentinel, "value marking an absent child in a sequence")
	flags.String("strategy", config.StrategyBoth, "depth strategy: recursive, iterative or both")
	flags.Int("cache-size", 128, "number of trees kept in the build cache")
	flags.String("log-level", "info", "log level: debug, info, warn or error")

	c.bind(config.KeySentinel, flags.Lookup("sentinel"))
	c.bind(config.KeyStrategy, flags.Lookup("strategy"))
	c.bind(config.KeyCacheSize, flags.Lookup("cache-size"))
	c.bind(config.KeyLogLevel, flags.Lookup("log-level"))

	root.AddCommand(
		c.newDepthCmd(),
		c.newRenderCmd(),
		c.newDemoCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command line with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func (c *cli) bind(key string, flag *pflag.Flag) {
	if err := c.v.BindPFlag(key, flag); err != nil {
		panic(err)
	}
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if err := c.readConfig(); err != nil {
		return err
	}

	cfg, err := config.Load(c.v)
	if err != nil {
		return errors.WithMessage(err, "invalid configuration")
	}
	cache, err := bintree.NewCache[int](cfg.CacheSize)
	if err != nil {
		return err
	}
	c.cfg, c.cache = cfg, cache

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	cmd.SetContext(ctxlog.WithLogger(cmd.Context(), logger))

	logger.Debug("configuration loaded",
		"file", c.v.ConfigFileUsed(),
		"sentinel", cfg.Sentinel,
		"strategies", cfg.Strategies,
		"levels", cfg.Levels,
		"cache_size", cfg.CacheSize)
	return nil
}

func (c *cli) readConfig() error {
	c.v.SetEnvPrefix(config.EnvPrefix)
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	c.v.AutomaticEnv()

	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
		return errors.Wrapf(c.v.ReadInConfig(), "read config %s", c.cfgFile)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	c.v.AddConfigPath(home)
	c.v.SetConfigName(".treedepth")
	c.v.SetConfigType("yaml")
	if err := c.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return errors.Wrap(err, "read config")
	}
	return nil
}
