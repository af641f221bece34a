// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package config defines the settings of the treedepth command and loads
// them from flags, environment variables and an optional YAML file through
// viper.
package config

import (
	"log/slog"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	bintree "github.com/absolutelightning/go-tree-depth"
)

// Keys understood by Load. Nested keys map to TREEDEPTH_CACHE_SIZE style
// environment variables.
const (
	KeySentinel  = "sentinel"
	KeyStrategy  = "strategy"
	KeyLevels    = "levels"
	KeyCacheSize = "cache.size"
	KeyLogLevel  = "log.level"
)

// StrategyBoth runs every strategy and checks that they agree.
const StrategyBoth = "both"

// EnvPrefix is the prefix of environment variables read by viper.
const EnvPrefix = "TREEDEPTH"

// Config is the validated configuration of a run.
type Config struct {
	// Sentinel marks an absent child in input sequences.
	Sentinel int
	// Strategies are the depth algorithms to run, in order.
	Strategies []bintree.Strategy
	// Levels limits rendering; 0 renders every level.
	Levels    int
	CacheSize int
	LogLevel  slog.Level
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySentinel, bintree.DefaultSentinel)
	v.SetDefault(KeyStrategy, StrategyBoth)
	v.SetDefault(KeyLevels, 0)
	v.SetDefault(KeyCacheSize, 128)
	v.SetDefault(KeyLogLevel, "info")
}

// Load reads and validates the configuration held by v.
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Sentinel:  v.GetInt(KeySentinel),
		Levels:    v.GetInt(KeyLevels),
		CacheSize: v.GetInt(KeyCacheSize),
	}

	strategies, err := ParseStrategies(v.GetString(KeyStrategy))
	if err != nil {
		return nil, errors.WithMessage(err, KeyStrategy)
	}
	cfg.Strategies = strategies

	if cfg.Levels < 0 {
		return nil, errors.Errorf("%s must not be negative, got %d", KeyLevels, cfg.Levels)
	}
	if cfg.CacheSize <= 0 {
		return nil, errors.Errorf("%s must be positive, got %d", KeyCacheSize, cfg.CacheSize)
	}
	if err := cfg.LogLevel.UnmarshalText([]byte(v.GetString(KeyLogLevel))); err != nil {
		return nil, errors.Wrap(err, KeyLogLevel)
	}
	return cfg, nil
}

// ParseStrategies accepts a single strategy name or "both".
func ParseStrategies(name string) ([]bintree.Strategy, error) {
	if strings.EqualFold(strings.TrimSpace(name), StrategyBoth) {
		return []bintree.Strategy{bintree.Recursive, bintree.Iterative}, nil
	}
	s, err := bintree.ParseStrategy(name)
	if err != nil {
		return nil, err
	}
	return []bintree.Strategy{s}, nil
}
