// Copyright 2024 go-cap authors. All rights reserved.
// Use of this source code is governed by a MIT-style license that can be
// found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	gocap "github.com/cgngc/go-cap"
)

// Config keys.
const (
	keyOutput   = "output"
	keyVerbose  = "verbose"
	keyLogLevel = "log.level"

	keyQualifier = "generic-number.qualifier"
	keyNAI       = "generic-number.nai"
	keyNPI       = "generic-number.npi"
	keyAPRI      = "generic-number.apri"
	keyScreening = "generic-number.screening"
)

// app holds the state shared by the subcommands of one invocation.
type app struct {
	cfgFile string
	v       *viper.Viper
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{
		v:      viper.New(),
		logger: zap.NewNop(),
	}

	cmd := &cobra.Command{
		Use:   "capgap",
		Short: "Encode and decode CAP CallingAddressAndService parameters",
		Long: `capgap is a command-line tool for the CallingAddressAndService parameter of
CAP call gapping operations.

Examples:
  # Encode calling party 12345 with service key 42
  capgap encode --digits 12345 --service-key 42

  # Decode a parameter given in hex
  capgap decode 300b800606841321430581012a

  # Decode several parameters and print them as JSON
  capgap decode -o json 300b800606841321430581012a 300b81012a8006068413214305`,

		SilenceUsage: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.initConfig(); err != nil {
				return err
			}
			return a.initLogger(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.capgap.yaml)")
	pf.StringP("output", "o", string(FormatText), "Output format (text, json, xml, hex)")
	pf.BoolP("verbose", "v", false, "Enable verbose output")
	pf.String("log-level", "warn", "Log level (debug, info, warn, error)")

	a.v.BindPFlag(keyOutput, pf.Lookup("output"))
	a.v.BindPFlag(keyVerbose, pf.Lookup("verbose"))
	a.v.BindPFlag(keyLogLevel, pf.Lookup("log-level"))

	cmd.AddCommand(newEncodeCmd(a))
	cmd.AddCommand(newDecodeCmd(a))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func (a *app) initConfig() error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		a.v.AddConfigPath(home)
		a.v.SetConfigName(".capgap")
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("CAPGAP")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func (a *app) initLogger(cmd *cobra.Command) error {
	level := zapcore.WarnLevel
	if s := a.v.GetString(keyLogLevel); s != "" {
		if err := level.UnmarshalText([]byte(s)); err != nil {
			return fmt.Errorf("invalid log level %q: %w", s, err)
		}
	}
	if a.v.GetBool(keyVerbose) {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(cmd.ErrOrStderr())),
		level,
	)
	a.logger = zap.New(core).Named("capgap")
	gocap.SetLogger(a.logger.Named("cap"))

	if f := a.v.ConfigFileUsed(); f != "" {
		a.logger.Debug("using config file", zap.String("file", f))
	}
	return nil
}
