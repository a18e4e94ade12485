/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for tokenbench.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/tokenbench/cmd/app"
	"bennypowers.dev/tokenbench/cmd/changelog"
	"bennypowers.dev/tokenbench/cmd/clear"
	"bennypowers.dev/tokenbench/cmd/export"
	"bennypowers.dev/tokenbench/cmd/inspect"
	"bennypowers.dev/tokenbench/cmd/lang"
	"bennypowers.dev/tokenbench/cmd/list"
	"bennypowers.dev/tokenbench/cmd/mcp"
	"bennypowers.dev/tokenbench/cmd/refresh"
	"bennypowers.dev/tokenbench/cmd/resolve"
	"bennypowers.dev/tokenbench/cmd/search"
	"bennypowers.dev/tokenbench/cmd/set"
	"bennypowers.dev/tokenbench/cmd/status"
	"bennypowers.dev/tokenbench/cmd/version"
	"bennypowers.dev/tokenbench/internal/logger"
	"bennypowers.dev/tokenbench/store"
)

var rootCmd = &cobra.Command{
	Use:   "tokenbench",
	Short: "Inspect, edit and export a design token set",
	Long: `tokenbench parses a design token set (colors, typography, radius, spacing
and shadow) from Figma variable exports, keeps an editable working copy in a
local store, and exports it back to Figma-shaped JSON, CSS or JavaScript.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(viper.GetBool(app.KeyVerbose))
	},
}

// Execute runs the root command. An interrupt cancels the command's
// context.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String(app.KeyRoot, ".", "Project root holding .config/tokenbench.{yaml,yml,json}")
	flags.StringP(app.KeyConfig, "c", "", "Config file (default: <root>/.config/tokenbench.yaml)")
	flags.StringP(app.KeySources, "s", "", "Directory searched for token source files")
	flags.String(app.KeyStore, "", "Store driver: "+strings.Join(store.ValidDrivers(), ", "))
	flags.String(app.KeyStorePath, "", "Store database or file path")
	flags.StringP(app.KeyLanguage, "l", "", "Typography language (en, zh, ja)")
	flags.String(app.KeySyntax, "", "Code syntax convention: css or js")
	flags.BoolP(app.KeyVerbose, "v", false, "Verbose output")

	for _, key := range []string{
		app.KeyRoot, app.KeyConfig, app.KeySources, app.KeyStore,
		app.KeyStorePath, app.KeyLanguage, app.KeySyntax, app.KeyVerbose,
	} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(search.Cmd)
	rootCmd.AddCommand(resolve.Cmd)
	rootCmd.AddCommand(refresh.Cmd)
	rootCmd.AddCommand(clear.Cmd)
	rootCmd.AddCommand(set.Cmd)
	rootCmd.AddCommand(lang.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(inspect.Cmd)
	rootCmd.AddCommand(changelog.Cmd)
	rootCmd.AddCommand(status.Cmd)
	rootCmd.AddCommand(mcp.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

func initConfig() {
	viper.SetEnvPrefix(app.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
