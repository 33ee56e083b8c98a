/*
Copyright © 2026 The lccollect authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/livingcost/lccollect/internal/ioconfig"
	"github.com/livingcost/lccollect/internal/iofs"
	"github.com/livingcost/lccollect/internal/iologger"
	app "github.com/livingcost/lccollect/pkg"
	"github.com/livingcost/lccollect/pkg/config"
)

var (
	homeDir string
	cfg     *config.Config
)

// rootCmd represents the base command when called without any
// subcommands.
var rootCmd = &cobra.Command{
	Version: fmt.Sprintf("version: %s\nbuild:   %s",
		app.Version, app.Build),
	Use:   "lccollect",
	Short: "lccollect gathers product prices and wage indicators",
	Long: `lccollect is the data-collection service of the living-cost
database. It gathers product prices from a pricing API and wage
indicators from a labor-statistics API, normalizes the values, and
records them in PostgreSQL history tables.

Commands:
  - migrate: create or update the database schema
  - prices:  run one price collection cycle
  - wages:   run one wage collection cycle
  - run:     run collection cycles on a fixed interval

Configuration precedence (highest to lowest):
  1. Platform variables (DATABASE_URL, CANOPY_API_KEY)
  2. Environment variables (LCCOLLECT_*)
  3. Config file (~/.config/lccollect/config.yaml)
  4. Built-in defaults

Nested fields use underscores:
database.host becomes LCCOLLECT_DATABASE_HOST.`,
	PersistentPreRunE: bootstrap,
	RunE:              runRoot,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// A .env file in the working directory is a convenience for local
	// development; its absence is not an error.
	_ = godotenv.Load()

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults. Reconfigured below
	// once the user's settings are known.
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	err = iologger.Init(config.LogDir(homeDir), defaultLog, true)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFiles(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if cfg, err = ioconfig.Load(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = iologger.Init(
		config.LogDir(homeDir), cfg.Log, true,
	); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir))

	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to
// happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Remove the automatic "lccollect version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false,
		"version for lccollect")

	rootCmd.AddCommand(getMigrateCmd())
	rootCmd.AddCommand(getPricesCmd())
	rootCmd.AddCommand(getWagesCmd())
	rootCmd.AddCommand(getRunCmd())
}
