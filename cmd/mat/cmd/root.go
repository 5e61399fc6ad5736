package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mAT/internal/domain"
	"github.com/msto63/mAT/internal/domain/equations"
	"github.com/msto63/mAT/pkg/core/config"
	"github.com/msto63/mAT/pkg/core/log"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mat",
	Short: "meinALGEBRATRAINER - Lokaler Algebra-Trainer",
	Long: `meinALGEBRATRAINER erzeugt lösbare Übungsgleichungen und zeigt zu
jedem Zwischenstand alle legalen Umformungsschritte an.

Befehle:
  generate - Erzeugt Aufgaben aus einem Seed
  step     - Listet legale Umformungen für Gleichungszustände
  solve    - Startet den interaktiven Löser (TUI)
  bank     - Verwaltet die Aufgaben-Datenbank
  version  - Zeigt die Versionen an`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

func loadConfig() (*config.Config, error) {
	return config.Load(cfgFile)
}

func newLogger(cfg *config.Config) *log.Logger {
	level, err := log.ParseLevel(cfg.General.LogLevel)
	if err != nil {
		level = log.DefaultLevel()
	}
	if verbose {
		level = log.LevelDebug
	}
	format, _ := log.ParseFormat(cfg.General.LogFormat)

	return log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Name:   "mat",
	})
}

func newRegistry() *domain.Registry {
	return domain.NewRegistry(equations.New())
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}
