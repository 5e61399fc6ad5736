package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/mAT/internal/bank"
	"github.com/msto63/mAT/internal/tui/solver"
)

var (
	solveDomain   string
	solveSeed     uint64
	solveNoRecord bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Startet den interaktiven Löser (TUI)",
	Long: `Startet die Terminal-Oberfläche zum schrittweisen Lösen einer
erzeugten Aufgabe. Jeder Schritt wird in der Bank aufgezeichnet, sofern
--no-record nicht gesetzt ist.

Navigation:
  ↑/↓       - Umformung wählen
  Enter     - Umformung anwenden
  n         - Neue Aufgabe
  e         - Eigene Gleichung eingeben
  q         - Beenden`,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveDomain, "domain", "", "Aufgaben-Domäne (default aus der Config)")
	solveCmd.Flags().Uint64Var(&solveSeed, "seed", 0, "Seed der ersten Aufgabe")
	solveCmd.Flags().BoolVar(&solveNoRecord, "no-record", false, "Keine Aufzeichnung in der Bank")
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("Konfiguration laden", err)
		return err
	}

	name := solveDomain
	if name == "" {
		name = cfg.Generator.Domain
	}
	dom, err := newRegistry().Get(name)
	if err != nil {
		printError("Domäne auflösen", err)
		return err
	}

	var problemBank bank.ProblemBank
	if !solveNoRecord {
		problemBank, err = bank.NewSQLiteBank(bank.Config{Path: cfg.Bank.Path})
		if err != nil {
			printError("Bank öffnen", err)
			return err
		}
		defer problemBank.Close()
	}

	p := tea.NewProgram(
		solver.New(solver.Config{Domain: dom, Bank: problemBank, Seed: solveSeed}),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "TUI Fehler: %v\n", err)
		return err
	}

	return nil
}
