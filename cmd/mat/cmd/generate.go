package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/mAT/internal/bank"
	"github.com/msto63/mAT/pkg/core/log"
)

var (
	generateDomain string
	generateSeed   uint64
	generateCount  int
	generateSave   bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Erzeugt lösbare Aufgaben aus einem Seed",
	Long: `Erzeugt Übungsaufgaben deterministisch aus einem Seed: derselbe
Seed liefert immer dieselbe Aufgabe. Mit --count werden mehrere Aufgaben
mit aufsteigenden Seeds erzeugt, mit --save landen sie in der Bank.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateDomain, "domain", "", "Aufgaben-Domäne (default aus der Config)")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "Start-Seed")
	generateCmd.Flags().IntVar(&generateCount, "count", 1, "Anzahl der Aufgaben")
	generateCmd.Flags().BoolVar(&generateSave, "save", false, "Aufgaben in der Bank speichern")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("Konfiguration laden", err)
		return err
	}
	logger := newLogger(cfg)

	name := generateDomain
	if name == "" {
		name = cfg.Generator.Domain
	}
	registry := newRegistry()

	var problemBank bank.ProblemBank
	if generateSave {
		problemBank, err = bank.NewSQLiteBank(bank.Config{Path: cfg.Bank.Path})
		if err != nil {
			printError("Bank öffnen", err)
			return err
		}
		defer problemBank.Close()
	}

	for i := 0; i < generateCount; i++ {
		seed := generateSeed + uint64(i)
		problem, err := registry.Generate(name, seed)
		if err != nil {
			printError("Aufgabe erzeugen", err)
			return err
		}
		fmt.Printf("%d\t%s\n", seed, problem)

		if problemBank != nil {
			p := &bank.Problem{Domain: name, Seed: seed, State: problem}
			if err := problemBank.SaveProblem(cmd.Context(), p); err != nil {
				logger.Error("Aufgabe konnte nicht gespeichert werden", err, log.Fields{"seed": seed})
			} else {
				logger.Debug("Aufgabe gespeichert", log.Fields{"id": p.ID, "seed": seed})
			}
		}
	}

	return nil
}
