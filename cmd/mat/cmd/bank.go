package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/msto63/mAT/internal/bank"
)

var (
	bankListDomain string
	bankListLimit  int
	bankListOffset int
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Verwaltet die Aufgaben-Datenbank",
	Long: `Verwaltet die lokale SQLite-Datenbank mit erzeugten Aufgaben und
aufgezeichneten Lösungswegen.`,
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "Listet gespeicherte Aufgaben",
	RunE:  runBankList,
}

var bankShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Zeigt eine Aufgabe mit ihrem Lösungsweg",
	Args:  cobra.ExactArgs(1),
	RunE:  runBankShow,
}

var bankStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Zeigt Statistiken der Bank",
	RunE:  runBankStats,
}

var bankDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Löscht eine Aufgabe samt Lösungsweg",
	Args:  cobra.ExactArgs(1),
	RunE:  runBankDelete,
}

func init() {
	bankListCmd.Flags().StringVar(&bankListDomain, "domain", "", "Nur Aufgaben dieser Domäne")
	bankListCmd.Flags().IntVar(&bankListLimit, "limit", 20, "Maximale Anzahl")
	bankListCmd.Flags().IntVar(&bankListOffset, "offset", 0, "Startposition")

	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankShowCmd)
	bankCmd.AddCommand(bankStatsCmd)
	bankCmd.AddCommand(bankDeleteCmd)
	rootCmd.AddCommand(bankCmd)
}

func openBank() (bank.ProblemBank, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return bank.NewSQLiteBank(bank.Config{Path: cfg.Bank.Path})
}

func runBankList(cmd *cobra.Command, args []string) error {
	b, err := openBank()
	if err != nil {
		printError("Bank öffnen", err)
		return err
	}
	defer b.Close()

	problems, err := b.ListProblems(cmd.Context(), bankListDomain, bankListLimit, bankListOffset)
	if err != nil {
		printError("Aufgaben listen", err)
		return err
	}

	if len(problems) == 0 {
		fmt.Println("Keine Aufgaben gespeichert.")
		return nil
	}

	for _, p := range problems {
		status := " "
		if p.Solved {
			status = "✓"
		}
		fmt.Printf("%s  %-36s  %-14s  seed=%-6d  %s\n", status, p.ID, p.Domain, p.Seed, p.State)
	}

	return nil
}

func runBankShow(cmd *cobra.Command, args []string) error {
	b, err := openBank()
	if err != nil {
		printError("Bank öffnen", err)
		return err
	}
	defer b.Close()

	p, err := b.GetProblem(cmd.Context(), args[0])
	if err != nil {
		printError("Aufgabe laden", err)
		return err
	}
	if p == nil {
		fmt.Printf("Aufgabe %s nicht gefunden.\n", args[0])
		return nil
	}

	fmt.Printf("Aufgabe:  %s\n", p.State)
	fmt.Printf("Domäne:   %s\n", p.Domain)
	fmt.Printf("Seed:     %d\n", p.Seed)
	fmt.Printf("Gelöst:   %v\n", p.Solved)

	steps, err := b.GetTrajectory(cmd.Context(), p.ID)
	if err != nil {
		printError("Lösungsweg laden", err)
		return err
	}
	if len(steps) > 0 {
		fmt.Println("\nLösungsweg:")
		for _, step := range steps {
			fmt.Printf("  %2d. %-24s %s (%s)\n", step.StepIndex+1, step.State, step.Human, step.Formal)
		}
	}

	return nil
}

func runBankStats(cmd *cobra.Command, args []string) error {
	b, err := openBank()
	if err != nil {
		printError("Bank öffnen", err)
		return err
	}
	defer b.Close()

	stats, err := b.Statistics(cmd.Context())
	if err != nil {
		printError("Statistiken laden", err)
		return err
	}

	keys := make([]string, 0, len(stats))
	for key := range stats {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Printf("%-28s %v\n", key, stats[key])
	}

	return nil
}

func runBankDelete(cmd *cobra.Command, args []string) error {
	b, err := openBank()
	if err != nil {
		printError("Bank öffnen", err)
		return err
	}
	defer b.Close()

	if err := b.DeleteProblem(cmd.Context(), args[0]); err != nil {
		printError("Aufgabe löschen", err)
		return err
	}
	fmt.Printf("Aufgabe %s gelöscht.\n", args[0])

	return nil
}
