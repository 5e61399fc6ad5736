package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var (
	stepDomain string
	stepJSON   bool
)

var stepCmd = &cobra.Command{
	Use:   "step <gleichung>...",
	Short: "Listet legale Umformungen für Gleichungszustände",
	Long: `Zu jedem übergebenen Zustand werden alle legalen Umformungen in
fester, reproduzierbarer Reihenfolge ausgegeben.

Ausgabe je Zustand:
  - Liste der Züge (Folgezustand, formale und menschliche Beschreibung)
  - "keine Züge" bei gelösten oder nicht weiter umformbaren Gleichungen
  - "nicht lesbar" bei Zuständen, die sich nicht parsen lassen`,
	Args: cobra.MinimumNArgs(1),
	RunE: runStep,
}

func init() {
	stepCmd.Flags().StringVar(&stepDomain, "domain", "", "Aufgaben-Domäne (default aus der Config)")
	stepCmd.Flags().BoolVar(&stepJSON, "json", false, "Ausgabe als JSON")
	rootCmd.AddCommand(stepCmd)
}

func runStep(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		printError("Konfiguration laden", err)
		return err
	}

	name := stepDomain
	if name == "" {
		name = cfg.Generator.Domain
	}

	results, err := newRegistry().Step(name, args)
	if err != nil {
		printError("Umformungen bestimmen", err)
		return err
	}

	if stepJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			printError("JSON ausgeben", err)
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	for i, result := range results {
		fmt.Printf("%s\n", args[i])
		switch {
		case !result.Valid:
			fmt.Println("  nicht lesbar")
		case len(result.Actions) == 0:
			fmt.Println("  keine Züge")
		default:
			for _, action := range result.Actions {
				fmt.Printf("  -> %-24s %s (%s)\n", action.Next, action.Human, action.Formal)
			}
		}
		if i < len(results)-1 {
			fmt.Println()
		}
	}

	return nil
}
