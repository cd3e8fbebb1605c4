package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HM-aes/smbshield/internal/catalog"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "Browse the OWASP module catalog",
}

var modulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all modules in order",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("%-5s %-45s %-13s %s\n", "Code", "Module", "Difficulty", "Lessons")
		for _, m := range catalog.Modules() {
			free := ""
			if catalog.IsFreeSample(m.Code) {
				free = " (free sample)"
			}
			fmt.Printf("%-5s %-45s %-13s %d%s\n",
				m.Code, m.Name, m.DifficultyTier, len(catalog.Lessons(m.Code)), free)
		}
	},
}

var modulesLessonsCmd = &cobra.Command{
	Use:   "lessons <module-code>",
	Short: "List the lessons of a module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		mod, err := catalog.ModuleByCode(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s: %s\n%s\n\n", mod.Code, mod.Name, mod.Description)
		for _, l := range catalog.Lessons(mod.Code) {
			fmt.Printf("%-8s %s (%d min)\n", l.ID, l.Title, l.EstimatedMinutes)
		}
		return nil
	},
}

func init() {
	modulesCmd.AddCommand(modulesListCmd)
	modulesCmd.AddCommand(modulesLessonsCmd)
}
