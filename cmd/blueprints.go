// This file implements the blueprints command for inspecting the local
// blueprint store.
package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/veltaire/planforge/core/store"
)

var blueprintsLimit int

var blueprintsCmd = &cobra.Command{
	Use:   "blueprints",
	Short: "List previously generated blueprints",
	Long: `List blueprints persisted to the local store by generate --save.

Examples:
  planforge blueprints
  planforge blueprints show <id>`,
	RunE: runBlueprintsList,
}

var blueprintsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one stored blueprint as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlueprintsShow,
}

func init() {
	blueprintsCmd.Flags().IntVar(&blueprintsLimit, "limit", 20, "maximum number of blueprints to list")

	blueprintsCmd.AddCommand(blueprintsShowCmd)
	rootCmd.AddCommand(blueprintsCmd)
}

func openStore() (*store.Store, func(), error) {
	manager, _, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	db, err := store.Open(manager.Get().Store.Path)
	if err != nil {
		manager.Close()
		return nil, nil, fmt.Errorf("failed to open blueprint store: %w", err)
	}

	cleanup := func() {
		db.Close()
		manager.Close()
	}
	return db, cleanup, nil
}

func runBlueprintsList(cmd *cobra.Command, args []string) error {
	db, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	records, err := db.List(cmd.Context(), blueprintsLimit)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOMPANY\tPATTERN\tSCORE\tCREATED")
	for _, rec := range records {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			rec.ID, rec.Company, rec.Pattern, rec.QualityScore,
			rec.CreatedAt.Format(time.RFC3339))
	}
	return w.Flush()
}

func runBlueprintsShow(cmd *cobra.Command, args []string) error {
	db, cleanup, err := openStore()
	if err != nil {
		return err
	}
	defer cleanup()

	rec, err := db.Get(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("no blueprint with id %s", args[0])
	}
	return printJSON(rec.Blueprint)
}
