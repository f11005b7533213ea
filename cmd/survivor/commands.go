package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zombierpg/survivor-api/internal/repositories/gamestate"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all save slots",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		out, err := a.states.ListSummaries(cmd.Context(), gamestate.ListSummariesInput{})
		if err != nil {
			return err
		}

		if len(out.Summaries) == 0 {
			fmt.Println("No saved characters.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tLEVEL\tHEALTH\tLAST PLAYED")
		for _, s := range out.Summaries {
			fmt.Fprintf(w, "%s\t%s\t%d\t%d/%d\t%s\n",
				s.ID, s.Name, s.Level, s.Health.Current, s.Health.Max, s.LastUpdated)
		}
		return w.Flush()
	},
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one character record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		out, err := a.states.Get(cmd.Context(), gamestate.GetInput{ID: args[0]})
		if err != nil {
			return err
		}

		data, err := json.MarshalIndent(out.State, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a save slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		if _, err := a.states.Delete(cmd.Context(), gamestate.DeleteInput{ID: args[0]}); err != nil {
			return err
		}
		fmt.Printf("Deleted %s\n", args[0])
		return nil
	},
}

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Export a save slot as stored, byte for byte",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		out, err := a.states.Export(cmd.Context(), gamestate.ExportInput{ID: args[0]})
		if err != nil {
			return err
		}

		if exportOutput == "" {
			_, err = os.Stdout.Write(out.Data)
			return err
		}
		if err := os.WriteFile(exportOutput, out.Data, 0o600); err != nil {
			return err
		}
		fmt.Printf("Exported %s to %s\n", args[0], exportOutput)
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Import a pre-slot legacy save, if one exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		out, err := a.states.MigrateLegacy(cmd.Context(), gamestate.MigrateLegacyInput{})
		if err != nil {
			return err
		}

		if !out.Migrated {
			fmt.Println("No legacy save found.")
			return nil
		}
		fmt.Printf("Migrated legacy save as %s\n", out.CharacterID)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
}
