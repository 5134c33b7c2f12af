package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	konverter "github.com/arashsheyda/vue-prop-konverter"
	"github.com/arashsheyda/vue-prop-konverter/pkg/profile"
	"github.com/spf13/cobra"
)

var (
	profilesPath   string
	profilesFormat string
)

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "Manage conversion profiles",
	Long:  "Commands for listing and inspecting conversion profiles",
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available profiles",
	Long:  "Display all available conversion profiles with their IDs and macros",
	RunE:  runProfilesList,
}

func init() {
	profilesCmd.AddCommand(profilesListCmd)
	profilesListCmd.Flags().StringVar(&profilesPath, "profiles", "", "Path to custom profiles file")
	profilesListCmd.Flags().StringVar(&profilesFormat, "format", "table", "Output format: table, json")
}

func runProfilesList(cmd *cobra.Command, args []string) error {
	var profiles []*profile.Profile
	var err error

	if profilesPath != "" {
		profiles, err = konverter.LoadProfilesFromFile(profilesPath)
		if err != nil {
			return fmt.Errorf("loading profiles from %s: %w", profilesPath, err)
		}
	} else {
		profiles, err = profile.NewLoader().LoadBuiltinProfiles()
		if err != nil {
			return fmt.Errorf("loading builtin profiles: %w", err)
		}
	}

	switch profilesFormat {
	case "json":
		return outputProfilesJSON(cmd, profiles)
	case "table":
		return outputProfilesTable(cmd, profiles)
	default:
		return fmt.Errorf("unknown output format: %s", profilesFormat)
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func outputProfilesJSON(cmd *cobra.Command, profiles []*profile.Profile) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(profiles)
}

func outputProfilesTable(cmd *cobra.Command, profiles []*profile.Profile) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "ID\tMacro\tBinding\tName\n")
	fmt.Fprintf(w, "--\t-----\t-------\t----\n")

	for _, p := range profiles {
		binding := p.BindingKeyword + " " + p.BindingName
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Macro, binding, p.Name)
	}

	return nil
}
