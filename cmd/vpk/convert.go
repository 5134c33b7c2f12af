package main

import (
	"fmt"
	"io"
	"os"

	konverter "github.com/arashsheyda/vue-prop-konverter"
	"github.com/spf13/cobra"
)

var (
	convertProfilesPath string
	convertWrite        bool
	convertFirst        bool
	convertCheck        bool
	convertLineWidth    int
	convertBindingName  string
)

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Convert prop declarations in a file",
	Long: `Convert every prop declaration in a file and print the result.

Pass "-" to read from stdin. With --write the file is updated in place;
with --check the command exits 1 when the file would change.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertProfilesPath, "profiles", "", "Path to custom profiles file")
	convertCmd.Flags().BoolVar(&convertWrite, "write", false, "Rewrite the file in place")
	convertCmd.Flags().BoolVar(&convertFirst, "first", false, "Convert only the first call site")
	convertCmd.Flags().BoolVar(&convertCheck, "check", false, "Exit 1 if the file would change, without writing")
	convertCmd.Flags().IntVar(&convertLineWidth, "line-width", 0, "Single-line layout threshold (0 for default)")
	convertCmd.Flags().StringVar(&convertBindingName, "binding-name", "", "Binding name used when the source has none")
}

// buildConverter creates a Converter from the shared CLI flags.
func buildConverter(profilesPath string, lineWidth int, bindingName string) (*konverter.Converter, error) {
	var opts []konverter.Option

	if profilesPath != "" {
		profiles, err := konverter.LoadProfilesFromFile(profilesPath)
		if err != nil {
			return nil, fmt.Errorf("loading profiles from %s: %w", profilesPath, err)
		}
		opts = append(opts, konverter.WithProfiles(profiles))
	}
	if lineWidth > 0 {
		opts = append(opts, konverter.WithLineWidth(lineWidth))
	}
	if bindingName != "" {
		opts = append(opts, konverter.WithBindingName(bindingName))
	}

	return konverter.New(opts...)
}

func runConvert(cmd *cobra.Command, args []string) error {
	target := args[0]

	conv, err := buildConverter(convertProfilesPath, convertLineWidth, convertBindingName)
	if err != nil {
		return err
	}

	var content []byte
	if target == "-" {
		content, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	} else {
		content, err = os.ReadFile(target)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}
	}

	input := string(content)
	var output string
	if convertFirst {
		output = conv.Convert(input)
	} else {
		output = conv.ConvertAll(input)
	}

	if convertCheck {
		if output != input {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s would change\n", target)
			return fmt.Errorf("check failed")
		}
		return nil
	}

	if convertWrite && target != "-" {
		if output == input {
			return nil
		}
		info, err := os.Stat(target)
		if err != nil {
			return fmt.Errorf("stating file: %w", err)
		}
		if err := os.WriteFile(target, []byte(output), info.Mode().Perm()); err != nil {
			return fmt.Errorf("writing file: %w", err)
		}
		if !quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "converted %s\n", target)
		}
		return nil
	}

	_, err = io.WriteString(cmd.OutOrStdout(), output)
	return err
}
