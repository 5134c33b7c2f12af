package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/arashsheyda/vue-prop-konverter/pkg/store"
	"github.com/arashsheyda/vue-prop-konverter/pkg/types"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	reportDatabase string
	reportFormat   string
	reportColor    string
)

// styles holds the color formatters for human report output
type styles struct {
	heading     *color.Color
	id          *color.Color
	path        *color.Color
	replacement *color.Color
	metadata    *color.Color
}

// newStyles creates color formatters for report output
// enabled=false respects --color=never and the NO_COLOR env var
func newStyles(enabled bool) *styles {
	s := &styles{
		heading:     color.New(color.Bold, color.FgHiWhite),
		id:          color.New(color.FgHiGreen),
		path:        color.New(color.Bold, color.FgHiBlue),
		replacement: color.New(color.FgYellow),
		metadata:    color.New(color.FgHiBlue),
	}

	if !enabled {
		s.heading.DisableColor()
		s.id.DisableColor()
		s.path.DisableColor()
		s.replacement.DisableColor()
		s.metadata.DisableColor()
	}

	return s
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a report from scan results",
	Long:  "Read recorded conversions from a database and output a summary report",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportDatabase, "database", "vpk.db", "Path to scan database")
	reportCmd.Flags().StringVar(&reportFormat, "format", "human", "Output format: human, json")
	reportCmd.Flags().StringVar(&reportColor, "color", "auto", "Color output: auto, always, never")
}

func runReport(cmd *cobra.Command, args []string) error {
	if reportDatabase == ":memory:" {
		return fmt.Errorf("cannot report from in-memory store")
	}
	if _, err := os.Stat(reportDatabase); err != nil {
		return fmt.Errorf("database not found: %s", reportDatabase)
	}

	s, err := store.New(store.Config{
		Path: reportDatabase,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer s.Close()

	conversions, err := s.GetAllConversions()
	if err != nil {
		return fmt.Errorf("retrieving conversions: %w", err)
	}

	sort.Slice(conversions, func(i, j int) bool {
		if conversions[i].ContentID != conversions[j].ContentID {
			return conversions[i].ContentID.Hex() < conversions[j].ContentID.Hex()
		}
		return conversions[i].Span.Start < conversions[j].Span.Start
	})

	switch reportFormat {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(conversions)
	case "human":
		return outputHumanReport(cmd, s, conversions)
	default:
		return fmt.Errorf("unknown output format: %s", reportFormat)
	}
}

func outputHumanReport(cmd *cobra.Command, s store.Store, conversions []*types.Conversion) error {
	switch reportColor {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	default:
		if !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("NO_COLOR") != "" {
			color.NoColor = true
		}
	}
	st := newStyles(!color.NoColor)

	out := cmd.OutOrStdout()

	if len(conversions) == 0 {
		fmt.Fprintln(out, "No conversions recorded.")
		return nil
	}

	// Cache paths by content ID to avoid repeated queries
	pathCache := make(map[types.ContentID]string)

	for i, c := range conversions {
		path, ok := pathCache[c.ContentID]
		if !ok {
			p, err := s.GetContentPath(c.ContentID)
			if err != nil {
				p = c.ContentID.Hex()
			}
			path = p
			pathCache[c.ContentID] = path
		}

		st.heading.Fprintf(out, "Conversion %d\n", i+1)
		fmt.Fprintf(out, "  %s %s\n", st.metadata.Sprint("File:"), st.path.Sprint(path))
		fmt.Fprintf(out, "  %s %s\n", st.metadata.Sprint("ID:"), st.id.Sprint(c.StructuralID))
		fmt.Fprintf(out, "  %s %s (offsets %d-%d)\n", st.metadata.Sprint("Profile:"), c.ProfileID, c.Span.Start, c.Span.End)
		fmt.Fprintf(out, "  %s\n", st.metadata.Sprint("Replacement:"))
		for _, line := range splitLines(c.Replacement) {
			fmt.Fprintf(out, "    %s\n", st.replacement.Sprint(line))
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "%d conversion(s) total\n", len(conversions))
	return nil
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}
