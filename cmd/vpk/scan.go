package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/arashsheyda/vue-prop-konverter/pkg/enum"
	"github.com/arashsheyda/vue-prop-konverter/pkg/store"
	"github.com/arashsheyda/vue-prop-konverter/pkg/types"
	"github.com/spf13/cobra"
)

var (
	scanProfilesPath  string
	scanOutputPath    string
	scanOutputFormat  string
	scanExtensions    string
	scanMaxFileSize   int64
	scanIncludeHidden bool
	scanIncremental   bool
	scanWrite         bool
	scanLineWidth     int
	scanBindingName   string
)

var scanCmd = &cobra.Command{
	Use:   "scan <target>",
	Short: "Scan a directory tree for convertible declarations",
	Long: `Scan a file or directory for prop declarations that can be converted.

Every located call site is rendered and recorded in the output database.
With --write, files are rewritten in place as they are scanned.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringVar(&scanProfilesPath, "profiles", "", "Path to custom profiles file")
	scanCmd.Flags().StringVar(&scanOutputPath, "output", "vpk.db", "Output database path (:memory: for none)")
	scanCmd.Flags().StringVar(&scanOutputFormat, "format", "human", "Output format: json, human")
	scanCmd.Flags().StringVar(&scanExtensions, "extensions", "", "Comma-separated file extensions to scan (default .vue,.js,.ts)")
	scanCmd.Flags().Int64Var(&scanMaxFileSize, "max-file-size", 10*1024*1024, "Maximum file size to scan (bytes)")
	scanCmd.Flags().BoolVar(&scanIncludeHidden, "include-hidden", false, "Include hidden files and directories")
	scanCmd.Flags().BoolVar(&scanIncremental, "incremental", false, "Skip already-scanned files")
	scanCmd.Flags().BoolVar(&scanWrite, "write", false, "Rewrite files in place")
	scanCmd.Flags().IntVar(&scanLineWidth, "line-width", 0, "Single-line layout threshold (0 for default)")
	scanCmd.Flags().StringVar(&scanBindingName, "binding-name", "", "Binding name used when the source has none")
}

func runScan(cmd *cobra.Command, args []string) error {
	target := args[0]

	// Validate target exists
	if _, err := os.Stat(target); err != nil {
		return fmt.Errorf("target does not exist: %s", target)
	}

	conv, err := buildConverter(scanProfilesPath, scanLineWidth, scanBindingName)
	if err != nil {
		return err
	}

	// Profile structural IDs, keyed by profile ID, for conversion records
	structuralIDs := make(map[string]string)
	for _, p := range conv.Profiles() {
		structuralIDs[p.ID] = p.StructuralID
	}

	// Create store
	s, err := store.New(store.Config{
		Path: scanOutputPath,
	})
	if err != nil {
		return fmt.Errorf("creating store: %w", err)
	}
	defer s.Close()

	// Create enumerator
	enumerator := enum.New(enum.Config{
		Root:          target,
		Extensions:    parseExtensions(scanExtensions),
		IncludeHidden: scanIncludeHidden,
		MaxFileSize:   scanMaxFileSize,
	})

	ctx := context.Background()

	// The enumerator fans the callback out across parallel readers, so
	// the summary counters must be atomic.
	var conversionCount, fileCount, changedCount, skippedCount atomic.Int64

	err = enumerator.Enumerate(ctx, func(path string, content []byte, id types.ContentID) error {
		if scanIncremental {
			exists, err := s.ContentExists(id)
			if err != nil {
				return fmt.Errorf("checking content: %w", err)
			}
			if exists {
				skippedCount.Add(1)
				return nil
			}
		}

		fileCount.Add(1)

		if err := s.AddContent(id, path, int64(len(content))); err != nil {
			return fmt.Errorf("storing content: %w", err)
		}

		text := string(content)
		results := conv.Results(text)
		if len(results) == 0 {
			return nil
		}
		changedCount.Add(1)

		for _, r := range results {
			conversionCount.Add(1)

			c := &types.Conversion{
				ContentID:   id,
				ProfileID:   r.Site.ProfileID,
				Span:        r.Site.Outer,
				Replacement: r.Replacement,
			}
			c.StructuralID = c.ComputeStructuralID(structuralIDs[r.Site.ProfileID])

			if err := s.AddConversion(c); err != nil {
				return fmt.Errorf("storing conversion: %w", err)
			}
		}

		if verbose {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %d conversion(s)\n", path, len(results))
		}

		if scanWrite {
			output := conv.ConvertAll(text)
			if output != text {
				info, err := os.Stat(path)
				if err != nil {
					return fmt.Errorf("stating file: %w", err)
				}
				if err := os.WriteFile(path, []byte(output), info.Mode().Perm()); err != nil {
					return fmt.Errorf("writing file: %w", err)
				}
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("scanning: %w", err)
	}

	// Summary goes to stderr when stdout carries JSON
	summary := cmd.OutOrStdout()
	if scanOutputFormat == "json" {
		summary = cmd.ErrOrStderr()
	}
	if !quiet {
		if scanIncremental {
			fmt.Fprintf(summary, "Scan complete: %d conversions in %d of %d files (%d skipped)\n", conversionCount.Load(), changedCount.Load(), fileCount.Load(), skippedCount.Load())
		} else {
			fmt.Fprintf(summary, "Scan complete: %d conversions in %d of %d files\n", conversionCount.Load(), changedCount.Load(), fileCount.Load())
		}
		fmt.Fprintf(summary, "Results stored in: %s\n", scanOutputPath)
	}

	if scanOutputFormat == "json" {
		conversions, err := s.GetAllConversions()
		if err != nil {
			return fmt.Errorf("retrieving conversions: %w", err)
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(conversions)
	}

	return nil
}

func parseExtensions(csv string) []string {
	if csv == "" {
		return nil
	}
	var exts []string
	for _, e := range strings.Split(csv, ",") {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}
	return exts
}
