// The tally command is the operator CLI: dataset validation, summary
// stats, alias suggestions for unreconciled boundary names, and CSV
// export of filtered subsets.
package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tn-election-atlas/internal/config"
	"github.com/tn-election-atlas/internal/filter"
	"github.com/tn-election-atlas/internal/model"
	"github.com/tn-election-atlas/internal/store"
	"github.com/tn-election-atlas/internal/suggest"
	"github.com/tn-election-atlas/internal/validate"
)

var configPath string

func main() {
	config.LoadEnv()

	rootCmd := &cobra.Command{
		Use:   "tally",
		Short: "Tamil Nadu election atlas data tooling",
		Long:  `Validates, summarizes and exports the election dataset, and suggests alias-table entries for boundary names the reconciliation index cannot resolve.`,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "atlas.yaml", "path to config file")

	rootCmd.AddCommand(createCheckCmd())
	rootCmd.AddCommand(createStatsCmd())
	rootCmd.AddCommand(createSuggestCmd())
	rootCmd.AddCommand(createExportCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// load runs the full ingestion pipeline once and returns the snapshot.
func load(ctx context.Context) (*store.Snapshot, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return store.NewLoader(cfg.Data, logger).Load(ctx)
}

// createCheckCmd validates the dataset invariants and prints the report.
func createCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate dataset invariants",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := load(cmd.Context())
			if err != nil {
				return err
			}

			report := validate.Check(snap.Records)
			fmt.Printf("Records: %d\n", len(snap.Records))
			fmt.Printf("Violations: %d\n", len(report.Violations))
			for _, v := range report.Violations {
				fmt.Printf("  %s\n", v)
			}
			if !report.OK() {
				os.Exit(2)
			}
			return nil
		},
	}
}

// createStatsCmd prints a dataset summary.
func createStatsCmd() *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print seat and coverage summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := load(cmd.Context())
			if err != nil {
				return err
			}

			subset := snap.Records
			if year != 0 {
				subset = filter.Apply(snap.Records, model.FilterState{Year: year})
			}
			stats := snap.Aggregator.Summarize(subset)

			fmt.Printf("Records: %d  Winners: %d\n", stats.Records, stats.Winners)
			fmt.Println("\nSeats by alliance:")
			for _, alliance := range model.Alliances {
				fmt.Printf("  %-8s %d\n", alliance, stats.SeatsByAlliance[alliance])
			}
			fmt.Println("\nSeats by party (with unfiltered vote share):")
			for party, seats := range stats.SeatsByParty {
				fmt.Printf("  %-10s %3d seats  %5.2f%% votes\n", party, seats, stats.VoteShareByParty[party])
			}

			cov := snap.Index.Resolve(snap.Features)
			fmt.Printf("\nBoundary coverage: %d matched, %d unmatched\n", cov.Matched, cov.Unmatched)
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "restrict to one election year")
	return cmd
}

// createSuggestCmd proposes alias-table entries for unreconciled
// boundary names.
func createSuggestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "suggest-aliases",
		Short: "Suggest alias entries for unmatched boundary names",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := load(cmd.Context())
			if err != nil {
				return err
			}

			dict := suggest.BuildDictionary(snap.Records)
			candidates := suggest.Aliases(snap.Features, snap.Index, dict)
			if len(candidates) == 0 {
				fmt.Println("Every boundary feature reconciles; no aliases needed.")
				return nil
			}

			fmt.Printf("%d unreconciled features:\n\n", len(candidates))
			for _, c := range candidates {
				fmt.Printf("%q (id %d) -> %q\n", c.FeatureName, c.FeatureID, c.CleanedName)
				if len(c.Suggestions) == 0 {
					fmt.Println("  no canonical name within edit distance 2")
					continue
				}
				for _, s := range c.Suggestions {
					fmt.Printf("  candidate %q (distance %d)\n", s.Term, s.Distance)
				}
			}
			return nil
		},
	}
}

// createExportCmd writes a filtered subset as CSV.
func createExportCmd() *cobra.Command {
	var (
		out         string
		year        int
		party       string
		winnersOnly bool
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a filtered subset as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := load(cmd.Context())
			if err != nil {
				return err
			}

			state := model.FilterState{Year: year, Party: party, WinnersOnly: winnersOnly}
			subset := filter.Apply(snap.Records, state)

			f := os.Stdout
			if out != "" {
				f, err = os.Create(out)
				if err != nil {
					return fmt.Errorf("create export file: %w", err)
				}
				defer f.Close()
			}
			if err := writeCSV(f, subset); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "exported %d records\n", len(subset))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&year, "year", 0, "restrict to one election year")
	cmd.Flags().StringVar(&party, "party", "", "restrict to one party")
	cmd.Flags().BoolVar(&winnersOnly, "winners", false, "winners only")
	return cmd
}

func writeCSV(f *os.File, records []model.ElectionRecord) error {
	w := csv.NewWriter(f)
	header := []string{
		"Year", "Constituency_Name", "Constituency_Type", "District_Name",
		"Candidate", "Sex", "Age", "Party", "Education", "Profession",
		"Votes", "Valid_Votes", "Electors", "Vote_Share_Percentage",
		"Position", "Margin",
	}
	if err := w.Write(header); err != nil {
		return err
	}
	for i := range records {
		r := &records[i]
		row := []string{
			strconv.Itoa(r.Year), r.Constituency, r.ConstituencyType, r.District,
			r.Candidate, r.Sex, optIntStr(r.Age), r.Party, r.Education, r.Profession,
			strconv.Itoa(r.Votes), strconv.Itoa(r.ValidVotes), strconv.Itoa(r.Electors),
			optFloatStr(r.VoteSharePct), strconv.Itoa(r.Position), optIntStr(r.Margin),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func optIntStr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func optFloatStr(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
