package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fintidy/fintidy/internal/analysis"
	"github.com/fintidy/fintidy/internal/cli"
	"github.com/fintidy/fintidy/internal/common"
	"github.com/fintidy/fintidy/internal/csvio"
	"github.com/fintidy/fintidy/internal/model"
	"github.com/fintidy/fintidy/internal/normalize"
)

const maxInvalidListed = 10

func processCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "process <input.csv>",
		Short: "Parse, normalize, and analyze a transactions CSV",
		Long: `Process a CSV of raw transactions (columns: date, merchant, amount).

Every record is normalized independently: dates to canonical YYYY-MM-DD,
merchants to a clean display name with a fuzzy-matched category, amounts to
exact two-digit decimals. Records that fail date or amount normalization are
kept and reported, never dropped.`,
		Args: cobra.ExactArgs(1),
		RunE: runProcess,
	}

	cmd.Flags().StringP("output", "o", "", "write cleaned transactions to this CSV file")
	cmd.Flags().StringP("report", "r", "", "write a plain-text analysis report to this file")
	cmd.Flags().Int("workers", 1, "parallel normalization workers")
	cmd.Flags().Int("match-threshold", normalize.DefaultMatchThreshold, "fuzzy merchant match acceptance score (0-100)")
	cmd.Flags().Int("min-year", 0, "oldest plausible transaction year (default: 1900)")
	cmd.Flags().Int("max-year", 0, "newest plausible transaction year (default: next year)")
	cmd.Flags().Int64("max-amount", 0, "absolute amount bound in whole currency units (default: 1000000)")
	cmd.Flags().BoolP("verbose", "v", false, "list invalid rows after processing")

	_ = viper.BindPFlag("process.output", cmd.Flags().Lookup("output"))
	_ = viper.BindPFlag("process.report", cmd.Flags().Lookup("report"))
	_ = viper.BindPFlag("process.workers", cmd.Flags().Lookup("workers"))
	_ = viper.BindPFlag("process.match_threshold", cmd.Flags().Lookup("match-threshold"))
	_ = viper.BindPFlag("process.min_year", cmd.Flags().Lookup("min-year"))
	_ = viper.BindPFlag("process.max_year", cmd.Flags().Lookup("max-year"))
	_ = viper.BindPFlag("process.max_amount", cmd.Flags().Lookup("max-amount"))
	_ = viper.BindPFlag("process.verbose", cmd.Flags().Lookup("verbose"))

	return cmd
}

func runProcess(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	input := args[0]

	raws, err := csvio.ReadFile(input)
	if err != nil {
		return common.NewUserError("could not read input file", err)
	}
	if len(raws) == 0 {
		return common.NewUserError("no transactions found in file", nil)
	}
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Parsed %d transactions from %s", len(raws), input)))

	normalizer := normalize.NewWithConfig(engineConfig())

	bar := progressbar.NewOptions(len(raws),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Normalizing transactions..."),
		progressbar.OptionClearOnFinish(),
	)
	txns, err := normalizer.NormalizeBatch(ctx, raws, viper.GetInt("process.workers"), func() {
		_ = bar.Add(1)
	})
	if err != nil {
		return err
	}

	stats := normalize.CollectStats(txns)
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Normalized %d/%d transactions (%.1f%% success rate)",
		stats.Valid, stats.Total, stats.SuccessRate)))
	if stats.DateErrors > 0 {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("%d date parsing errors", stats.DateErrors)))
	}
	if stats.AmountErrors > 0 {
		fmt.Println(cli.FormatWarning(fmt.Sprintf("%d amount parsing errors", stats.AmountErrors)))
	}

	if output := viper.GetString("process.output"); output != "" {
		written, err := csvio.WriteCleanedFile(output, txns)
		if err != nil {
			return fmt.Errorf("failed to write cleaned csv: %w", err)
		}
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Wrote %d cleaned transactions to %s", written, output)))
	}

	analyzer := analysis.New(txns)
	fmt.Println()
	fmt.Println(analysis.RenderReport(analyzer))

	if report := viper.GetString("process.report"); report != "" {
		if err := writeReport(report, analyzer); err != nil {
			return err
		}
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("Report saved to %s", report)))
	}

	if viper.GetBool("process.verbose") && stats.Invalid > 0 {
		listInvalid(txns, stats.Invalid)
	}
	return nil
}

// engineConfig builds the normalization config from viper, including an
// optional ordered category knowledge base from the config file.
func engineConfig() normalize.Config {
	cfg := normalize.Config{
		MatchThreshold: viper.GetInt("process.match_threshold"),
		MinYear:        viper.GetInt("process.min_year"),
		MaxYear:        viper.GetInt("process.max_year"),
	}
	if max := viper.GetInt64("process.max_amount"); max > 0 {
		cfg.MaxAmount = decimal.NewFromInt(max)
	}

	var rules []normalize.CategoryRule
	if err := viper.UnmarshalKey("categories", &rules); err == nil && len(rules) > 0 {
		cfg.Rules = rules
	}
	return cfg
}

func writeReport(path string, analyzer *analysis.Analyzer) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(analysis.TextReport(analyzer)), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

func listInvalid(txns []model.NormalizedTransaction, invalid int) {
	fmt.Println(cli.FormatWarning("Invalid transactions:"))
	listed := 0
	for _, t := range txns {
		if t.Valid {
			continue
		}
		fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("  row %d: %s", t.Line, strings.Join(t.Errors, ", "))))
		listed++
		if listed == maxInvalidListed {
			if remaining := invalid - listed; remaining > 0 {
				fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf("  ... and %d more", remaining)))
			}
			break
		}
	}
}
