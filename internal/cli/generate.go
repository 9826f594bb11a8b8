package cli

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	wordio "github.com/wordhaze/wordhaze/pkg/io"
	"github.com/wordhaze/wordhaze/pkg/pipeline"
)

// generateCommand creates the generate command for producing word-cloud images.
//
// Input text comes from file arguments, "-" for stdin, or the --text flag.
// Option precedence is: built-in defaults, then the --config file, then
// explicit command-line flags.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		configPath string
		layoutJSON string
		noProgress bool
		flags      = pipeline.NewOptions()
	)

	cmd := &cobra.Command{
		Use:   "generate [files...]",
		Short: "Generate a word-cloud image from text",
		Long: `Generate reads text from the given files (or stdin via "-"), counts how
often each word appears, and packs the words onto a canvas with font sizes
proportional to their frequency. The result is written as an image.`,
		Example: `  wordhaze generate speech.txt -o speech.png
  cat notes.md | wordhaze generate - -o notes.png
  wordhaze generate --text "to be or not to be" -o bard.png --seed 7`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := pipeline.NewOptions()
			opts.Inputs = args

			if configPath != "" {
				cfg, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				cfg.apply(&opts)
			}

			// Explicit flags win over the config file.
			if cmd.Flags().Changed("text") {
				opts.Text = flags.Text
			}
			if cmd.Flags().Changed("output") {
				opts.Output = flags.Output
			}
			if cmd.Flags().Changed("width") {
				opts.Width = flags.Width
			}
			if cmd.Flags().Changed("height") {
				opts.Height = flags.Height
			}
			if cmd.Flags().Changed("margin") {
				opts.Margin = flags.Margin
			}
			if cmd.Flags().Changed("prefer-horizontal") {
				opts.PreferHorizontal = flags.PreferHorizontal
			}
			if cmd.Flags().Changed("ranks-only") {
				opts.RanksOnly = flags.RanksOnly
			}
			if cmd.Flags().Changed("max-font-size") {
				opts.MaxFontSize = flags.MaxFontSize
			}
			if cmd.Flags().Changed("seed") {
				opts.Seed = flags.Seed
			}
			if cmd.Flags().Changed("font") {
				opts.Font = flags.Font
			}
			if cmd.Flags().Changed("stopwords") {
				opts.StopwordPath = flags.StopwordPath
			}
			if cmd.Flags().Changed("min-count") {
				opts.MinCount = flags.MinCount
			}

			if opts.Output == "" {
				opts.Output = defaultOutput(args)
			}

			return c.runGenerate(cmd.Context(), opts, layoutJSON, noProgress)
		},
	}

	cmd.Flags().StringVar(&flags.Text, "text", "", "input text (instead of files)")
	cmd.Flags().StringVarP(&flags.Output, "output", "o", "", "output image path (default derived from input)")
	cmd.Flags().IntVar(&flags.Width, "width", flags.Width, "canvas width in pixels")
	cmd.Flags().IntVar(&flags.Height, "height", flags.Height, "canvas height in pixels")
	cmd.Flags().IntVar(&flags.Margin, "margin", flags.Margin, "minimum whitespace around each word")
	cmd.Flags().Float64Var(&flags.PreferHorizontal, "prefer-horizontal", flags.PreferHorizontal, "probability of horizontal orientation (0 to 1)")
	cmd.Flags().BoolVar(&flags.RanksOnly, "ranks-only", false, "size words by rank instead of frequency")
	cmd.Flags().IntVar(&flags.MaxFontSize, "max-font-size", flags.MaxFontSize, "upper bound on font size")
	cmd.Flags().Int64Var(&flags.Seed, "seed", flags.Seed, "random seed for reproducible layouts")
	cmd.Flags().StringVar(&flags.Font, "font", "", "font file path or system font name")
	cmd.Flags().StringVar(&flags.StopwordPath, "stopwords", "", "stopword file (one word per line; replaces the built-in list)")
	cmd.Flags().IntVar(&flags.MinCount, "min-count", flags.MinCount, "minimum occurrences for a word to be included")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file")
	cmd.Flags().StringVar(&layoutJSON, "layout-json", "", "also write the computed placements as JSON")
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the live placement display")

	return cmd
}

// defaultOutput derives an output path from the first input file, or
// falls back to cloud.png when reading stdin or --text.
func defaultOutput(inputs []string) string {
	for _, in := range inputs {
		if in == "-" {
			continue
		}
		return strings.TrimSuffix(in, filepath.Ext(in)) + ".png"
	}
	return "cloud.png"
}

// runGenerate executes the pipeline with the chosen progress display and
// prints a summary.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, layoutJSON string, noProgress bool) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	var result *pipeline.Result
	var err error
	if !noProgress && c.Logger.GetLevel() > LogDebug {
		result, err = c.runWithProgress(ctx, opts)
	} else {
		spin := newSpinnerWithContext(ctx, "Generating word cloud...")
		spin.Start()
		result, err = pipeline.NewRunner(c.Logger).Execute(ctx, opts)
		spin.Stop()
	}
	if err != nil {
		return err
	}

	if layoutJSON != "" {
		if err := wordio.ExportJSON(result.Layout, layoutJSON); err != nil {
			return err
		}
	}

	printSuccess("Generated word cloud (%d words placed)", result.Stats.Placed)
	if result.Layout.Exhausted {
		printWarning("Canvas filled up: %d words did not fit", result.Stats.Dropped)
	}
	printStats(result.Stats.WordCount, result.Stats.Placed, result.Stats.Dropped)
	printFile(opts.Output)
	if layoutJSON != "" {
		printFile(layoutJSON)
	}
	return nil
}
