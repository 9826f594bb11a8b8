package pipeline

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/golang/freetype/truetype"

	"github.com/wordhaze/wordhaze/pkg/cloud/glyph"
	"github.com/wordhaze/wordhaze/pkg/cloud/layout"
	"github.com/wordhaze/wordhaze/pkg/cloud/render"
	"github.com/wordhaze/wordhaze/pkg/errors"
	"github.com/wordhaze/wordhaze/pkg/fonts"
	"github.com/wordhaze/wordhaze/pkg/observability"
	"github.com/wordhaze/wordhaze/pkg/words"
)

// Runner executes the extract → layout → render pipeline.
//
// The Runner is stateless except for its logger; it stores no pipeline
// results, so one Runner can serve many runs with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger falls back to log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete pipeline. The returned Result always holds
// the extracted counts and layout; the image is written to opts.Output
// when one is set.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	result := &Result{}

	extractStart := time.Now()
	counts, err := r.Extract(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	result.Counts = counts
	result.Stats.ExtractTime = time.Since(extractStart)
	result.Stats.WordCount = len(counts)

	r.Logger.Info("extracted words",
		"words", len(counts),
		"duration", result.Stats.ExtractTime)

	layoutStart := time.Now()
	layoutResult, font, fontPath, err := r.Layout(ctx, counts, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = layoutResult
	result.FontPath = fontPath
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.Stats.Placed = len(layoutResult.Placements)
	result.Stats.Dropped = layoutResult.Dropped

	r.Logger.Info("computed layout",
		"placed", result.Stats.Placed,
		"dropped", result.Stats.Dropped,
		"duration", result.Stats.LayoutTime)
	if layoutResult.Exhausted {
		r.Logger.Warn("canvas exhausted; output truncated",
			"dropped", layoutResult.Dropped)
	}

	renderStart := time.Now()
	img, err := r.Render(ctx, layoutResult, font, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Image = img
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered image",
		"output", opts.Output,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// Extract runs the extraction stage: read the input sources and turn
// them into an ordered word-count list.
func (r *Runner) Extract(ctx context.Context, opts Options) ([]words.Count, error) {
	sources := len(opts.Inputs)
	if opts.Text != "" {
		sources++
	}
	observability.Pipeline().OnExtractStart(ctx, sources)
	start := time.Now()

	counts, err := r.extract(opts)

	observability.Pipeline().OnExtractComplete(ctx, len(counts), time.Since(start), err)
	return counts, err
}

func (r *Runner) extract(opts Options) ([]words.Count, error) {
	stopwords := words.DefaultStopwords()
	if opts.StopwordPath != "" {
		custom, err := words.LoadStopwords(opts.StopwordPath)
		if err != nil {
			return nil, err
		}
		stopwords = custom
	}

	text := opts.Text
	for _, input := range opts.Inputs {
		if input == "-" {
			if opts.Stdin == nil {
				return nil, errors.New(errors.ErrCodeInvalidInput, "input %q given but no stdin available", input)
			}
			data, err := readAll(opts.Stdin)
			if err != nil {
				return nil, err
			}
			text += "\n" + data
			continue
		}
		data, err := os.ReadFile(input)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "input file %q", input)
		}
		text += "\n" + string(data)
	}

	extractor := words.NewExtractor(
		words.WithStopwords(stopwords),
		words.WithMinCount(opts.MinCount),
	)
	return extractor.ExtractString(text), nil
}

// Layout runs the layout stage: normalize the counts and pack words
// onto the canvas. It also resolves and loads the font, which the
// render stage reuses.
func (r *Runner) Layout(ctx context.Context, counts []words.Count, opts Options) (layout.Result, *truetype.Font, string, error) {
	observability.Pipeline().OnLayoutStart(ctx, len(counts))
	start := time.Now()

	result, font, fontPath, err := r.layoutWords(counts, opts)

	observability.Pipeline().OnLayoutComplete(ctx, len(result.Placements), result.Dropped, time.Since(start), err)
	return result, font, fontPath, err
}

func (r *Runner) layoutWords(counts []words.Count, opts Options) (layout.Result, *truetype.Font, string, error) {
	sizer, fontPath, err := r.resolveSizer(opts.Font)
	if err != nil {
		return layout.Result{}, nil, "", err
	}
	r.Logger.Debug("resolved font", "path", fontPath)

	weighted := make([]layout.WeightedWord, len(counts))
	for i, c := range counts {
		weighted[i] = layout.WeightedWord{Text: c.Text, Weight: float64(c.N)}
	}
	normalized, err := layout.Normalize(weighted)
	if err != nil {
		return layout.Result{}, nil, "", err
	}

	engineOpts := []layout.Option{
		layout.WithMargin(opts.Margin),
		layout.WithPreferHorizontal(opts.PreferHorizontal),
		layout.WithMaxFontSize(opts.MaxFontSize),
		layout.WithSizing(opts.SizePolicy()),
		layout.WithSeed(opts.Seed),
	}
	if opts.OnPlace != nil {
		engineOpts = append(engineOpts, layout.WithProgress(opts.OnPlace))
	}

	engine := layout.NewEngine(sizer, opts.Width, opts.Height, engineOpts...)
	result, err := engine.Run(normalized)
	if err != nil {
		return layout.Result{}, nil, "", err
	}
	return result, sizer.Font(), fontPath, nil
}

// resolveSizer turns a font spec into a measuring sizer. When no font
// is requested and none of the common system fonts exist, it falls back
// to the built-in font rather than failing; an explicitly requested
// font that cannot be found is still an error.
func (r *Runner) resolveSizer(spec string) (*glyph.FaceSizer, string, error) {
	fontPath, err := glyph.Resolve(spec)
	if err != nil {
		if spec != "" {
			return nil, "", err
		}
		font, parseErr := fonts.DefaultFont()
		if parseErr != nil {
			return nil, "", err
		}
		r.Logger.Debug("no system font found, using built-in", "font", fonts.FamilyName)
		return glyph.NewFaceSizerFromFont(font), "builtin:" + fonts.FamilyName, nil
	}

	sizer, err := glyph.NewFaceSizer(fontPath)
	if err != nil {
		return nil, "", err
	}
	return sizer, fontPath, nil
}

// Render runs the render stage: rasterize the layout and, when an
// output path is set, write the image in the format the extension
// implies.
func (r *Runner) Render(ctx context.Context, layoutResult layout.Result, font *truetype.Font, opts Options) (image.Image, error) {
	observability.Pipeline().OnRenderStart(ctx, opts.Output)
	start := time.Now()

	img := render.Draw(layoutResult, font, render.Options{
		Width:  opts.Width,
		Height: opts.Height,
		Seed:   opts.Seed,
	})

	var err error
	if opts.Output != "" {
		err = render.Save(img, opts.Output)
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Output, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
	}
	return string(data), nil
}
