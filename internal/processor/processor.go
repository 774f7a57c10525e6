package processor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"codeberg.org/snonux/textprep/internal/batch"
	"codeberg.org/snonux/textprep/internal/cli"
	"codeberg.org/snonux/textprep/internal/config"
	"codeberg.org/snonux/textprep/internal/numwords"
	"codeberg.org/snonux/textprep/internal/pattern"
	"codeberg.org/snonux/textprep/internal/rewrite"
	"codeberg.org/snonux/textprep/internal/transliteration"
)

// Processor handles one normalization run
type Processor struct {
	flags    *cli.Flags
	settings *cli.Settings
	logger   *slog.Logger
	status   io.Writer

	// transliterator overrides the configured backend when set
	transliterator transliteration.Transliterator
}

// NewProcessor creates a new processor
func NewProcessor(flags *cli.Flags, settings *cli.Settings) *Processor {
	if settings == nil {
		settings = &cli.Settings{Transliteration: *transliteration.DefaultConfig(), LogLevel: "info"}
	}
	return &Processor{
		flags:    flags,
		settings: settings,
		logger:   slog.Default(),
		status:   os.Stderr,
	}
}

// SetStatusWriter redirects the run summary
func (p *Processor) SetStatusWriter(w io.Writer) {
	p.status = w
}

// SetLogger replaces the logger
func (p *Processor) SetLogger(logger *slog.Logger) {
	p.logger = logger
}

// SetTransliterator replaces the configured transliteration backend
func (p *Processor) SetTransliterator(t transliteration.Transliterator) {
	p.transliterator = t
}

// Run normalizes the input file into the output file
func (p *Processor) Run(ctx context.Context) (batch.Summary, error) {
	cfg, err := config.Load(p.flags.ConfigFile)
	if err != nil {
		return batch.Summary{}, err
	}

	matchers, err := pattern.Compile(cfg, p.flags.Lang)
	if err != nil {
		return batch.Summary{}, &config.ConfigError{Path: p.flags.ConfigFile, Err: err}
	}
	if len(cfg.Ranges(p.flags.Lang)) == 0 {
		p.logger.Warn("no unicode ranges configured for language, all visible text will be dropped",
			"lang", p.flags.Lang, "config", p.flags.ConfigFile)
	}

	speller := numwords.New()
	if !speller.Supports(p.flags.Lang) {
		p.logger.Warn("numbers cannot be spelled in target language, keeping numerals",
			"lang", p.flags.Lang, "supported", speller.Languages())
	}

	tr, closeFn, err := p.newTransliterator(ctx)
	if err != nil {
		return batch.Summary{}, err
	}
	defer func() {
		if err := closeFn(); err != nil {
			p.logger.Warn("failed to close transliteration cache", "error", err)
		}
	}()

	p.logger.Debug("starting run",
		"input", p.flags.InputFile,
		"output", p.flags.OutputFile,
		"lang", p.flags.Lang,
		"backend", tr.Name())

	rewriter := rewrite.New(matchers, tr, speller, rewrite.WithLogger(p.logger))
	runner := batch.NewRunner(rewriter, p.logger)

	summary, err := runner.RunFiles(ctx, p.flags.InputFile, p.flags.OutputFile)
	if err != nil {
		return summary, err
	}

	p.printSummary(summary, tr.Name())
	return summary, nil
}

func (p *Processor) newTransliterator(ctx context.Context) (transliteration.Transliterator, func() error, error) {
	if p.transliterator != nil {
		return p.transliterator, func() error { return nil }, nil
	}
	tr, closeFn, err := transliteration.New(ctx, &p.settings.Transliteration)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up transliteration: %w", err)
	}
	return tr, closeFn, nil
}

func (p *Processor) printSummary(s batch.Summary, backend string) {
	fmt.Fprintf(p.status, "\n=== Text Preprocessing Summary ===\n")
	fmt.Fprintf(p.status, "Language: %s (transliteration: %s)\n", p.flags.Lang, backend)
	fmt.Fprintf(p.status, "Lines read: %d\n", s.Read)
	fmt.Fprintf(p.status, "Lines written: %d\n", s.Written)
	fmt.Fprintf(p.status, "Lines dropped (blank): %d\n", s.Dropped)
	if s.Fallbacks > 0 {
		fmt.Fprintf(p.status, "Fallbacks (text kept as is): %d\n", s.Fallbacks)
	}
	fmt.Fprintf(p.status, "==================================\n")
}
