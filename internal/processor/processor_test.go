package processor

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/textprep/internal/batch"
	"codeberg.org/snonux/textprep/internal/cli"
	"codeberg.org/snonux/textprep/internal/config"
	"codeberg.org/snonux/textprep/internal/testutil"
	"codeberg.org/snonux/textprep/internal/transliteration"
)

func newTestProcessor(t *testing.T, flags *cli.Flags, tr transliteration.Transliterator) (*Processor, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	p := NewProcessor(flags, nil)
	var status, logs bytes.Buffer
	p.SetStatusWriter(&status)
	p.SetLogger(slog.New(slog.NewTextHandler(&logs, nil)))
	if tr != nil {
		p.SetTransliterator(tr)
	}
	return p, &status, &logs
}

func TestNewProcessor(t *testing.T) {
	flags := cli.NewFlags()
	p := NewProcessor(flags, nil)

	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
	if p.flags != flags {
		t.Error("Processor flags not set correctly")
	}
	if p.settings == nil || p.settings.Transliteration.Backend != "inputtools" {
		t.Errorf("Default settings not applied: %+v", p.settings)
	}
}

func TestRun(t *testing.T) {
	dir := testutil.CreateTestDirectory(t)
	input := filepath.Join(dir, "input", "corpus.txt")
	output := filepath.Join(dir, "output", "clean.txt")
	cfgPath := testutil.WriteSampleConfig(t, dir)

	testutil.CreateTestFile(t, input, []byte(
		"utt1\tnamaste duniya, 5 baar!\n"+
			"utt2\tHello 123\n"+
			"utt3\t***\n"+
			"क\u200dष\n"))

	tr := &testutil.MockTransliterator{
		Transliterations: map[string]string{
			"namaste": "नमस्ते",
			"duniya,": "दुनिया",
			"baar!":   "बार",
		},
	}
	flags := &cli.Flags{InputFile: input, OutputFile: output, ConfigFile: cfgPath, Lang: "hi"}
	p, status, logs := newTestProcessor(t, flags, tr)

	summary, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	testutil.AssertFileExists(t, output)
	testutil.AssertFileContains(t, output, "utt2\t")
	testutil.AssertFileContent(t, output, []byte(
		"utt1\tनमस्ते दुनिया पाँच बार\n"+
			"utt2\t एक सौ तेईस\n"+
			"कष\n"))

	want := batch.Summary{Read: 4, Written: 3, Dropped: 1, Fallbacks: 1}
	if summary != want {
		t.Errorf("summary = %+v, want %+v", summary, want)
	}
	for _, line := range []string{"Lines read: 4", "Lines written: 3", "Lines dropped (blank): 1", "Fallbacks (text kept as is): 1"} {
		if !strings.Contains(status.String(), line) {
			t.Errorf("status output missing %q:\n%s", line, status.String())
		}
	}
	if !strings.Contains(logs.String(), "transliteration failed") {
		t.Errorf("expected a fallback warning in logs:\n%s", logs.String())
	}
}

func TestRun_NoRangesWarns(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.txt")
	cfgPath := testutil.WriteSampleConfig(t, dir)
	testutil.CreateTestFile(t, input, []byte("வணக்கம்\n"))

	flags := &cli.Flags{InputFile: input, OutputFile: output, ConfigFile: cfgPath, Lang: "ta"}
	p, _, logs := newTestProcessor(t, flags, transliteration.None{})

	summary, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if summary.Written != 0 || summary.Dropped != 1 {
		t.Errorf("summary = %+v", summary)
	}
	testutil.AssertFileContent(t, output, nil)
	for _, msg := range []string{"no unicode ranges configured", "numbers cannot be spelled"} {
		if !strings.Contains(logs.String(), msg) {
			t.Errorf("logs missing %q:\n%s", msg, logs.String())
		}
	}
}

func TestRun_ConfigErrors(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.txt")
	testutil.CreateTestFile(t, input, []byte("abc\n"))

	badRange := filepath.Join(dir, "bad-range.yaml")
	testutil.CreateTestFile(t, badRange, []byte("unicode_ranges:\n  hi: [\"097F-0900\"]\n"))
	badYAML := filepath.Join(dir, "bad.yaml")
	testutil.CreateTestFile(t, badYAML, []byte("characters: [unclosed\n"))

	tests := []struct {
		name   string
		config string
	}{
		{"missing config", filepath.Join(dir, "missing.yaml")},
		{"unparseable config", badYAML},
		{"invalid range", badRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := filepath.Join(dir, "out-"+strings.ReplaceAll(tt.name, " ", "-")+".txt")
			flags := &cli.Flags{InputFile: input, OutputFile: output, ConfigFile: tt.config, Lang: "hi"}
			p, _, _ := newTestProcessor(t, flags, transliteration.None{})

			_, err := p.Run(context.Background())
			var cfgErr *config.ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("Run() error = %v, want *config.ConfigError", err)
			}
			testutil.AssertFileNotExists(t, output)
		})
	}
}

func TestRun_MissingInput(t *testing.T) {
	dir := t.TempDir()
	cfgPath := testutil.WriteSampleConfig(t, dir)
	flags := &cli.Flags{
		InputFile:  filepath.Join(dir, "missing.txt"),
		OutputFile: filepath.Join(dir, "out.txt"),
		ConfigFile: cfgPath,
		Lang:       "hi",
	}
	p, _, _ := newTestProcessor(t, flags, transliteration.None{})

	_, err := p.Run(context.Background())
	var ioErr *batch.IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("Run() error = %v, want *batch.IOError", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist", err)
	}
}

func TestRun_BackendSetupError(t *testing.T) {
	dir := t.TempDir()
	cfgPath := testutil.WriteSampleConfig(t, dir)
	input := filepath.Join(dir, "in.txt")
	testutil.CreateTestFile(t, input, []byte("abc\n"))

	settings := &cli.Settings{Transliteration: *transliteration.DefaultConfig()}
	settings.Transliteration.Backend = "openai"
	flags := &cli.Flags{InputFile: input, OutputFile: filepath.Join(dir, "out.txt"), ConfigFile: cfgPath, Lang: "hi"}

	p := NewProcessor(flags, settings)
	p.SetStatusWriter(io.Discard)
	p.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := p.Run(context.Background())
	if !errors.Is(err, transliteration.ErrNoAPIKey) {
		t.Errorf("Run() error = %v, want ErrNoAPIKey", err)
	}
}

func TestRun_NoneBackendEndToEnd(t *testing.T) {
	dir := t.TempDir()
	cfgPath := testutil.WriteSampleConfig(t, dir)
	input := filepath.Join(dir, "in.txt")
	output := filepath.Join(dir, "out.txt")
	testutil.CreateTestFile(t, input, []byte("id007\thello world\nid008\t3kg, 2.5!\n"))

	settings := &cli.Settings{Transliteration: *transliteration.DefaultConfig()}
	settings.Transliteration.Backend = "none"
	flags := &cli.Flags{InputFile: input, OutputFile: output, ConfigFile: cfgPath, Lang: "en"}

	p := NewProcessor(flags, settings)
	p.SetStatusWriter(io.Discard)
	p.SetLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	testutil.AssertFileContent(t, output, []byte("id007\thello world\nid008\tthreekg two point five\n"))
}
