package batch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"codeberg.org/snonux/textprep/internal/record"
	"codeberg.org/snonux/textprep/internal/rewrite"
)

// Rewriter rewrites one payload
type Rewriter interface {
	Rewrite(ctx context.Context, payload string) rewrite.Result
}

// Summary counts the lines of a run
type Summary struct {
	Read      int
	Written   int
	Dropped   int
	Fallbacks int
}

// IOError reports an unreadable input or unwritable output
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Runner processes lines strictly in input order
type Runner struct {
	rewriter Rewriter
	logger   *slog.Logger
}

// NewRunner creates a runner around rw
func NewRunner(rw Rewriter, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{rewriter: rw, logger: logger}
}

// Run reads lines from in and writes each record whose rewritten payload is
// not blank to out. Blank results are dropped.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) (Summary, error) {
	var summary Summary
	reader := bufio.NewReader(in)
	writer := bufio.NewWriter(out)

	for {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return summary, &IOError{Op: "read", Path: "input", Err: readErr}
		}
		if line == "" && readErr != nil {
			break
		}

		summary.Read++
		rec := record.Parse(line)
		result := r.rewriter.Rewrite(ctx, rec.Payload)
		summary.Fallbacks += result.Fallbacks

		rec = rec.WithPayload(result.Text)
		if rec.Blank() {
			summary.Dropped++
			r.logger.Debug("dropping blank line", "line", summary.Read)
		} else {
			if _, err := writer.WriteString(rec.Format()); err != nil {
				return summary, &IOError{Op: "write", Path: "output", Err: err}
			}
			summary.Written++
		}

		if readErr != nil {
			break
		}
	}

	if err := writer.Flush(); err != nil {
		return summary, &IOError{Op: "write", Path: "output", Err: err}
	}
	return summary, nil
}

// RunFiles processes inputPath into outputPath. The output is written to a
// temporary file next to outputPath and renamed into place on success, so
// a failed run leaves no partial output behind.
func (r *Runner) RunFiles(ctx context.Context, inputPath, outputPath string) (Summary, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return Summary{}, &IOError{Op: "open", Path: inputPath, Err: err}
	}
	defer in.Close()

	dir := filepath.Dir(outputPath)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(outputPath)+"-*.tmp")
	if err != nil {
		return Summary{}, &IOError{Op: "create", Path: outputPath, Err: err}
	}
	tmpPath := tmp.Name()
	if err := tmp.Chmod(0644); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return Summary{}, &IOError{Op: "chmod", Path: outputPath, Err: err}
	}

	summary, err := r.Run(ctx, in, tmp)
	if err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			// Run only knows the stream roles, not the paths
			if ioErr.Path == "input" {
				ioErr.Path = inputPath
			} else {
				ioErr.Path = outputPath
			}
		}
		return summary, err
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return summary, &IOError{Op: "sync", Path: outputPath, Err: err}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return summary, &IOError{Op: "close", Path: outputPath, Err: err}
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		_ = os.Remove(tmpPath)
		return summary, &IOError{Op: "rename", Path: outputPath, Err: err}
	}

	r.logger.Info("batch finished",
		"input", inputPath,
		"output", outputPath,
		"read", summary.Read,
		"written", summary.Written,
		"dropped", summary.Dropped,
		"fallbacks", summary.Fallbacks)
	return summary, nil
}
