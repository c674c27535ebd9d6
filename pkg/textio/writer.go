package textio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/relines/pkg/errors"
	"github.com/arthur-debert/relines/pkg/logging"
	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/rs/zerolog"
)

// OutputFile is one file to be written
type OutputFile struct {
	Path    string
	Content []byte
	// Mode defaults to 0644
	Mode os.FileMode
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	// DryRun logs what would be written without touching the disk
	DryRun bool
	// Overwrite replaces existing files; otherwise writing over an
	// existing file fails
	Overwrite bool
}

// Writer writes output files through a synthfs pipeline, so a batch of
// files is validated before anything is written.
type Writer struct {
	logger     zerolog.Logger
	dryRun     bool
	overwrite  bool
	filesystem filesystem.FullFileSystem
}

// NewWriter creates a writer on the real filesystem
func NewWriter(opts WriterOptions) *Writer {
	// Use PathAwareFileSystem to handle absolute paths directly
	osfs := filesystem.NewOSFileSystem("/")
	pathAwareFS := synthfs.NewPathAwareFileSystem(osfs, "/").WithAbsolutePaths()

	return &Writer{
		logger:     logging.GetLogger("textio.writer"),
		dryRun:     opts.DryRun,
		overwrite:  opts.Overwrite,
		filesystem: pathAwareFS,
	}
}

// WriteFile writes a single file
func (w *Writer) WriteFile(ctx context.Context, path string, content []byte) error {
	return w.WriteFiles(ctx, []OutputFile{{Path: path, Content: content}})
}

// WriteFiles writes every file in one synthfs run
func (w *Writer) WriteFiles(ctx context.Context, files []OutputFile) error {
	if len(files) == 0 {
		return nil
	}

	if w.dryRun {
		for _, f := range files {
			w.logger.Info().
				Str("path", f.Path).
				Int("bytes", len(f.Content)).
				Msg("Would write file")
		}
		return nil
	}

	sfs := synthfs.New()
	ops := make([]synthfs.Operation, 0, len(files))
	for i, f := range files {
		target, err := filepath.Abs(f.Path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "invalid output path %s", f.Path).
				WithDetail("path", f.Path)
		}
		mode := f.Mode
		if mode == 0 {
			mode = 0644
		}
		id := fmt.Sprintf("write_%d_%s_%d", i, filepath.Base(target), time.Now().UnixNano())

		if w.overwrite {
			ops = append(ops, sfs.CustomOperationWithID(id, overwriteFile(target, f.Content, mode)))
		} else {
			ops = append(ops, sfs.CreateFileWithID(id, target, f.Content, mode))
		}
	}

	w.logger.Debug().
		Int("operationCount", len(ops)).
		Bool("overwrite", w.overwrite).
		Msg("Executing synthfs operations")

	options := synthfs.DefaultPipelineOptions()
	if _, err := synthfs.RunWithOptions(ctx, w.filesystem, options, ops...); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write output files").
			WithDetail("files", len(files))
	}

	for _, f := range files {
		w.logger.Info().Str("path", f.Path).Int("bytes", len(f.Content)).Msg("Wrote file")
	}
	return nil
}

// overwriteFile replaces target, creating parent directories as needed
func overwriteFile(target string, content []byte, mode os.FileMode) func(context.Context, filesystem.FileSystem) error {
	return func(ctx context.Context, fs filesystem.FileSystem) error {
		// Ensure parent directory exists
		parentDir := filepath.Dir(target)
		if parentDir != "." && parentDir != "/" {
			if err := fs.MkdirAll(parentDir, 0755); err != nil {
				return fmt.Errorf("failed to create parent directory %s: %w", parentDir, err)
			}
		}
		// Remove existing file if it exists
		if err := fs.Remove(target); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove %s: %w", target, err)
		}
		if err := fs.WriteFile(target, content, mode); err != nil {
			return fmt.Errorf("failed to write file %s: %w", target, err)
		}
		return nil
	}
}
