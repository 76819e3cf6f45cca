package analysis

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/syntree/pkg/config"
	"github.com/yaklabco/syntree/pkg/edit"
	"github.com/yaklabco/syntree/pkg/fsutil"
	"github.com/yaklabco/syntree/pkg/parser"
)

// DefaultMaxFixPasses bounds the fix loop. Rules whose fixes expose
// further fixable issues converge within a few passes; more than this
// suggests rules fighting each other.
const DefaultMaxFixPasses = 10

// Pipeline error types for categorization.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// PipelineResult contains the result of processing a single file.
type PipelineResult struct {
	// FileResult holds diagnostics and edits from the final pass.
	*FileResult

	// Path is the file path that was processed.
	Path string

	// OriginalInfo is the file state before processing.
	OriginalInfo *fsutil.FileInfo

	// Modified is true if the content was changed by fixes.
	Modified bool

	// ModifiedContent is the content after applying edits (nil if
	// unmodified).
	ModifiedContent []byte

	// Diff is the unified diff for dry-run mode (nil otherwise).
	Diff *edit.Diff

	// Skipped is true if the file was skipped.
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// BackupCreated is true if a backup was created for this file.
	BackupCreated bool

	// Written is true if the file was written to disk.
	Written bool

	// FixPasses is the number of fix passes performed.
	FixPasses int

	// TotalEditsApplied is the total number of edits applied across all
	// passes.
	TotalEditsApplied int
}

// Summary returns a short human-readable status for the result.
func (pr *PipelineResult) Summary() string {
	if pr.Skipped {
		return "skipped: " + pr.SkipReason
	}
	if pr.Written {
		if pr.BackupCreated {
			return "fixed (backup created)"
		}
		return "fixed"
	}
	if pr.Modified {
		return "changes pending"
	}
	if pr.FileResult != nil && pr.HasIssues() {
		return "issues found"
	}
	return "ok"
}

// PipelineOptions controls pipeline behavior.
type PipelineOptions struct {
	// Fix enables auto-fix mode.
	Fix bool

	// DryRun generates diffs without writing files.
	DryRun bool

	// Backup configures backup behavior.
	Backup fsutil.BackupConfig

	// StrictRaceDetection uses hash comparison for modification
	// detection. When false, only mod time and size are checked.
	StrictRaceDetection bool

	// VerifyAfterFix re-parses the fixed content and abandons the fix if
	// it introduced new syntax errors.
	VerifyAfterFix bool

	// MaxFixPasses limits fix iterations. Zero means
	// DefaultMaxFixPasses.
	MaxFixPasses int
}

// DefaultPipelineOptions returns sensible defaults.
func DefaultPipelineOptions() PipelineOptions {
	return PipelineOptions{
		Backup:              fsutil.DefaultBackupConfig(),
		StrictRaceDetection: true,
		VerifyAfterFix:      true,
	}
}

// BackupConfigFromConfig derives fsutil backup settings from the run
// configuration.
func BackupConfigFromConfig(cfg *config.Config) fsutil.BackupConfig {
	if cfg == nil {
		return fsutil.DefaultBackupConfig()
	}
	return fsutil.BackupConfig{
		Enabled: cfg.Backups.Enabled,
		Mode:    fsutil.BackupMode(cfg.Backups.Mode),
	}
}

// PipelineOptionsFromConfig derives pipeline options from the run
// configuration.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	opts := DefaultPipelineOptions()
	if cfg == nil {
		return opts
	}
	// Dry-run still applies fixes in memory so there is a diff to show.
	opts.Fix = cfg.Fix || cfg.DryRun
	opts.DryRun = cfg.DryRun
	opts.Backup = BackupConfigFromConfig(cfg)
	return opts
}

// Pipeline orchestrates the safe processing of a single file: check,
// fix in memory, verify, then write atomically.
type Pipeline struct {
	// Engine runs parsing and rule execution.
	Engine *Engine
}

// NewPipeline creates a pipeline over the given engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile runs the full pipeline for a single file:
//
//  1. Read and hash the original file.
//  2. Check; in fix mode, apply edits in memory and re-check until
//     stable or MaxFixPasses is reached.
//  3. Verify the fixed content still parses no worse than the original.
//  4. In dry-run mode, produce a diff and stop.
//  5. Refuse to write if the file changed underneath us.
//  6. Create a backup if configured, then write atomically.
func (p *Pipeline) ProcessFile(
	ctx context.Context,
	path string,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	originalContent, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	result, err := p.ProcessContent(ctx, path, originalContent, cfg, opts)
	if err != nil {
		return nil, err
	}
	result.OriginalInfo = info

	if !result.Modified || result.Skipped || opts.DryRun {
		return result, nil
	}

	modified, err := p.checkModified(ctx, info, opts.StrictRaceDetection)
	if err != nil {
		return nil, err
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	if opts.Backup.Enabled {
		created, err := fsutil.CreateBackup(ctx, path, opts.Backup)
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, path, result.ModifiedContent, info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	return result, nil
}

// ProcessContent runs the check and fix stages on in-memory content
// without touching the file system. Used by ProcessFile and directly in
// tests.
func (p *Pipeline) ProcessContent(
	ctx context.Context,
	path string,
	originalContent []byte,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	result := &PipelineResult{Path: path}

	maxPasses := opts.MaxFixPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxFixPasses
	}

	content := originalContent
	var fileResult *FileResult

	for range maxPasses {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("processing cancelled: %w", ctx.Err())
		default:
		}

		var checkErr error
		fileResult, checkErr = p.Engine.CheckFile(ctx, path, content, cfg)
		if checkErr != nil {
			return nil, checkErr
		}

		if !opts.Fix || len(fileResult.Edits) == 0 {
			break
		}

		content = []byte(edit.ApplySorted(string(content), fileResult.Edits))
		result.FixPasses++
		result.TotalEditsApplied += len(fileResult.Edits)
		result.Modified = true
	}

	result.FileResult = fileResult
	result.ModifiedContent = content

	if !result.Modified {
		result.ModifiedContent = nil
		return result, nil
	}

	if opts.VerifyAfterFix {
		before := len(parser.Parse(string(originalContent)).Errors)
		after := len(parser.Parse(string(content)).Errors)
		if after > before {
			result.Skipped = true
			result.SkipReason = fmt.Sprintf("fix introduced syntax errors (%d before, %d after)", before, after)
			result.Modified = false
			result.ModifiedContent = nil
			return result, nil
		}
	}

	if opts.DryRun {
		result.Diff = edit.GenerateDiff(path, string(originalContent), string(content))
	}

	return result, nil
}

func (p *Pipeline) checkModified(ctx context.Context, info *fsutil.FileInfo, strict bool) (bool, error) {
	var modified bool
	var err error
	if strict {
		modified, err = fsutil.CheckModified(ctx, info)
	} else {
		modified, err = fsutil.CheckModifiedQuick(ctx, info)
	}
	if err != nil {
		return false, fmt.Errorf("check modified: %w", err)
	}
	return modified, nil
}

// categorizeError wraps an error with the matching pipeline error type.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}
	return err
}
