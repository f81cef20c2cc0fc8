// SPDX-License-Identifier: MPL-2.0

package modsync

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/slnmod/slnmod/pkg/projectid"
	"github.com/slnmod/slnmod/pkg/solution"
)

const (
	opAdd    = "add"
	opRemove = "remove"
)

const (
	// ReasonAdded marks a module whose entries were inserted.
	ReasonAdded Reason = "added"
	// ReasonRemoved marks a module whose entries were deleted.
	ReasonRemoved Reason = "removed"
	// ReasonAlreadyPresent marks a module whose identifier is already in the solution.
	ReasonAlreadyPresent Reason = "already_present"
	// ReasonNoManifest marks a discovered directory without a manifest.
	ReasonNoManifest Reason = "no_manifest"
	// ReasonNotInSolution marks a removal target whose identifier is absent.
	ReasonNotInSolution Reason = "not_in_solution"
	// ReasonManifestUnreadable marks a removal target whose manifest could not
	// be read; it is treated as already gone.
	ReasonManifestUnreadable Reason = "manifest_unreadable"
)

type (
	// Reason explains the outcome of one module.
	Reason string

	// Options configures a Synchronizer.
	Options struct {
		// Layout controls how entries are written; the zero value means solution.DefaultLayout().
		Layout solution.Layout
		// Logger receives per-module progress. Nil discards it.
		Logger *log.Logger
		// DryRun computes the result without writing the solution or deleting directories.
		DryRun bool
	}

	// Synchronizer applies add and remove runs to solution files.
	Synchronizer struct {
		layout solution.Layout
		logger *log.Logger
		dryRun bool
	}

	// Outcome records what happened to one module.
	Outcome struct {
		Module     string       `json:"module" yaml:"module" toml:"module"`
		Identifier projectid.ID `json:"identifier,omitempty" yaml:"identifier,omitempty" toml:"identifier,omitempty"`
		Reason     Reason       `json:"reason" yaml:"reason" toml:"reason"`
	}

	// Result summarizes a run.
	Result struct {
		// Solution is the solution file path.
		Solution string
		// Modified reports whether the document text changed.
		Modified bool
		// Written reports whether the file was rewritten. It differs from
		// Modified only in dry-run mode or when the write failed.
		Written bool
		Added   []Outcome
		Removed []Outcome
		Skipped []Outcome
		// DeletedDirs lists module directories removed from disk.
		DeletedDirs []string
		// Inconsistencies holds the consistency report of the final document, if any.
		Inconsistencies []solution.Inconsistency
	}
)

// New creates a Synchronizer.
func New(opts Options) *Synchronizer {
	layout := opts.Layout
	if layout.ProjectType.IsZero() {
		layout = solution.DefaultLayout()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Synchronizer{
		layout: layout,
		logger: logger.WithPrefix("modsync"),
		dryRun: opts.DryRun,
	}
}

// Layout returns the layout entries are written with.
func (s *Synchronizer) Layout() solution.Layout { return s.layout }

// begin checks ctx and loads the solution. Cancellation is only honored here;
// once the run starts it completes or fails on its own.
func (s *Synchronizer) begin(ctx context.Context, solutionPath string) (*solution.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return solution.Load(solutionPath)
}

// finish records the final state and persists the document when it changed.
func (s *Synchronizer) finish(doc *solution.Document, res *Result) (*Result, error) {
	res.Modified = doc.Dirty()

	var ce *solution.ConsistencyError
	if err := doc.CheckConsistency(s.layout); err != nil && errors.As(err, &ce) {
		res.Inconsistencies = ce.Issues
		for _, issue := range ce.Issues {
			s.logger.Warn("solution regions disagree", "entry", issue.String())
		}
	}

	if !res.Modified {
		s.logger.Debug("solution unchanged, not writing", "path", res.Solution)
		return res, nil
	}
	if s.dryRun {
		s.logger.Info("dry run, solution not written", "path", res.Solution)
		return res, nil
	}

	written, err := doc.Save(res.Solution)
	if err != nil {
		return res, err
	}
	res.Written = written
	s.logger.Info("solution written", "path", res.Solution, "added", len(res.Added), "removed", len(res.Removed))
	return res, nil
}
