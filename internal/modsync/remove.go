// SPDX-License-Identifier: MPL-2.0

package modsync

import (
	"context"
	"os"

	"github.com/slnmod/slnmod/internal/discovery"
	"github.com/slnmod/slnmod/pkg/manifest"
)

// Remove deletes each target module's directory and its solution entries.
//
// A target whose manifest cannot be read is treated as already gone: its
// directory is deleted if present and the run continues. Otherwise the
// directory is deleted and the entries tied to the manifest's identifier are
// removed from all three regions; a target whose identifier is absent from the
// solution leaves the document unchanged. The solution is written once at the
// end, only if it changed.
func (s *Synchronizer) Remove(ctx context.Context, solutionPath string, targets []discovery.Module) (*Result, error) {
	doc, err := s.begin(ctx, solutionPath)
	if err != nil {
		return nil, err
	}
	res := &Result{Solution: solutionPath}

	for i := 0; i < len(targets); i++ {
		m := targets[i]

		id, extractErr := manifest.Extract(m.ManifestPath.String())
		if err := s.deleteDir(m, res); err != nil {
			return nil, err
		}
		if extractErr != nil {
			s.logger.Debug("manifest unreadable, treating module as removed", "module", m.Name, "error", extractErr)
			res.Skipped = append(res.Skipped, Outcome{Module: m.Name, Reason: ReasonManifestUnreadable})
			continue
		}

		if !doc.ContainsIdentifier(id) {
			s.logger.Debug("not in solution", "module", m.Name, "id", id)
			res.Skipped = append(res.Skipped, Outcome{Module: m.Name, Identifier: id, Reason: ReasonNotInSolution})
			continue
		}

		lines := doc.RemoveModule(m.Name, id)
		if lines == 0 {
			s.logger.Debug("identifier only outside managed regions", "module", m.Name, "id", id)
			res.Skipped = append(res.Skipped, Outcome{Module: m.Name, Identifier: id, Reason: ReasonNotInSolution})
			continue
		}
		s.logger.Debug("removed", "module", m.Name, "id", id, "lines", lines)
		res.Removed = append(res.Removed, Outcome{Module: m.Name, Identifier: id, Reason: ReasonRemoved})
	}

	return s.finish(doc, res)
}

// deleteDir removes a module directory if it exists.
func (s *Synchronizer) deleteDir(m discovery.Module, res *Result) error {
	if m.Dir == "" || !m.Dir.IsDir() {
		return nil
	}
	if s.dryRun {
		s.logger.Info("dry run, keeping module directory", "module", m.Name, "path", m.Dir)
		return nil
	}
	if err := os.RemoveAll(m.Dir.String()); err != nil {
		return &ModuleError{Op: opRemove, Module: m.Name, Path: m.Dir.String(), Cause: err}
	}
	res.DeletedDirs = append(res.DeletedDirs, m.Dir.String())
	return nil
}
