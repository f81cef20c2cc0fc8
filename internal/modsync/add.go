// SPDX-License-Identifier: MPL-2.0

package modsync

import (
	"context"

	"github.com/slnmod/slnmod/internal/discovery"
	"github.com/slnmod/slnmod/pkg/manifest"
)

// Add inserts every module of the list that is not yet in the solution.
//
// Modules are processed in order. A module without a manifest is skipped; a
// manifest that cannot be read or parsed aborts the run, since the caller asked
// for that module to be added. A module whose identifier already occurs in the
// solution is skipped, which makes repeated runs no-ops. The solution is
// written once at the end, only if it changed.
func (s *Synchronizer) Add(ctx context.Context, solutionPath string, modules []discovery.Module) (*Result, error) {
	doc, err := s.begin(ctx, solutionPath)
	if err != nil {
		return nil, err
	}
	res := &Result{Solution: solutionPath}

	for i := 0; i < len(modules); i++ {
		m := modules[i]
		if !m.HasManifest() {
			s.logger.Debug("no manifest, skipping", "module", m.Name, "path", m.ManifestPath)
			res.Skipped = append(res.Skipped, Outcome{Module: m.Name, Reason: ReasonNoManifest})
			continue
		}

		id, err := manifest.Extract(m.ManifestPath.String())
		if err != nil {
			return nil, &ModuleError{Op: opAdd, Module: m.Name, Path: m.ManifestPath.String(), Cause: err}
		}

		if doc.ContainsIdentifier(id) {
			s.logger.Debug("already in solution", "module", m.Name, "id", id)
			res.Skipped = append(res.Skipped, Outcome{Module: m.Name, Identifier: id, Reason: ReasonAlreadyPresent})
			continue
		}

		if err := doc.AddModule(s.layout, m.Name, id); err != nil {
			return nil, &ModuleError{Op: opAdd, Module: m.Name, Path: solutionPath, Cause: err}
		}
		s.logger.Debug("added", "module", m.Name, "id", id)
		res.Added = append(res.Added, Outcome{Module: m.Name, Identifier: id, Reason: ReasonAdded})
	}

	return s.finish(doc, res)
}
