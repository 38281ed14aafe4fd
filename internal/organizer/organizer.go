// file: internal/organizer/organizer.go
// version: 2.1.0
// guid: 5e6f7a8b-9c0d-1e2f-3a4b-5c6d7e8f9a0b

package organizer

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jdfalk/music-renamer/internal/fileops"
	"github.com/jdfalk/music-renamer/internal/logging"
	"github.com/jdfalk/music-renamer/internal/metadata"
	"github.com/jdfalk/music-renamer/internal/metrics"
	"github.com/jdfalk/music-renamer/internal/naming"
	"github.com/jdfalk/music-renamer/internal/scanner"
)

// RenameOp is one planned rename inside a single directory.
type RenameOp struct {
	Source      string
	Destination string
}

// OldName is the base name of the source.
func (op RenameOp) OldName() string { return filepath.Base(op.Source) }

// NewName is the base name of the destination.
func (op RenameOp) NewName() string { return filepath.Base(op.Destination) }

// Skip records a file left out because its name could not be resolved.
type Skip struct {
	Path   string
	Reason naming.SkipReason
}

// ChangeSet is the ordered list of renames for one invocation.
type ChangeSet struct {
	RunID     string
	Folder    string
	Ops       []RenameOp
	Skipped   []Skip
	Unchanged int
}

// Len returns the number of pending renames.
func (cs ChangeSet) Len() int { return len(cs.Ops) }

// Filesystem is the part of the filesystem the planner touches.
type Filesystem interface {
	Exists(path string) bool
	SameFile(a, b string) bool
	Rename(src, dst string) error
}

// OSFilesystem is the real filesystem.
type OSFilesystem struct{}

// Exists reports whether anything is present at path.
func (OSFilesystem) Exists(path string) bool { return fileops.Exists(path) }

// SameFile reports whether a and b refer to the same file on disk.
func (OSFilesystem) SameFile(a, b string) bool { return fileops.SameFile(a, b) }

// Rename moves src to dst within one directory without overwriting.
func (OSFilesystem) Rename(src, dst string) error { return fileops.RenameInPlace(src, dst) }

// Planner turns discovered files into a collision-free ChangeSet.
type Planner struct {
	resolver *naming.Resolver
	prober   metadata.Prober
	fs       Filesystem
}

// NewPlanner creates a planner. Nil arguments fall back to the default
// resolver, NopProber and the OS filesystem.
func NewPlanner(resolver *naming.Resolver, prober metadata.Prober, fs Filesystem) *Planner {
	if resolver == nil {
		resolver = naming.NewResolver(nil)
	}
	if prober == nil {
		prober = metadata.NopProber{}
	}
	if fs == nil {
		fs = OSFilesystem{}
	}
	return &Planner{resolver: resolver, prober: prober, fs: fs}
}

// Plan resolves every file and assigns it a destination that neither exists
// on disk nor was already handed out in this batch. Files that already carry
// their resolved name and files without a usable title are left out.
func (p *Planner) Plan(files []scanner.File) ChangeSet {
	start := time.Now()
	defer func() { metrics.ObserveDuration("plan", time.Since(start)) }()

	var cs ChangeSet
	planned := make(map[string]bool)

	for _, f := range files {
		metrics.IncScanned()

		res := p.resolver.Resolve(f.Name, p.prober.Probe(f.Path))
		if !res.OK {
			logging.Debugf("organizer: skipping %s: %s", f.Path, res.Reason)
			metrics.IncSkipped("unresolvable")
			cs.Skipped = append(cs.Skipped, Skip{Path: f.Path, Reason: res.Reason})
			continue
		}

		current := filepath.Base(f.Path)
		dst := p.uniqueDestination(f, res.Name.Filename(f.Name.Ext), planned)
		if filepath.Base(dst) == current {
			metrics.IncSkipped("unchanged")
			cs.Unchanged++
			continue
		}

		planned[dst] = true
		metrics.IncPlanned()
		cs.Ops = append(cs.Ops, RenameOp{Source: f.Path, Destination: dst})
	}

	return cs
}

// uniqueDestination tries name, then "stem (1).ext", "stem (2).ext", ...
// The file's own current name always counts as free, and so does a name
// differing from it only by case when both resolve to the same file. Any
// other existing entry, hard links to the source included, is taken.
func (p *Planner) uniqueDestination(f scanner.File, name string, planned map[string]bool) string {
	current := filepath.Base(f.Path)
	ext := strings.ToLower(f.Name.Ext)
	stem := strings.TrimSuffix(name, ext)

	for n := 0; ; n++ {
		candidate := name
		if n > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, n, ext)
		}
		path := filepath.Join(f.Dir, candidate)
		if candidate == current {
			return path
		}
		if planned[path] {
			continue
		}
		if p.fs.Exists(path) && !(strings.EqualFold(candidate, current) && p.fs.SameFile(f.Path, path)) {
			continue
		}
		return path
	}
}

// Progress is notified after each successful rename.
type Progress interface {
	Add(n int) error
}

// Outcome is the result of one attempted rename.
type Outcome struct {
	Op  RenameOp
	Err error
}

// Execute applies the change set in order. The first failure stops the
// batch: earlier renames stay on disk and later ones are not attempted.
func (p *Planner) Execute(cs ChangeSet, progress Progress) ([]Outcome, error) {
	start := time.Now()
	defer func() { metrics.ObserveDuration("apply", time.Since(start)) }()

	outcomes := make([]Outcome, 0, len(cs.Ops))
	for i, op := range cs.Ops {
		err := p.fs.Rename(op.Source, op.Destination)
		outcomes = append(outcomes, Outcome{Op: op, Err: err})
		if err != nil {
			metrics.IncFailed()
			return outcomes, fmt.Errorf("rename %d of %d aborted the batch: %w", i+1, len(cs.Ops), err)
		}
		metrics.IncApplied()
		logging.Debugf("organizer: renamed %s -> %s", op.OldName(), op.NewName())
		if progress != nil {
			if err := progress.Add(1); err != nil {
				logging.Debugf("organizer: progress update failed: %v", err)
			}
		}
	}
	return outcomes, nil
}
