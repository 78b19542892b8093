package uploader

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/dustin/go-humanize"
)

// MaxFileSize is the per-file ceiling applied at every call site.
const MaxFileSize = 10 << 20 // 10 MiB

// Rejected buckets a selection's refused files by reason.
type Rejected struct {
	TooLarge  []LocalFile
	Duplicate []LocalFile
	OverLimit []LocalFile
}

func (r Rejected) Empty() bool {
	return len(r.TooLarge) == 0 && len(r.Duplicate) == 0 && len(r.OverLimit) == 0
}

// Summary renders the consolidated notice surfaced before any upload starts.
// Returns "" when nothing was rejected.
func (r Rejected) Summary() string {
	if r.Empty() {
		return ""
	}

	var parts []string
	for _, f := range r.TooLarge {
		parts = append(parts, fmt.Sprintf("%s is %s, over the %s per-file limit",
			f.Name, humanize.IBytes(uint64(f.Size)), humanize.IBytes(MaxFileSize)))
	}
	for _, f := range r.Duplicate {
		parts = append(parts, fmt.Sprintf("%s is already queued", f.Name))
	}
	if n := len(r.OverLimit); n > 0 {
		parts = append(parts, fmt.Sprintf("%d more would exceed the attachment limit", n))
	}

	return "some files were not added: " + strings.Join(parts, "; ")
}

// Partitioned is the result of validating one selection.
type Partitioned struct {
	Accepted []LocalFile
	Rejected Rejected
}

// Partition splits a fresh selection into accepted files and rejection
// buckets. Pure over its inputs: nothing is enqueued here and the existing
// set is not mutated. Oversized files are refused first, then anything whose
// identity already matches a queued item (whatever its status), then the
// quota cut keeps at most remaining of what's left; the surplus is reported
// as OverLimit rather than silently dropped. An empty selection is a no-op.
func Partition(files []LocalFile, existing mapset.Set[Identity], remaining int) Partitioned {
	if len(files) == 0 {
		return Partitioned{}
	}

	seen := mapset.NewSet[Identity]()
	if existing != nil {
		seen = existing.Clone()
	}

	var out Partitioned
	for _, f := range files {
		switch {
		case f.Size > MaxFileSize:
			out.Rejected.TooLarge = append(out.Rejected.TooLarge, f)
		case seen.Contains(f.Identity()):
			out.Rejected.Duplicate = append(out.Rejected.Duplicate, f)
		case len(out.Accepted) >= remaining:
			out.Rejected.OverLimit = append(out.Rejected.OverLimit, f)
		default:
			out.Accepted = append(out.Accepted, f)
			seen.Add(f.Identity())
		}
	}
	return out
}
