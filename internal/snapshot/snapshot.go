package snapshot

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/eigerco/weights/internal/crypto"
	"github.com/eigerco/weights/internal/dispatch"
	"github.com/eigerco/weights/internal/weight"
)

// Entry is the dispatch info of one call kind constructed with its default arguments.
type Entry struct {
	Kind dispatch.CallKind
	Info weight.DispatchInfo
}

// Snapshot records the weight of every call kind under a profile's params, so that a later
// change of the table or of the params shows up as a difference.
type Snapshot struct {
	Profile string
	Params  dispatch.Params
	Entries []Entry
}

// Take computes every call kind with its default arguments.
func Take(model *dispatch.Model, profile string) (Snapshot, error) {
	if err := ValidateProfile(profile); err != nil {
		return Snapshot{}, err
	}
	s := Snapshot{Profile: profile, Params: model.Params()}
	for _, kind := range dispatch.AllCallKinds() {
		info, err := model.ComputeWeight(kind, dispatch.DefaultArgs(kind))
		if err != nil {
			return Snapshot{}, fmt.Errorf("compute %s: %w", kind, err)
		}
		s.Entries = append(s.Entries, Entry{Kind: kind, Info: info})
	}
	return s, nil
}

func ValidateProfile(profile string) error {
	if profile == "" {
		return fmt.Errorf("%w: empty", ErrInvalidProfile)
	}
	if strings.ContainsRune(profile, 0) {
		return fmt.Errorf("%w: contains NUL byte", ErrInvalidProfile)
	}
	return nil
}

func (s Snapshot) Lookup(kind dispatch.CallKind) (weight.DispatchInfo, bool) {
	for _, e := range s.Entries {
		if e.Kind == kind {
			return e.Info, true
		}
	}
	return weight.DispatchInfo{}, false
}

// Fingerprint hashes the params and entries. The profile name is not part of it,
// two profiles with the same params and weights share a fingerprint.
func (s Snapshot) Fingerprint() crypto.Hash {
	b := EncodeParams(s.Params)
	for _, e := range s.Entries {
		b = append(b, byte(len(e.Kind)))
		b = append(b, string(e.Kind)...)
		b = append(b, EncodeInfo(e.Info)...)
	}
	return crypto.HashData(b)
}

// Dump renders the snapshot one line per call kind.
func (s Snapshot) Dump() string {
	var sb strings.Builder
	p := s.Params
	fmt.Fprintf(&sb, "params read=%d write=%d max_block_weight=%d key_slots=%d max_tippers=%d\n",
		p.DbWeight.Read, p.DbWeight.Write, p.MaximumBlockWeight, p.KeySlots, p.MaxTippers)
	for _, e := range s.Entries {
		fmt.Fprintf(&sb, "%-32s weight=%d class=%s pays=%s\n", e.Kind, e.Info.Weight, e.Info.Class, e.Info.PaysFee)
	}
	return sb.String()
}

// Diff returns a unified diff between two snapshots, or an empty string if they match.
func Diff(expected, actual Snapshot) string {
	diff, _ := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected.Dump()),
		B:        difflib.SplitLines(actual.Dump()),
		FromFile: "recorded/" + expected.Profile,
		ToFile:   "current/" + actual.Profile,
		Context:  1,
	})
	return diff
}
