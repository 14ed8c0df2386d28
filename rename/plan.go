package rename

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
)

// Suffix of the files to rename
const Suffix = "fq.gz"

// BadNameReason is logged for every name Split rejects
const BadNameReason = "expected {key}_{extension}"

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrBadName     = errors.New("not a {key}_{extension} file name")
	ErrCollision   = errors.New("destination collision")
)

// Move renames Old to New inside one directory
type Move struct {
	Old, New string
}

// Plan is every rename of one directory, with the files that have no viable target
type Plan struct {
	Moves     []Move
	Unchanged []string
	// files whose key is not in Meta
	Missing []string
	// files not split into exactly key and extension by "_", see BadNameReason
	BadNames []string
	// destination names claimed twice or already taken
	Collisions []string
}

// Candidates lists the regular files of dir ending in Suffix, sorted
func Candidates(dir string) (names, entries []string, err error) {
	list, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	for _, entry := range list {
		entries = append(entries, entry.Name())
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), Suffix) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return
}

// Build plans the renames of dir
func Build(dir string, meta Meta) (*Plan, error) {
	names, entries, err := Candidates(dir)
	if err != nil {
		return nil, err
	}
	return NewPlan(meta, names, entries), nil
}

// Split returns the key and extension of name
func Split(name string) (key, extension string, err error) {
	parts := strings.Split(name, "_")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("%w: %s", ErrBadName, name)
	}
	return parts[0], parts[1], nil
}

// NewPlan maps names through meta. existing holds every name already in the
// directory; a destination among them is only allowed if it is the file itself,
// so chains like A->B, B->C are collisions even though B moves away.
func NewPlan(meta Meta, names, existing []string) *Plan {
	var plan = &Plan{}
	var present = make(map[string]bool)
	for _, name := range existing {
		present[name] = true
	}

	var claimed = make(map[string][]string)
	for _, name := range names {
		key, extension, err := Split(name)
		if err != nil {
			plan.BadNames = append(plan.BadNames, name)
			continue
		}
		sampleName, ok := meta[key]
		if !ok || sampleName == "" {
			plan.Missing = append(plan.Missing, name)
			continue
		}
		newName := sampleName + "_" + extension
		claimed[newName] = append(claimed[newName], name)
		if newName == name {
			plan.Unchanged = append(plan.Unchanged, name)
			continue
		}
		plan.Moves = append(plan.Moves, Move{Old: name, New: newName})
	}

	var collisions = make(map[string]bool)
	for _, move := range plan.Moves {
		if len(claimed[move.New]) > 1 || present[move.New] {
			collisions[move.New] = true
		}
	}
	for name := range collisions {
		plan.Collisions = append(plan.Collisions, name)
	}
	sort.Strings(plan.Collisions)
	return plan
}

// Err joins the problems that make the plan unsafe to apply
func (plan *Plan) Err() error {
	var errs []error
	if len(plan.BadNames) > 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrBadName, strings.Join(plan.BadNames, ",")))
	}
	if len(plan.Missing) > 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrKeyNotFound, strings.Join(plan.Missing, ",")))
	}
	if len(plan.Collisions) > 0 {
		errs = append(errs, fmt.Errorf("%w: %s", ErrCollision, strings.Join(plan.Collisions, ",")))
	}
	return errors.Join(errs...)
}
