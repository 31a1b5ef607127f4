package dumpdiff

import (
	"reflect"
	"sort"
)

// Operation defines the kind of divergence a Delta describes
type Operation string

const (
	// OpMissingInLeft means the key exists only in the right tree
	OpMissingInLeft = Operation("missing-left")
	// OpMissingInRight means the key exists only in the left tree
	OpMissingInRight = Operation("missing-right")
	// OpMismatch means both trees hold the key with unequal values
	OpMismatch = Operation("mismatch")
)

// Delta represents one structural divergence between two Object trees
type Delta struct {
	// the kind of divergence
	Op Operation `json:"op"`
	// Path is the dot-joined key path from the roots to the divergence,
	// e.g. "address.city"
	Path string `json:"path"`
	// Left is the value in the left tree; nil for OpMissingInLeft
	Left Value `json:"left,omitempty"`
	// Right is the value in the right tree; nil for OpMissingInRight
	Right Value `json:"right,omitempty"`
}

// Deltas is an ordered list of divergences
type Deltas []*Delta

// Diff structurally compares two Object trees and reports every divergence
// by path. Keys present on one side only produce a missing Delta; keys whose
// values are both Objects recurse, flattening nested divergences into the
// same sequence (the parent key itself emits nothing); anything else is
// compared by deep value equality. Lists are compared as whole values, never
// element by element.
//
// Output is ordered by the sorted union of keys at each level, depth-first.
// Diff never fails: any two well-formed Objects, empty ones included, are
// diffable.
func Diff(left, right Object, opts ...DiffOption) Deltas {
	cfg := &DiffConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	dts := diffObjects(left, right, "")

	if cfg.Stats != nil {
		for _, d := range dts {
			switch d.Op {
			case OpMissingInLeft:
				cfg.Stats.MissingInLeft++
			case OpMissingInRight:
				cfg.Stats.MissingInRight++
			case OpMismatch:
				cfg.Stats.Mismatches++
			}
		}
	}
	return dts
}

// DiffConfig are any possible configuration parameters for calculating diffs
type DiffConfig struct {
	// Provide a non-nil stats pointer & Diff will populate it with counts
	// from the diff process
	Stats *Stats
}

// DiffOption is a function that adjusts a config, zero or more DiffOptions
// can be passed to the Diff function
type DiffOption func(cfg *DiffConfig)

// OptionSetStats will set the passed-in stats pointer when Diff is called
func OptionSetStats(st *Stats) DiffOption {
	return func(cfg *DiffConfig) {
		cfg.Stats = st
	}
}

func diffObjects(left, right Object, prefix string) (dts Deltas) {
	for _, key := range unionKeys(left, right) {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}

		lv, lok := left[key]
		rv, rok := right[key]
		switch {
		case !lok:
			dts = append(dts, &Delta{Op: OpMissingInLeft, Path: path, Right: rv})
		case !rok:
			dts = append(dts, &Delta{Op: OpMissingInRight, Path: path, Left: lv})
		default:
			lo, lIsObj := lv.(Object)
			ro, rIsObj := rv.(Object)
			if lIsObj && rIsObj {
				dts = append(dts, diffObjects(lo, ro, path)...)
			} else if !reflect.DeepEqual(lv, rv) {
				dts = append(dts, &Delta{Op: OpMismatch, Path: path, Left: lv, Right: rv})
			}
		}
	}
	return dts
}

// unionKeys returns the sorted union of both objects' key sets. Iteration
// order over the union isn't contractual, but sorting keeps output stable
// run to run.
func unionKeys(a, b Object) []string {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}
