package dumpdiff

import (
	"fmt"
	"strings"
)

// Patch applies a change script to the left tree, producing the tree the
// script was diffed against: missing-in-left deltas insert the right-side
// value, missing-in-right deltas delete, mismatches overwrite. The input
// object is not modified; object spines are copied before editing.
//
// Paths are the dot-joined form Diff emits, so keys containing a literal
// "." cannot be addressed.
func Patch(obj Object, patch Deltas) (Object, error) {
	out := copyObject(obj)
	for i, dlt := range patch {
		if err := applyDelta(out, dlt); err != nil {
			return nil, fmt.Errorf("patch %d: %w", i, err)
		}
	}
	return out, nil
}

func applyDelta(tree Object, dlt *Delta) error {
	parent, name, err := pathToParent(tree, dlt.Path)
	if err != nil {
		return err
	}

	switch dlt.Op {
	case OpMissingInLeft, OpMismatch:
		parent[name] = dlt.Right
	case OpMissingInRight:
		delete(parent, name)
	default:
		return fmt.Errorf("unknown delta operation %q", string(dlt.Op))
	}
	return nil
}

// pathToParent walks tree to the object owning the final path component.
// Diff only emits paths whose parents exist on the left side, so a failed
// walk means the script doesn't belong to this tree.
func pathToParent(tree Object, path string) (Object, string, error) {
	if path == "" {
		return nil, "", fmt.Errorf("empty path")
	}

	components := strings.Split(path, ".")
	elem := tree
	for len(components) > 1 {
		sel := components[0]
		child, ok := elem[sel]
		if !ok {
			return nil, "", fmt.Errorf("invalid path: %s", path)
		}
		obj, ok := child.(Object)
		if !ok {
			return nil, "", fmt.Errorf("path %s: %q is a %s, not an object", path, sel, child.Kind())
		}
		elem = obj
		components = components[1:]
	}
	return elem, components[0], nil
}

// copyObject deep-copies the object spine of a tree. Non-object values are
// shared; they are immutable by convention.
func copyObject(o Object) Object {
	out := make(Object, len(o))
	for k, v := range o {
		if child, ok := v.(Object); ok {
			out[k] = copyObject(child)
			continue
		}
		out[k] = v
	}
	return out
}
