package herald

import "strings"

// node is one position in the placeholder prefix tree. It is a tagged
// variant with exactly two cases: a branch keyed by the next byte of
// some registered key, or a leaf holding a replacement value. A key
// registered with an empty string is a leaf stored directly at the root.
type node interface {
	isNode()
}

// branch maps the next byte of a placeholder key to the subtree for the
// keys sharing the path consumed so far.
type branch map[byte]node

// leaf terminates a placeholder key's path and holds its replacement.
type leaf string

func (branch) isNode() {}
func (leaf) isNode()   {}

// newChain builds the single-path subtree spelling key byte-by-byte and
// terminating in lf.
func newChain(key string, lf leaf) node {
	n := node(lf)
	for i := len(key) - 1; i >= 0; i-- {
		n = branch{key[i]: n}
	}
	return n
}

// merge combines two subtrees rooted at the same tree position. prefix
// is the key path consumed to reach that position, used to reconstruct
// full keys in error messages.
//
// Neither input is modified: branches along the merge path are copied,
// and untouched subtrees are shared with the result. A failed merge
// therefore leaves the original tree usable as-is.
//
// A leaf meeting a branch means one registered key is a strict prefix
// of another; two leaves meeting means the same key was registered
// twice. Both are rejected.
func merge(a, b node, prefix string) (node, error) {
	if a == nil {
		return b, nil
	}
	if b == nil {
		return a, nil
	}

	ab, aIsBranch := a.(branch)
	bb, bIsBranch := b.(branch)

	switch {
	case aIsBranch && bIsBranch:
		result := make(branch, len(ab)+len(bb))
		for c, child := range ab {
			result[c] = child
		}
		for c, child := range bb {
			existing, ok := result[c]
			if !ok {
				result[c] = child
				continue
			}
			merged, err := merge(existing, child, prefix+string(c))
			if err != nil {
				return nil, err
			}
			result[c] = merged
		}
		return result, nil

	case aIsBranch:
		// b ends here; some key under a continues past this position.
		return nil, &AmbiguousKeysError{Prefix: prefix, Key: prefix + anyKey(ab)}

	case bIsBranch:
		return nil, &AmbiguousKeysError{Prefix: prefix, Key: prefix + anyKey(bb)}

	default:
		return nil, &DuplicateKeyError{Key: prefix}
	}
}

// anyKey returns the suffix of one key reachable from n, taking the
// lowest byte at each branch so that conflict messages are
// deterministic regardless of map iteration order.
func anyKey(n node) string {
	var sb strings.Builder
	for {
		b, ok := n.(branch)
		if !ok {
			return sb.String()
		}
		var lowest byte
		first := true
		for c := range b {
			if first || c < lowest {
				lowest = c
				first = false
			}
		}
		sb.WriteByte(lowest)
		n = b[lowest]
	}
}

// collectKeys appends every full key reachable from n to keys, with
// prefix being the path consumed to reach n.
func collectKeys(n node, prefix string, keys []string) []string {
	switch t := n.(type) {
	case leaf:
		return append(keys, prefix)
	case branch:
		for c, child := range t {
			keys = collectKeys(child, prefix+string(c), keys)
		}
	}
	return keys
}
