package herald

import (
	"sort"
	"strings"
)

// Interpolate scans text once, left to right, replacing every herald
// occurrence and the placeholder key following it with the key's
// registered replacement. Text between herald occurrences is copied
// verbatim.
//
// Interpolate fails with an InvalidPlaceholderError when the text after
// a herald matches no registered key, an IncompletePlaceholderError
// when input ends mid-placeholder, and a MissingKeysError when a key
// marked with Require was never resolved. On any failure the returned
// string is empty, never partial output.
//
// Example:
//
//	in, _ := herald.New()
//	in.Register(map[string]string{"a": "one", "b": "two"})
//	result, _ := in.Interpolate("%a - %b")
//	// result: "one - two"
func (in *Interpolator) Interpolate(text string) (string, error) {
	// Working copy of the required-key set; the tracker itself is
	// untouched so scans stay independent.
	unused := make(map[string]struct{}, len(in.required))
	for k := range in.required {
		unused[k] = struct{}{}
	}

	var out strings.Builder
	cur := 0
	for cur < len(text) {
		idx := strings.Index(text[cur:], in.herald)
		if idx < 0 {
			out.WriteString(text[cur:])
			break
		}
		out.WriteString(text[cur : cur+idx])
		cur += idx + len(in.herald)

		key, replacement, width, err := in.resolve(text, cur)
		if err != nil {
			return "", err
		}
		out.WriteString(replacement)
		delete(unused, key)
		cur += width
	}

	if len(unused) > 0 {
		keys := make([]string, 0, len(unused))
		for k := range unused {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return "", &MissingKeysError{Herald: in.herald, Keys: keys}
	}
	return out.String(), nil
}

// resolve descends the trie from its root, consuming one byte of text
// per level starting at start, until it reaches a leaf. It returns the
// key spelled by the consumed bytes, the leaf's replacement, and the
// number of bytes consumed.
//
// The descent is an explicit loop, so placeholder length is bounded
// only by the input, not by any recursion depth.
func (in *Interpolator) resolve(text string, start int) (key, replacement string, width int, err error) {
	cur := start
	nd := in.root
	for {
		switch t := nd.(type) {
		case leaf:
			return text[start:cur], string(t), cur - start, nil
		case branch:
			if cur == len(text) {
				return "", "", 0, &IncompletePlaceholderError{Herald: in.herald, Partial: text[start:cur]}
			}
			next, ok := t[text[cur]]
			if !ok {
				return "", "", 0, &InvalidPlaceholderError{Herald: in.herald, Partial: text[start : cur+1]}
			}
			nd = next
			cur++
		default:
			// Empty registry: no key can follow a herald.
			if cur == len(text) {
				return "", "", 0, &IncompletePlaceholderError{Herald: in.herald, Partial: text[start:cur]}
			}
			return "", "", 0, &InvalidPlaceholderError{Herald: in.herald, Partial: text[start : cur+1]}
		}
	}
}
