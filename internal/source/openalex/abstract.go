package openalex

import "strings"

// ReconstructAbstract rebuilds a plain text abstract from the inverted
// index format the API uses ({"word": [position, ...], ...}).
//
// Every recorded position is filled with its word and positions never
// referenced stay empty, so gaps survive as empty tokens in the joined
// output. When malformed input lists the same position twice, the word
// processed later overwrites the earlier one. A nil or empty index
// yields "".
func ReconstructAbstract(index map[string][]int) string {
	var words []string

	for word, positions := range index {
		for _, pos := range positions {
			if pos < 0 {
				continue
			}
			for pos >= len(words) {
				words = append(words, "")
			}
			words[pos] = word
		}
	}

	return strings.Join(words, " ")
}

// invertedIndexOf extracts the abstract inverted index from a decoded
// JSON payload, tolerating the generic types a map[string]any decode
// produces. Anything that is not an index shape yields nil.
func invertedIndexOf(v any) map[string][]int {
	raw, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	index := make(map[string][]int, len(raw))
	for word, positions := range raw {
		list, ok := positions.([]any)
		if !ok {
			continue
		}
		ints := make([]int, 0, len(list))
		for _, p := range list {
			if f, ok := p.(float64); ok {
				ints = append(ints, int(f))
			}
		}
		index[word] = ints
	}
	return index
}
