package analysis

import "sort"

// similarity returns a 0..1 ratio of how alike two strings are, using
// the classic longest-matching-block measure: 2*M / (len(a)+len(b))
// where M is the total length of all matching blocks. The thresholds
// used by the extractor and recommender (0.6, 0.86, 0.88) assume this
// measure, so a cheaper edit-distance ratio is not a drop-in.
func similarity(a, b string) float64 {
	if len(a)+len(b) == 0 {
		return 0
	}
	m := matchingChars([]byte(a), []byte(b))
	return 2 * float64(m) / float64(len(a)+len(b))
}

// matchingChars sums the lengths of the matching blocks between a and b.
func matchingChars(a, b []byte) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ai, bi, size := longestMatch(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingChars(a[:ai], b[:bi]) +
		matchingChars(a[ai+size:], b[bi+size:])
}

// longestMatch finds the longest block a[ai:ai+size] == b[bi:bi+size].
func longestMatch(a, b []byte) (ai, bi, size int) {
	b2j := make(map[byte][]int, len(b))
	for j, c := range b {
		b2j[c] = append(b2j[c], j)
	}

	// j2len[j] holds the length of the match ending at a[i-1], b[j-1]
	j2len := make(map[int]int)
	for i, c := range a {
		newJ2len := make(map[int]int)
		for _, j := range b2j[c] {
			k := j2len[j-1] + 1
			newJ2len[j] = k
			if k > size {
				ai, bi, size = i-k+1, j-k+1, k
			}
		}
		j2len = newJ2len
	}
	return ai, bi, size
}

// closestMatch returns the candidate most similar to target with a
// ratio of at least cutoff, or "" when none qualifies. Ties resolve
// toward the lexicographically smallest candidate, not input order,
// so the winner is stable across catalog reorderings.
func closestMatch(target string, candidates []string, cutoff float64) string {
	best := ""
	bestRatio := cutoff
	// scan in sorted order, strict improvement wins
	sorted := make([]string, len(candidates))
	copy(sorted, candidates)
	sort.Strings(sorted)
	for _, c := range sorted {
		if r := similarity(target, c); r > bestRatio || (best == "" && r >= cutoff) {
			best = c
			bestRatio = r
		}
	}
	return best
}
