package match

// Next returns the KMP failure function of pattern with next[0] = -1 and
// next[1] = 0. For i >= 2, next[i] is the length of the longest proper
// border of pattern[:i].
//
//	"ababaca" -> [-1 0 0 1 2 3 0]
func Next(pattern string) []int {
	m := len(pattern)
	if m == 0 {
		return nil
	}
	next := make([]int, m)
	next[0] = -1
	if m == 1 {
		return next
	}
	next[1] = 0
	for i := 2; i < m; i++ {
		j := next[i-1]
		for j > 0 && pattern[i-1] != pattern[j] {
			j = next[j]
		}
		if pattern[i-1] == pattern[j] {
			next[i] = j + 1
		} else {
			next[i] = 0
		}
	}

	return next
}

// NextVal refines Next: when pattern[i] equals pattern[next[i]], falling
// back to next[i] would repeat the same mismatch, so the target is taken
// from nextval[next[i]] instead. Entries with next[i] == 0 stay 0.
func NextVal(pattern string) []int {
	next := Next(pattern)
	nextval := make([]int, len(next))
	for i, k := range next {
		switch {
		case k < 0:
			nextval[i] = -1
		case k == 0:
			nextval[i] = 0
		case pattern[i] == pattern[k]:
			nextval[i] = nextval[k]
		default:
			nextval[i] = k
		}
	}

	return nextval
}

// KMP searches with the failure function from Next.
func KMP(text, pattern string) Result {
	return run(text, pattern, func(text, pattern string) (int, int) {
		return kmp(text, pattern, Next(pattern))
	})
}

// KMPImproved searches with the refined table from NextVal.
func KMPImproved(text, pattern string) Result {
	return run(text, pattern, func(text, pattern string) (int, int) {
		return kmp(text, pattern, NextVal(pattern))
	})
}

// kmp is the matching loop shared by both tables. j == -1 means "advance
// the text past the current byte and restart the pattern".
func kmp(text, pattern string, next []int) (int, int) {
	n, m := len(text), len(pattern)
	i, j, comps := 0, 0, 0
	for i < n && j < m {
		if j == -1 {
			i++
			j++

			continue
		}
		comps++
		if text[i] == pattern[j] {
			i++
			j++
		} else {
			j = next[j]
		}
	}
	if j == m {
		return i - m, comps
	}

	return -1, comps
}
