package match

// BoyerMoore compares each window right to left and, on a mismatch at text
// byte c, shifts so that the last occurrence of c in pattern[:m-1] lines up
// with it. Only the bad-character rule is used.
func BoyerMoore(text, pattern string) Result {
	return run(text, pattern, boyerMoore)
}

// badCharacter returns bad[c] = m-1-last(c), where last(c) is the last index
// of c in pattern[:m-1]; bytes absent from that prefix map to m.
func badCharacter(pattern string) [256]int {
	m := len(pattern)
	var bad [256]int
	for c := range bad {
		bad[c] = m
	}
	for i := 0; i < m-1; i++ {
		bad[pattern[i]] = m - 1 - i
	}

	return bad
}

func boyerMoore(text, pattern string) (int, int) {
	n, m := len(text), len(pattern)
	bad := badCharacter(pattern)
	comps := 0
	for i := m - 1; i < n; {
		k, j := i, m-1
		for j >= 0 {
			comps++
			if text[k] != pattern[j] {
				break
			}
			k--
			j--
		}
		if j < 0 {
			return k + 1, comps
		}
		// bad[] is measured from the window end; the mismatch sat m-1-j
		// bytes to the left of it.
		shift := bad[text[k]] - (m - 1 - j)
		if shift < 1 {
			shift = 1
		}
		i += shift
	}

	return -1, comps
}
