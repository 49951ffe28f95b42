package match

// Naive slides the pattern one byte at a time and compares left to right,
// stopping at the first mismatch of each alignment.
func Naive(text, pattern string) Result {
	return run(text, pattern, naive)
}

func naive(text, pattern string) (int, int) {
	n, m := len(text), len(pattern)
	comps := 0
	for i := 0; i <= n-m; i++ {
		j := 0
		for j < m {
			comps++
			if text[i+j] != pattern[j] {
				break
			}
			j++
		}
		if j == m {
			return i, comps
		}
	}

	return -1, comps
}
