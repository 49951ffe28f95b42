package match

// Sunday compares each window left to right; on a mismatch the byte right
// after the window, text[i+m], decides the shift.
func Sunday(text, pattern string) Result {
	return run(text, pattern, sunday)
}

// sundayShift returns shift[c] = m - last(c) over the whole pattern; bytes
// not in the pattern shift by m+1.
func sundayShift(pattern string) [256]int {
	m := len(pattern)
	var shift [256]int
	for c := range shift {
		shift[c] = m + 1
	}
	for i := 0; i < m; i++ {
		shift[pattern[i]] = m - i
	}

	return shift
}

func sunday(text, pattern string) (int, int) {
	n, m := len(text), len(pattern)
	shift := sundayShift(pattern)
	comps := 0
	for i := 0; i <= n-m; {
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
		if i+m >= n {
			break
		}
		i += shift[text[i+m]]
	}

	return -1, comps
}
