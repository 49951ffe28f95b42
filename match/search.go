package match

// Search runs the matcher named by alg.
func Search(alg Algorithm, text, pattern string) (Result, error) {
	m, err := alg.Matcher()
	if err != nil {
		return Result{Position: -1}, err
	}

	return m(text, pattern), nil
}

// FindAll returns the start of every occurrence of pattern in text,
// overlapping ones included, by restarting alg one byte past each hit.
// An empty pattern yields nil.
func FindAll(alg Algorithm, text, pattern string) ([]int, error) {
	m, err := alg.Matcher()
	if err != nil {
		return nil, err
	}
	if pattern == "" {
		return nil, nil
	}
	var out []int
	for base := 0; base+len(pattern) <= len(text); {
		r := m(text[base:], pattern)
		if !r.Found {
			break
		}
		out = append(out, base+r.Position)
		base += r.Position + 1
	}

	return out, nil
}
