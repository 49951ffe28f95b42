// Package match implements single-pattern string search over bytes.
//
// Algorithms:
//
//   - Naive:        try every alignment, compare left to right. O(n·m).
//   - KMP:          failure function Next avoids re-reading the text. O(n+m).
//   - KMPImproved:  KMP driven by NextVal, which skips failure targets that
//     would repeat a known mismatch.
//   - BoyerMoore:   right-to-left comparison with the bad-character rule.
//     Sub-linear on average, O(n·m) worst case.
//   - Sunday:       left-to-right comparison; on a mismatch the byte just
//     past the window decides the shift.
//
// Every matcher returns a Result holding the leftmost match position (-1 if
// none), the number of byte comparisons performed and the elapsed wall time.
// All matchers agree on Found and Position; Comparisons and Elapsed are
// algorithm specific.
//
// An empty pattern matches at position 0 with zero comparisons. A pattern
// longer than the text never matches.
//
// Search dispatches on an Algorithm value, FindAll reports every (possibly
// overlapping) occurrence and Compare profiles all algorithms on one input.
package match
