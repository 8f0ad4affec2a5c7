package indexdb

// Postings lists are sorted slices of docIDs without duplicates. The boolean
// operators reduce to linear two-pointer merges over them.

// Intersect returns docIDs present in both a and b (AND).
func Intersect(a, b []int) []int {
	i, j := 0, 0
	out := []int{}
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// Union returns docIDs present in a or b (OR).
func Union(a, b []int) []int {
	i, j := 0, 0
	out := []int{}
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// Difference returns docIDs present in a but not in b (A AND NOT B).
func Difference(a, b []int) []int {
	i, j := 0, 0
	out := []int{}
	for i < len(a) {
		if j >= len(b) {
			out = append(out, a[i:]...)
			break
		}
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			j++
		}
	}
	return out
}

// Complement returns the docIDs in [0, nDocs) that are not in p (NOT p).
// The universe is the remapped docID range, so the result is exact.
func Complement(p []int, nDocs int) []int {
	out := []int{}
	j := 0
	for d := 0; d < nDocs; d++ {
		if j < len(p) && p[j] == d {
			j++
			continue
		}
		out = append(out, d)
	}
	return out
}
