package indexdb

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIntersect(t *testing.T) {
	testCases := []struct {
		name     string
		a        []int
		b        []int
		expected []int
	}{
		{name: "BothEmpty", a: []int{}, b: []int{}, expected: []int{}},
		{name: "OneEmpty", a: []int{1, 2, 3}, b: []int{}, expected: []int{}},
		{name: "NoOverlap", a: []int{1, 3, 5}, b: []int{2, 4, 6}, expected: []int{}},
		{name: "PartialOverlap", a: []int{1, 2, 3, 7}, b: []int{2, 3, 4}, expected: []int{2, 3}},
		{name: "Identical", a: []int{0, 5, 9}, b: []int{0, 5, 9}, expected: []int{0, 5, 9}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, Intersect(testCase.a, testCase.b))
		})
	}
}

func TestUnion(t *testing.T) {
	testCases := []struct {
		name     string
		a        []int
		b        []int
		expected []int
	}{
		{name: "BothEmpty", a: []int{}, b: []int{}, expected: []int{}},
		{name: "OneEmpty", a: []int{}, b: []int{1, 2}, expected: []int{1, 2}},
		{name: "Interleaved", a: []int{1, 3, 5}, b: []int{2, 4, 6}, expected: []int{1, 2, 3, 4, 5, 6}},
		{name: "Overlap", a: []int{1, 2, 3}, b: []int{2, 3, 4}, expected: []int{1, 2, 3, 4}},
		{name: "LeftTail", a: []int{1, 2, 8, 9}, b: []int{2}, expected: []int{1, 2, 8, 9}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, Union(testCase.a, testCase.b))
		})
	}
}

func TestDifference(t *testing.T) {
	testCases := []struct {
		name     string
		a        []int
		b        []int
		expected []int
	}{
		{name: "BothEmpty", a: []int{}, b: []int{}, expected: []int{}},
		{name: "SubtractNothing", a: []int{1, 2, 3}, b: []int{}, expected: []int{1, 2, 3}},
		{name: "SubtractAll", a: []int{1, 2}, b: []int{1, 2}, expected: []int{}},
		{name: "SubtractSome", a: []int{1, 2, 3, 4}, b: []int{2, 4, 6}, expected: []int{1, 3}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, Difference(testCase.a, testCase.b))
		})
	}
}

func TestComplement(t *testing.T) {
	testCases := []struct {
		name     string
		p        []int
		nDocs    int
		expected []int
	}{
		{name: "EmptyPostings", p: []int{}, nDocs: 3, expected: []int{0, 1, 2}},
		{name: "FullPostings", p: []int{0, 1, 2}, nDocs: 3, expected: []int{}},
		{name: "Partial", p: []int{1, 3}, nDocs: 5, expected: []int{0, 2, 4}},
		{name: "EmptyUniverse", p: []int{}, nDocs: 0, expected: []int{}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			require.Equal(t, testCase.expected, Complement(testCase.p, testCase.nDocs))
		})
	}
}
