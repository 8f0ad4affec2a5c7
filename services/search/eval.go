package search

import (
	"errors"

	"github.com/fmendezl/boolfind/db/indexdb"
)

var ErrInvalidQuery = errors.New("consulta inválida")

// evalPostfix evaluates a postfix boolean expression over the index with a
// stack of postings lists. Terms missing from the index evaluate to empty
// lists, so they still participate in NOT/OR correctly.
func evalPostfix(postfix []string, index indexdb.DB) ([]int, error) {
	stack := [][]int{}

	pop := func() []int {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top
	}

	for _, token := range postfix {
		switch token {
		case opNot:
			if len(stack) < 1 {
				return nil, errors.New("NOT sin operando")
			}
			a := pop()
			stack = append(stack, indexdb.Complement(a, index.DocCount()))

		case opAnd:
			if len(stack) < 2 {
				return nil, errors.New("AND sin operandos suficientes")
			}
			b := pop()
			a := pop()
			stack = append(stack, indexdb.Intersect(a, b))

		case opOr:
			if len(stack) < 2 {
				return nil, errors.New("OR sin operandos suficientes")
			}
			b := pop()
			a := pop()
			stack = append(stack, indexdb.Union(a, b))

		default:
			stack = append(stack, index.Postings(token))
		}
	}

	if len(stack) != 1 {
		return nil, ErrInvalidQuery
	}

	return stack[0], nil
}
