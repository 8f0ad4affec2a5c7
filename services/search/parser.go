package search

import (
	"errors"
	"strings"

	"github.com/fmendezl/boolfind/services/corpus"
)

const (
	opNot = "NOT"
	opAnd = "AND"
	opOr  = "OR"

	parenOpen  = "("
	parenClose = ")"
)

var ErrUnbalancedParens = errors.New("paréntesis desbalanceados")

var precedence = map[string]int{
	opNot: 3,
	opAnd: 2,
	opOr:  1,
}

// NOT is unary and binds to the right.
var rightAssociative = map[string]bool{
	opNot: true,
}

func isOperator(token string) bool {
	_, ok := precedence[token]
	return ok
}

// Lex splits a query into operator, parenthesis and term tokens. Operators
// are recognized case-insensitively; everything else goes through the same
// cleaning and tokenization as indexed text, so one input word can yield
// several term tokens.
func Lex(query string) []string {
	query = strings.ReplaceAll(query, parenOpen, " ( ")
	query = strings.ReplaceAll(query, parenClose, " ) ")

	out := []string{}
	for _, raw := range strings.Fields(query) {
		upper := strings.ToUpper(raw)
		if isOperator(upper) || raw == parenOpen || raw == parenClose {
			out = append(out, upper)
			continue
		}
		out = append(out, corpus.Tokenize(corpus.CleanText(raw))...)
	}
	return out
}

// InfixToPostfix runs shunting-yard over the lexed tokens with precedence
// NOT > AND > OR.
func InfixToPostfix(tokens []string) ([]string, error) {
	out := []string{}
	stack := []string{}

	for _, token := range tokens {
		switch {
		case token == parenOpen:
			stack = append(stack, token)

		case token == parenClose:
			for len(stack) > 0 && stack[len(stack)-1] != parenOpen {
				out = append(out, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return nil, ErrUnbalancedParens
			}
			stack = stack[:len(stack)-1]

		case isOperator(token):
			for len(stack) > 0 && isOperator(stack[len(stack)-1]) {
				top := stack[len(stack)-1]
				if (rightAssociative[top] && precedence[top] > precedence[token]) ||
					(!rightAssociative[top] && precedence[top] >= precedence[token]) {
					out = append(out, top)
					stack = stack[:len(stack)-1]
					continue
				}
				break
			}
			stack = append(stack, token)

		default:
			out = append(out, token)
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top == parenOpen || top == parenClose {
			return nil, ErrUnbalancedParens
		}
		out = append(out, top)
		stack = stack[:len(stack)-1]
	}

	return out, nil
}
