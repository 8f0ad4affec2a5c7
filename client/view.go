package client

import (
	"fmt"
	"io"
)

// WriterView renders status lines and cards to a writer, one line each.
// It is the view used by the terminal client.
type WriterView struct {
	w io.Writer
}

func NewWriterView(w io.Writer) *WriterView {
	return &WriterView{w: w}
}

func (v *WriterView) SetStatus(text string, isError bool) {
	if isError {
		fmt.Fprintf(v.w, "ERROR: %s\n", text)
		return
	}
	fmt.Fprintln(v.w, text)
}

func (v *WriterView) ClearResults() {
	fmt.Fprintln(v.w, "----")
}

func (v *WriterView) AppendCard(card Card) {
	if card.Badge == "" && card.Category == "" {
		fmt.Fprintln(v.w, card.Snippet)
		return
	}
	fmt.Fprintf(v.w, "%s (%s) %s\n", card.Badge, card.Category, card.Snippet)
}
