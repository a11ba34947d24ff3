// Package reader provides the pull-based character cursor the decoder
// scans JSON text with.
package reader

import "fmt"

// EOF is the sentinel returned by Get and Peek once the input is exhausted.
const EOF rune = -1

// Reader is a cursor over input text. It consumes one character at a time
// and supports a single-character pushback.
type Reader struct {
	src []rune
	pos int
}

// New creates a Reader positioned at the start of text.
func New(text string) *Reader {
	return &Reader{src: []rune(text)}
}

// Get consumes and returns the next character, or EOF when none remain.
func (r *Reader) Get() rune {
	if r.pos >= len(r.src) {
		return EOF
	}
	c := r.src[r.pos]
	r.pos++
	return c
}

// Unget rewinds the cursor by exactly one previously returned character.
// Calling it at the start of the input is a no-op.
func (r *Reader) Unget() {
	if r.pos > 0 {
		r.pos--
	}
}

// Peek returns the next character without consuming it, or EOF when none
// remain.
func (r *Reader) Peek() rune {
	if r.pos >= len(r.src) {
		return EOF
	}
	return r.src[r.pos]
}

// ReadExactly consumes and returns the next n characters, or fails if
// fewer remain. On failure the cursor does not move.
func (r *Reader) ReadExactly(n int) (string, error) {
	if r.pos+n > len(r.src) {
		return "", fmt.Errorf("want %d more characters, have %d", n, len(r.src)-r.pos)
	}
	s := string(r.src[r.pos : r.pos+n])
	r.pos += n
	return s, nil
}
