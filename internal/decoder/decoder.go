// Package decoder turns JSON text into a value tree in a single
// left-to-right scan. The driver consumes one character at a time,
// dispatching to scalar decoders for strings, numbers and keyword
// literals, and to a stack of container frames for objects and lists.
// The first grammar violation aborts the whole decode.
//
// Each \uXXXX escape decodes to its own code point; surrogate halves are
// not combined, so a UTF-16 surrogate pair comes out as two replacement
// characters. Code points outside the Basic Multilingual Plane survive a
// round trip when written literally rather than as escape pairs.
package decoder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcncl/jsondom/internal/errors"
	"github.com/mcncl/jsondom/internal/reader"
	"github.com/mcncl/jsondom/internal/value"
)

// Decode parses text as a single JSON value and returns the root of the
// resulting tree. Decoding succeeds only when the input holds exactly one
// value with no open containers left at end of input.
func Decode(text string) (value.Value, error) {
	d := &decoder{r: reader.New(text)}
	return d.run()
}

type decoder struct {
	r     *reader.Reader
	stack []frame
	root  value.Value
}

// frame tracks one open, not-yet-closed object or list.
type frame interface {
	// deliver hands a completed child value to the frame.
	deliver(v value.Value) error
	// colon consumes a ':' separator, failing where the grammar forbids one.
	colon() error
	// comma marks the frame as awaiting another item.
	comma()
	// close finalizes the frame for the given closing bracket and returns
	// the completed container.
	close(bracket rune) (value.Value, error)
}

func (d *decoder) run() (value.Value, error) {
	for {
		c := d.r.Get()
		switch {
		case c == reader.EOF:
			if len(d.stack) > 0 {
				return nil, errors.NewDecodeError(
					fmt.Sprintf("end of input with %d open container(s)", len(d.stack)),
					errors.ErrUnterminatedContainer,
				)
			}
			if d.root == nil {
				return nil, errors.NewDecodeError("no value found", errors.ErrEmptyInput)
			}
			return d.root, nil

		case c == '{':
			d.stack = append(d.stack, &objectFrame{obj: value.NewObject()})

		case c == '[':
			d.stack = append(d.stack, &listFrame{list: value.NewList()})

		case c == '}' || c == ']':
			if len(d.stack) == 0 {
				return nil, errors.NewDecodeError(
					fmt.Sprintf("%q with no open container", c),
					errors.ErrMismatchedBracket,
				)
			}
			top := d.stack[len(d.stack)-1]
			d.stack = d.stack[:len(d.stack)-1]
			v, err := top.close(c)
			if err != nil {
				return nil, err
			}
			if err := d.deliver(v); err != nil {
				return nil, err
			}

		case c == ':':
			if len(d.stack) == 0 {
				return nil, errors.NewDecodeError("colon outside any object", errors.ErrUnexpectedColon)
			}
			if err := d.stack[len(d.stack)-1].colon(); err != nil {
				return nil, err
			}

		case c == ',':
			if len(d.stack) == 0 {
				return nil, errors.NewDecodeError("comma outside any container", errors.ErrInvalidCharacter)
			}
			d.stack[len(d.stack)-1].comma()

		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			// whitespace between tokens

		case c == '"':
			s, err := d.decodeString()
			if err != nil {
				return nil, err
			}
			if err := d.deliver(value.NewString(s)); err != nil {
				return nil, err
			}

		case c == '-' || isDigit(c):
			v, err := d.decodeNumber(c)
			if err != nil {
				return nil, err
			}
			if err := d.deliver(v); err != nil {
				return nil, err
			}

		case c == 't' || c == 'f' || c == 'n':
			v, err := d.decodeKeyword(c)
			if err != nil {
				return nil, err
			}
			if err := d.deliver(v); err != nil {
				return nil, err
			}

		default:
			return nil, errors.NewDecodeError(
				fmt.Sprintf("invalid character %q", c),
				errors.ErrInvalidCharacter,
			)
		}
	}
}

// deliver routes a completed value to the innermost open container, or
// makes it the root when no container is open.
func (d *decoder) deliver(v value.Value) error {
	if len(d.stack) > 0 {
		return d.stack[len(d.stack)-1].deliver(v)
	}
	if d.root == nil {
		d.root = v
		return nil
	}
	return errors.NewDecodeError("multiple top-level values", errors.ErrUnexpectedValue)
}

// decodeString consumes a string literal whose opening quote the driver
// has already read, unescaping as it goes.
func (d *decoder) decodeString() (string, error) {
	var b strings.Builder
	for {
		c := d.r.Get()
		switch c {
		case reader.EOF:
			return "", errors.NewDecodeError("end of input inside string literal", errors.ErrUnterminatedString)
		case '"':
			return b.String(), nil
		case '\\':
			if err := d.decodeEscape(&b); err != nil {
				return "", err
			}
		default:
			b.WriteRune(c)
		}
	}
}

// decodeEscape consumes the character(s) after a backslash and appends the
// unescaped result to b.
func (d *decoder) decodeEscape(b *strings.Builder) error {
	c := d.r.Get()
	switch c {
	case '"', '/', '\\':
		b.WriteRune(c)
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'u':
		hex, err := d.r.ReadExactly(4)
		if err != nil {
			return errors.NewDecodeError("truncated unicode escape", errors.ErrInvalidEscape)
		}
		cp, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return errors.NewDecodeError(
				fmt.Sprintf("malformed unicode escape \\u%s", hex),
				errors.ErrInvalidEscape,
			)
		}
		b.WriteRune(rune(cp))
	case reader.EOF:
		return errors.NewDecodeError("end of input inside string literal", errors.ErrUnterminatedString)
	default:
		return errors.NewDecodeError(
			fmt.Sprintf("unknown escape character %q", c),
			errors.ErrInvalidEscape,
		)
	}
	return nil
}

// decodeNumber consumes a numeric literal whose lead character (a digit or
// minus sign) the driver has already read. A fractional part or exponent
// makes the result a Float; otherwise it is an Integer.
func (d *decoder) decodeNumber(lead rune) (value.Value, error) {
	var b strings.Builder
	b.WriteRune(lead)
	if lead == '-' && d.scanDigits(&b) == 0 {
		return nil, errors.NewDecodeError("no digits after minus sign", errors.ErrCorruptNumber)
	}
	if lead != '-' {
		d.scanDigits(&b)
	}

	isFloat := false
	if d.r.Peek() == '.' {
		b.WriteRune(d.r.Get())
		if d.scanDigits(&b) == 0 {
			return nil, errors.NewDecodeError("no digits after decimal point", errors.ErrCorruptNumber)
		}
		isFloat = true
	}
	if c := d.r.Peek(); c == 'e' || c == 'E' {
		b.WriteRune(d.r.Get())
		if c := d.r.Peek(); c == '+' || c == '-' {
			b.WriteRune(d.r.Get())
		}
		if d.scanDigits(&b) == 0 {
			return nil, errors.NewDecodeError("no digits in exponent", errors.ErrCorruptNumber)
		}
		isFloat = true
	}

	lit := b.String()
	if isFloat {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, errors.NewDecodeError(
				fmt.Sprintf("cannot parse %q as a number", lit),
				errors.ErrCorruptNumber,
			)
		}
		return value.NewFloat(f), nil
	}
	n, err := strconv.ParseInt(lit, 10, 64)
	if err != nil {
		return nil, errors.NewDecodeError(
			fmt.Sprintf("cannot parse %q as a 64-bit integer", lit),
			errors.ErrCorruptNumber,
		)
	}
	return value.NewInteger(n), nil
}

// scanDigits consumes consecutive decimal digits into b and returns how
// many it saw. The first non-digit is pushed back for the caller.
func (d *decoder) scanDigits(b *strings.Builder) int {
	n := 0
	for {
		c := d.r.Get()
		if !isDigit(c) {
			if c != reader.EOF {
				d.r.Unget()
			}
			return n
		}
		b.WriteRune(c)
		n++
	}
}

// decodeKeyword consumes the remainder of a true/false/null literal whose
// lead character the driver has already read.
func (d *decoder) decodeKeyword(lead rune) (value.Value, error) {
	var (
		name    string
		tail    string
		v       value.Value
		corrupt error
	)
	switch lead {
	case 't':
		name, tail, v, corrupt = "true", "rue", value.NewBool(true), errors.ErrCorruptTrue
	case 'f':
		name, tail, v, corrupt = "false", "alse", value.NewBool(false), errors.ErrCorruptFalse
	case 'n':
		name, tail, v, corrupt = "null", "ull", value.NewNull(), errors.ErrCorruptNull
	}
	rest, err := d.r.ReadExactly(len(tail))
	if err != nil || rest != tail {
		return nil, errors.NewDecodeError(
			fmt.Sprintf("malformed %s literal", name),
			corrupt,
		)
	}
	return v, nil
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }
