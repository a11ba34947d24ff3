package decoder

import (
	"fmt"

	"github.com/mcncl/jsondom/internal/errors"
	"github.com/mcncl/jsondom/internal/value"
)

// objectFrame tracks one open object: the partial Object being filled, the
// key read but not yet paired with a value, and whether a comma promised
// another member.
type objectFrame struct {
	obj      *value.Object
	key      string
	hasKey   bool
	awaiting bool
}

func (f *objectFrame) deliver(v value.Value) error {
	if !f.hasKey {
		s, ok := v.(*value.String)
		if !ok {
			return errors.NewDecodeError(
				fmt.Sprintf("object key must be a string, got %s", v.Kind()),
				errors.ErrInvalidKey,
			)
		}
		f.key, _ = s.Str()
		f.hasKey = true
		return nil
	}
	f.obj.Set(f.key, v)
	f.key = ""
	f.hasKey = false
	f.awaiting = false
	return nil
}

func (f *objectFrame) colon() error {
	if !f.hasKey {
		return errors.NewDecodeError("colon without a preceding key", errors.ErrUnexpectedColon)
	}
	return nil
}

func (f *objectFrame) comma() { f.awaiting = true }

func (f *objectFrame) close(bracket rune) (value.Value, error) {
	if bracket != '}' {
		return nil, errors.NewDecodeError("']' closing an object", errors.ErrMismatchedBracket)
	}
	if f.hasKey {
		return nil, errors.NewDecodeError(
			fmt.Sprintf("key %q has no value", f.key),
			errors.ErrDanglingKey,
		)
	}
	if f.awaiting {
		return nil, errors.NewDecodeError("comma before '}' promises another member", errors.ErrTrailingComma)
	}
	return f.obj, nil
}

// listFrame tracks one open list: the partial List being filled and
// whether a comma promised another element.
type listFrame struct {
	list     *value.List
	awaiting bool
}

func (f *listFrame) deliver(v value.Value) error {
	f.list.Append(v)
	f.awaiting = false
	return nil
}

func (f *listFrame) colon() error {
	return errors.NewDecodeError("colon inside a list", errors.ErrUnexpectedColon)
}

func (f *listFrame) comma() { f.awaiting = true }

func (f *listFrame) close(bracket rune) (value.Value, error) {
	if bracket != ']' {
		return nil, errors.NewDecodeError("'}' closing a list", errors.ErrMismatchedBracket)
	}
	if f.awaiting {
		return nil, errors.NewDecodeError("comma before ']' promises another element", errors.ErrTrailingComma)
	}
	return f.list, nil
}
