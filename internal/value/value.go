package value

import (
	"fmt"

	"github.com/mcncl/jsondom/internal/errors"
)

// Kind identifies which variant of the JSON value model a Value is.
// A value's kind is fixed at construction and never changes.
type Kind int

const (
	KindObject Kind = iota
	KindList
	KindString
	KindInteger
	KindFloat
	KindBool
	KindNull
)

// String returns the lower-case name of the kind, as used in error messages.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindList:
		return "list"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Value is a node in a decoded JSON tree. The variant set is closed:
// Object, List, String, Integer, Float, Bool and Null are the only
// implementations. Every variant exposes the full accessor set, but only
// the accessor matching its own kind succeeds; the rest fail with a
// type-mismatch error rather than returning a default.
type Value interface {
	// Kind reports the variant of this value.
	Kind() Kind
	// Get returns the member stored under key. Object only.
	Get(key string) (Value, error)
	// At returns the element at index. List only.
	At(index int) (Value, error)
	// Str returns the text of a String value.
	Str() (string, error)
	// Int returns the value of an Integer.
	Int() (int64, error)
	// Float returns the value of a Float.
	Float() (float64, error)
	// Bool returns the value of a Bool.
	Bool() (bool, error)
	// IsNull reports whether the value is Null.
	IsNull() bool
}

// deny supplies the default-denying accessor set shared by every variant.
// Each variant embeds a deny carrying its own kind and overrides only the
// accessor it natively supports.
type deny struct {
	kind Kind
}

func (d deny) Kind() Kind { return d.kind }

func (d deny) mismatch(want Kind) error {
	return errors.NewAccessError(
		fmt.Sprintf("value is %s, not %s", d.kind, want),
		errors.ErrTypeMismatch,
	)
}

func (d deny) Get(string) (Value, error) { return nil, d.mismatch(KindObject) }
func (d deny) At(int) (Value, error)     { return nil, d.mismatch(KindList) }
func (d deny) Str() (string, error)      { return "", d.mismatch(KindString) }
func (d deny) Int() (int64, error)       { return 0, d.mismatch(KindInteger) }
func (d deny) Float() (float64, error)   { return 0, d.mismatch(KindFloat) }
func (d deny) Bool() (bool, error)       { return false, d.mismatch(KindBool) }
func (d deny) IsNull() bool              { return false }

// Object is an ordered mapping of unique string keys to values. Insertion
// order is preserved so that encoding is deterministic.
type Object struct {
	deny
	keys    []string
	members map[string]Value
}

// NewObject creates an empty Object.
func NewObject() *Object {
	return &Object{
		deny:    deny{kind: KindObject},
		members: make(map[string]Value),
	}
}

// Set stores v under key, replacing any previous value. A replaced key
// keeps its original position in the insertion order.
func (o *Object) Set(key string, v Value) {
	if _, exists := o.members[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.members[key] = v
}

// Get returns the member stored under key, or a key-not-found error.
func (o *Object) Get(key string) (Value, error) {
	v, ok := o.members[key]
	if !ok {
		return nil, errors.NewAccessError(
			fmt.Sprintf("key %q not found in object", key),
			errors.ErrKeyNotFound,
		)
	}
	return v, nil
}

// Keys returns the object's keys in insertion order.
func (o *Object) Keys() []string { return o.keys }

// Len returns the number of members.
func (o *Object) Len() int { return len(o.keys) }

// List is an ordered sequence of values.
type List struct {
	deny
	items []Value
}

// NewList creates a List holding the given items.
func NewList(items ...Value) *List {
	return &List{deny: deny{kind: KindList}, items: items}
}

// Append adds v to the end of the list.
func (l *List) Append(v Value) { l.items = append(l.items, v) }

// At returns the element at index, or an index-out-of-range error.
func (l *List) At(index int) (Value, error) {
	if index < 0 || index >= len(l.items) {
		return nil, errors.NewAccessError(
			fmt.Sprintf("index %d out of range for list of length %d", index, len(l.items)),
			errors.ErrIndexOutOfRange,
		)
	}
	return l.items[index], nil
}

// Items returns the underlying element slice in order.
func (l *List) Items() []Value { return l.items }

// Len returns the number of elements.
func (l *List) Len() int { return len(l.items) }

// String is a JSON string. The stored text is unescaped; escaping happens
// only on encoding.
type String struct {
	deny
	v string
}

// NewString creates a String holding s.
func NewString(s string) *String {
	return &String{deny: deny{kind: KindString}, v: s}
}

func (s *String) Str() (string, error) { return s.v, nil }

// Integer is a 64-bit signed JSON number without a fractional part.
type Integer struct {
	deny
	v int64
}

// NewInteger creates an Integer holding n.
func NewInteger(n int64) *Integer {
	return &Integer{deny: deny{kind: KindInteger}, v: n}
}

func (i *Integer) Int() (int64, error) { return i.v, nil }

// Float is a 64-bit IEEE JSON number with a fractional part or exponent.
type Float struct {
	deny
	v float64
}

// NewFloat creates a Float holding f.
func NewFloat(f float64) *Float {
	return &Float{deny: deny{kind: KindFloat}, v: f}
}

func (f *Float) Float() (float64, error) { return f.v, nil }

// Bool is a JSON boolean.
type Bool struct {
	deny
	v bool
}

// NewBool creates a Bool holding b.
func NewBool(b bool) *Bool {
	return &Bool{deny: deny{kind: KindBool}, v: b}
}

func (b *Bool) Bool() (bool, error) { return b.v, nil }

// Null is the JSON null value.
type Null struct {
	deny
}

// NewNull creates a Null.
func NewNull() *Null {
	return &Null{deny: deny{kind: KindNull}}
}

func (n *Null) IsNull() bool { return true }

// Equal reports whether a and b are observationally equal: same kind and
// same content at every node. Object member order is not significant for
// equality, only the key/value sets are compared.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case *Object:
		bv := b.(*Object)
		if av.Len() != bv.Len() {
			return false
		}
		for _, key := range av.keys {
			bm, ok := bv.members[key]
			if !ok || !Equal(av.members[key], bm) {
				return false
			}
		}
		return true
	case *List:
		bv := b.(*List)
		if av.Len() != bv.Len() {
			return false
		}
		for i, item := range av.items {
			if !Equal(item, bv.items[i]) {
				return false
			}
		}
		return true
	case *String:
		bv := b.(*String)
		return av.v == bv.v
	case *Integer:
		bv := b.(*Integer)
		return av.v == bv.v
	case *Float:
		bv := b.(*Float)
		return av.v == bv.v
	case *Bool:
		bv := b.(*Bool)
		return av.v == bv.v
	case *Null:
		return true
	default:
		return false
	}
}
