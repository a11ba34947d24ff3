// Package transform rewrites decoded JSON trees structurally. The only
// transform today is Rekey, which converts object key style. Transforms
// never mutate their input: containers are rebuilt, scalar nodes are
// shared between the old and new tree.
package transform

import (
	"fmt"

	"github.com/iancoleman/strcase"

	"github.com/mcncl/jsondom/internal/errors"
	"github.com/mcncl/jsondom/internal/value"
)

// KeyStyle names a casing convention for object keys.
type KeyStyle string

const (
	StyleCamel  KeyStyle = "camel"
	StylePascal KeyStyle = "pascal"
	StyleSnake  KeyStyle = "snake"
	StyleKebab  KeyStyle = "kebab"
)

// ParseKeyStyle validates a user-supplied style name.
func ParseKeyStyle(s string) (KeyStyle, error) {
	switch KeyStyle(s) {
	case StyleCamel, StylePascal, StyleSnake, StyleKebab:
		return KeyStyle(s), nil
	}
	return "", errors.NewTransformError(fmt.Sprintf("unknown key style %q", s), nil)
}

func (s KeyStyle) convert(key string) string {
	switch s {
	case StyleCamel:
		return strcase.ToLowerCamel(key)
	case StylePascal:
		return strcase.ToCamel(key)
	case StyleSnake:
		return strcase.ToSnake(key)
	case StyleKebab:
		return strcase.ToKebab(key)
	}
	return key
}

// Rekey returns a copy of v with every object key rewritten to the given
// style. Member order is preserved; if two keys rewrite to the same name,
// the later one wins.
func Rekey(v value.Value, style KeyStyle) (value.Value, error) {
	if _, err := ParseKeyStyle(string(style)); err != nil {
		return nil, err
	}
	return rekey(v, style), nil
}

func rekey(v value.Value, style KeyStyle) value.Value {
	switch t := v.(type) {
	case *value.Object:
		out := value.NewObject()
		for _, key := range t.Keys() {
			member, _ := t.Get(key)
			out.Set(style.convert(key), rekey(member, style))
		}
		return out
	case *value.List:
		out := value.NewList()
		for _, item := range t.Items() {
			out.Append(rekey(item, style))
		}
		return out
	default:
		return v
	}
}
