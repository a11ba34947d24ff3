package transform

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/jsondom/internal/errors"
	"github.com/mcncl/jsondom/internal/value"
)

func TestParseKeyStyle(t *testing.T) {
	for _, valid := range []string{"camel", "pascal", "snake", "kebab"} {
		style, err := ParseKeyStyle(valid)
		require.NoError(t, err)
		assert.Equal(t, KeyStyle(valid), style)
	}

	_, err := ParseKeyStyle("shouty")
	require.Error(t, err)
	var appErr *errors.AppError
	require.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, errors.ErrorTypeTransform, appErr.Type)
}

func TestRekey(t *testing.T) {
	nested := value.NewObject()
	nested.Set("inner_key", value.NewList(value.NewInteger(1)))

	root := value.NewObject()
	root.Set("first_name", value.NewString("x"))
	root.Set("nested_obj", nested)

	out, err := Rekey(root, StyleCamel)
	require.NoError(t, err)

	obj := out.(*value.Object)
	assert.Equal(t, []string{"firstName", "nestedObj"}, obj.Keys())

	member, err := obj.Get("nestedObj")
	require.NoError(t, err)
	assert.Equal(t, []string{"innerKey"}, member.(*value.Object).Keys())

	// Values survive untouched.
	name, err := obj.Get("firstName")
	require.NoError(t, err)
	s, _ := name.Str()
	assert.Equal(t, "x", s)

	// The input tree is not mutated.
	assert.Equal(t, []string{"first_name", "nested_obj"}, root.Keys())
}

func TestRekey_Styles(t *testing.T) {
	root := value.NewObject()
	root.Set("someKey", value.NewInteger(1))

	cases := map[KeyStyle]string{
		StyleCamel:  "someKey",
		StylePascal: "SomeKey",
		StyleSnake:  "some_key",
		StyleKebab:  "some-key",
	}
	for style, want := range cases {
		out, err := Rekey(root, style)
		require.NoError(t, err)
		assert.Equal(t, []string{want}, out.(*value.Object).Keys(), "style %s", style)
	}
}

func TestRekey_ScalarsPassThrough(t *testing.T) {
	v := value.NewString("hi")
	out, err := Rekey(v, StyleSnake)
	require.NoError(t, err)
	assert.Same(t, value.Value(v), out)
}

func TestRekey_UnknownStyle(t *testing.T) {
	_, err := Rekey(value.NewObject(), KeyStyle("loud"))
	require.Error(t, err)
}

func TestRekey_CollidingKeysLastWins(t *testing.T) {
	root := value.NewObject()
	root.Set("my_key", value.NewInteger(1))
	root.Set("myKey", value.NewInteger(2))

	out, err := Rekey(root, StyleSnake)
	require.NoError(t, err)
	obj := out.(*value.Object)
	require.Equal(t, 1, obj.Len())
	got, err := obj.Get("my_key")
	require.NoError(t, err)
	n, _ := got.Int()
	assert.Equal(t, int64(2), n)
}
