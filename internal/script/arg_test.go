package script_test

import (
	"testing"

	"github.com/bjaus/uprint"
	"github.com/bjaus/uprint/internal/script"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArg(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in   any
		want uprint.Renderer
	}{
		"string":       {in: "Foo", want: uprint.Str("Foo")},
		"bool":         {in: true, want: uprint.Bool(true)},
		"yaml int":     {in: -3, want: uprint.Int(-3)},
		"toml int":     {in: int64(7), want: uprint.Int(7)},
		"json number":  {in: float64(12), want: uprint.Int(12)},
		"uint64":       {in: uint64(9), want: uprint.Int(9)},
		"str":          {in: map[string]any{"str": "5"}, want: uprint.Str("5")},
		"int":          {in: map[string]any{"int": -1}, want: uprint.Int(-1)},
		"uint":         {in: map[string]any{"uint": int64(4000000000)}, want: uprint.Uint32(4000000000)},
		"hex":          {in: map[string]any{"hex": 255}, want: uprint.Hex(255)},
		"hex negative": {in: map[string]any{"hex": -1}, want: uprint.Hex(0xFFFFFFFF)},
		"binary":       {in: map[string]any{"binary": 4}, want: uprint.Binary(4)},
		"bool key":     {in: map[string]any{"bool": false}, want: uprint.Bool(false)},
		"char":         {in: map[string]any{"char": "x"}, want: uprint.Char('x')},
		"nospace":      {in: map[string]any{"sep": "nospace"}, want: uprint.Nospace},
		"comma":        {in: map[string]any{"sep": "comma"}, want: uprint.Comma},
		"unspaced":     {in: map[string]any{"unspaced": 304}, want: uprint.Unspaced(uprint.Int(304))},
		"unspaced hex": {in: map[string]any{"unspaced": map[string]any{"hex": 10}}, want: uprint.Unspaced(uprint.Hex(10))},
		"units":        {in: map[string]any{"units": map[string]any{"value": 5, "label": "mA"}}, want: uprint.UnitsOf(uprint.Int(5), "mA")},
		"units of hex": {in: map[string]any{"units": map[string]any{"value": map[string]any{"hex": 16}, "label": "h"}}, want: uprint.UnitsOf(uprint.Hex(16), "h")},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := script.Arg(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArgErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		in     any
		target error
	}{
		"nil":             {in: nil, target: script.ErrInvalidArg},
		"fractional":      {in: 1.5, target: script.ErrUnknownArg},
		"list":            {in: []any{1}, target: script.ErrUnknownArg},
		"unknown key":     {in: map[string]any{"oct": 8}, target: script.ErrUnknownArg},
		"two keys":        {in: map[string]any{"hex": 1, "binary": 1}, target: script.ErrInvalidArg},
		"empty map":       {in: map[string]any{}, target: script.ErrInvalidArg},
		"str not string":  {in: map[string]any{"str": 1}, target: script.ErrInvalidArg},
		"hex not int":     {in: map[string]any{"hex": "ff"}, target: script.ErrInvalidArg},
		"hex too big":     {in: map[string]any{"hex": int64(1) << 33}, target: script.ErrInvalidArg},
		"uint negative":   {in: map[string]any{"uint": -1}, target: script.ErrInvalidArg},
		"bool not bool":   {in: map[string]any{"bool": "yes"}, target: script.ErrInvalidArg},
		"char too long":   {in: map[string]any{"char": "xy"}, target: script.ErrInvalidArg},
		"bad sep":         {in: map[string]any{"sep": "semicolon"}, target: script.ErrInvalidArg},
		"units not map":   {in: map[string]any{"units": 5}, target: script.ErrInvalidArg},
		"units no label":  {in: map[string]any{"units": map[string]any{"value": 5}}, target: script.ErrInvalidArg},
		"units bad value": {in: map[string]any{"units": map[string]any{"label": "V"}}, target: script.ErrInvalidArg},
		"unspaced bad":    {in: map[string]any{"unspaced": nil}, target: script.ErrInvalidArg},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := script.Arg(tt.in)
			require.ErrorIs(t, err, tt.target)
			assert.Nil(t, got)
		})
	}
}

func TestArgs(t *testing.T) {
	t.Parallel()
	got, err := script.Args([]any{"Foo", map[string]any{"sep": "comma"}, "Bar"})
	require.NoError(t, err)
	assert.Equal(t, "Foo, Bar\n", uprint.Sprint(got...))

	_, err = script.Args([]any{"ok", map[string]any{"nope": 1}})
	require.ErrorIs(t, err, script.ErrUnknownArg)
	assert.Contains(t, err.Error(), "argument 2")
}
