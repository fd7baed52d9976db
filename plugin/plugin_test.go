package plugin

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/utilcss/stylesheet"
	"github.com/yacobolo/utilcss/theme"
	"github.com/yacobolo/utilcss/variant"
)

func TestRegistry_FirstRegisteredWins(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Static("a", map[string]map[string]string{"foo": {"color": "red"}})))
	require.NoError(t, r.Register(Static("b", map[string]map[string]string{"foo": {"color": "blue"}})))
	r.Seal()

	m, ok := r.Lookup("foo", theme.Table{})
	require.True(t, ok)
	assert.Equal(t, "a", m.Plugin)
	assert.Equal(t, 0, m.Index)
	assert.Equal(t, []stylesheet.Declaration{stylesheet.Decl("color", "red")}, m.Declarations)

	_, ok = r.Lookup("bar", theme.Table{})
	assert.False(t, ok)
}

func TestRegistry_Sealed(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Variants("v", variant.Spec{Name: "hocus", Selector: "&:hover"})))
	r.Seal()
	assert.True(t, r.Sealed())

	err := r.Register(Static("late", map[string]map[string]string{"x": {"color": "red"}}))
	assert.ErrorIs(t, err, ErrSealed)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_Validation(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
	}{
		{name: "empty name", entry: Static("", map[string]map[string]string{})},
		{name: "no capability", entry: Entry{Name: "empty"}},
		{name: "bad variant", entry: Variants("v", variant.Spec{Name: "x", Selector: ":hover"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			assert.ErrorIs(t, r.Register(tt.entry), ErrInvalidEntry)
			assert.Equal(t, 0, r.Len())
		})
	}

	t.Run("duplicate name", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(Variants("v", variant.Spec{Name: "a", Selector: "&:hover"})))
		assert.ErrorIs(t, r.Register(Variants("v", variant.Spec{Name: "b", Selector: "&:focus"})), ErrInvalidEntry)
	})
}

func TestRegistry_VariantsAndNames(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Variants("first", variant.Spec{Name: "a", Selector: "&.a"})))
	require.NoError(t, r.Register(Func("fn", func(core string, _ theme.Table) ([]stylesheet.Declaration, bool) {
		return nil, false
	})))
	require.NoError(t, r.Register(Variants("second", variant.Spec{Name: "b", AtRule: "@media print"})))

	assert.Equal(t, []string{"first", "fn", "second"}, r.Names())

	specs := r.Variants()
	require.Len(t, specs, 2)
	assert.Equal(t, "a", specs[0].Name)
	assert.Equal(t, "b", specs[1].Name)
}

func TestFunc_UsesTheme(t *testing.T) {
	tbl := theme.Default()
	e := Func("text-shadow", func(core string, t theme.Table) ([]stylesheet.Declaration, bool) {
		key, ok := strings.CutPrefix(core, "text-shadow-")
		if !ok {
			return nil, false
		}
		c, ok := t.LookupString("colors", key)
		if !ok {
			return nil, false
		}
		return []stylesheet.Declaration{stylesheet.Decl("text-shadow", "0 1px 2px "+c)}, true
	})

	decls, ok := e.Mapper.MapUtility("text-shadow-red-500", tbl)
	require.True(t, ok)
	assert.Equal(t, "0 1px 2px #ef4444", decls[0].Value)

	_, ok = e.Mapper.MapUtility("text-shadow-nope", tbl)
	assert.False(t, ok)
}

func TestStatic_SortsProperties(t *testing.T) {
	e := Static("s", map[string]map[string]string{
		"btn": {"padding": "1rem", "color": "red", "border": "0"},
	})
	decls, ok := e.Mapper.MapUtility("btn", theme.Table{})
	require.True(t, ok)
	assert.Equal(t, []string{"border", "color", "padding"}, stylesheet.Rule{Declarations: decls}.Properties())
}

func TestFromCSS(t *testing.T) {
	src := `
/* scrollbar helpers */
@import "other.css";

.no-scrollbar {
  scrollbar-width: none;
  -ms-overflow-style: none;
}

.no-scrollbar::-webkit-scrollbar {
  display: none;
}

@media (min-width: 640px) {
  .wide { width: 100%; }
}

@layer utilities {
  .blinking-cursor {
    animation: blink 1s step-end infinite;
    color: red !important;
  }
}

.card .title { font-weight: 700; }

.w-1\/2 { width: 50%; }

.no-scrollbar { scrollbar-width: thin; }
`

	e, err := FromCSS("helpers", src)
	require.NoError(t, err)

	tests := []struct {
		class string
		want  []stylesheet.Declaration
	}{
		{
			class: "no-scrollbar",
			want: []stylesheet.Declaration{
				stylesheet.Decl("scrollbar-width", "thin"),
				stylesheet.Decl("-ms-overflow-style", "none"),
			},
		},
		{
			class: "blinking-cursor",
			want: []stylesheet.Declaration{
				stylesheet.Decl("animation", "blink 1s step-end infinite"),
				{Property: "color", Value: "red", Important: true},
			},
		},
		{
			class: "w-1/2",
			want:  []stylesheet.Declaration{stylesheet.Decl("width", "50%")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			got, ok := e.Mapper.MapUtility(tt.class, theme.Table{})
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, missing := range []string{"wide", "title", "card"} {
		_, ok := e.Mapper.MapUtility(missing, theme.Table{})
		assert.False(t, ok, missing)
	}
}

func TestFromCSS_NoClasses(t *testing.T) {
	_, err := FromCSS("empty", "a { color: red; }")
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestDefinition_Entry(t *testing.T) {
	fsys := fstest.MapFS{
		"plugins/helpers.css": {Data: []byte(".no-scrollbar { scrollbar-width: none; }")},
	}

	t.Run("utilities and variants", func(t *testing.T) {
		e, err := Definition{
			Name:      "brand",
			Utilities: map[string]map[string]string{"btn": {"padding": "1rem"}},
			Variants:  map[string]string{"hocus": "&:hover, &:focus", "tall": "@media (min-height: 800px)"},
		}.Entry(fsys)
		require.NoError(t, err)

		_, ok := e.Mapper.MapUtility("btn", theme.Table{})
		assert.True(t, ok)
		require.Len(t, e.Variants, 2)
		assert.Equal(t, variant.Spec{Name: "hocus", Selector: "&:hover, &:focus"}, e.Variants[0])
		assert.Equal(t, variant.Spec{Name: "tall", AtRule: "@media (min-height: 800px)"}, e.Variants[1])
	})

	t.Run("css file", func(t *testing.T) {
		e, err := Definition{Name: "helpers", CSS: "./plugins/helpers.css"}.Entry(fsys)
		require.NoError(t, err)
		_, ok := e.Mapper.MapUtility("no-scrollbar", theme.Table{})
		assert.True(t, ok)
	})

	t.Run("missing css file", func(t *testing.T) {
		_, err := Definition{Name: "x", CSS: "nope.css"}.Entry(fsys)
		assert.Error(t, err)
	})

	t.Run("nothing contributed", func(t *testing.T) {
		_, err := Definition{Name: "x"}.Entry(fsys)
		assert.ErrorIs(t, err, ErrInvalidEntry)
	})

	t.Run("both utilities and css", func(t *testing.T) {
		_, err := Definition{
			Name:      "x",
			CSS:       "plugins/helpers.css",
			Utilities: map[string]map[string]string{"a": {"color": "red"}},
		}.Entry(fsys)
		assert.ErrorIs(t, err, ErrInvalidEntry)
	})
}
