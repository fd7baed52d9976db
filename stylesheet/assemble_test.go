package stylesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flexRule() Rule {
	return Rule{
		Selector:     ".flex",
		Declarations: []Declaration{Decl("display", "flex")},
		Layer:        LayerBase,
		UtilityRank:  1,
		Candidate:    "flex",
	}
}

func TestAssemble_Empty(t *testing.T) {
	out, err := Assemble(nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = Assemble(nil, Options{Banner: "utilcss"})
	require.NoError(t, err)
	assert.Equal(t, "/* utilcss */\n", out)
}

func TestAssemble_DedupLaw(t *testing.T) {
	// Same utility used in two files produces the same rule twice
	out, err := Assemble([]Rule{flexRule(), flexRule()}, Options{})
	require.NoError(t, err)
	assert.Equal(t, ".flex {\n  display: flex;\n}\n", out)
}

func TestAssemble_LayerOrder(t *testing.T) {
	plugin := Rule{
		Selector:     ".no-scrollbar",
		Declarations: []Declaration{Decl("scrollbar-width", "none")},
		Layer:        LayerPlugin,
	}
	variant := Rule{
		Selector:     `.hover\:flex:hover`,
		Declarations: []Declaration{Decl("display", "flex")},
		Layer:        LayerVariant,
		VariantRank:  []int{3},
		UtilityRank:  1,
	}

	// Input order is deliberately reversed
	out, err := Assemble([]Rule{plugin, variant, flexRule()}, Options{})
	require.NoError(t, err)

	expected := `.flex {
  display: flex;
}

.hover\:flex:hover {
  display: flex;
}

.no-scrollbar {
  scrollbar-width: none;
}
`
	assert.Equal(t, expected, out)
}

func TestAssemble_SameLayerStaysTogether(t *testing.T) {
	grid := Rule{
		Selector:     ".grid",
		Declarations: []Declaration{Decl("display", "grid")},
		Layer:        LayerBase,
		UtilityRank:  1,
	}

	out, err := Assemble([]Rule{grid, flexRule()}, Options{})
	require.NoError(t, err)
	assert.Equal(t, ".flex {\n  display: flex;\n}\n.grid {\n  display: grid;\n}\n", out)
}

func TestAssemble_GroupsSharedAtRules(t *testing.T) {
	media := "@media (min-width: 768px)"
	rules := []Rule{
		{
			Selector:     `.md\:flex`,
			AtRules:      []string{media},
			Declarations: []Declaration{Decl("display", "flex")},
			Layer:        LayerVariant,
			VariantRank:  []int{40},
			UtilityRank:  1,
		},
		{
			Selector:     `.md\:block`,
			AtRules:      []string{media},
			Declarations: []Declaration{Decl("display", "block")},
			Layer:        LayerVariant,
			VariantRank:  []int{40},
			UtilityRank:  1,
		},
	}

	out, err := Assemble(rules, Options{})
	require.NoError(t, err)

	expected := `@media (min-width: 768px) {
  .md\:block {
    display: block;
  }
  .md\:flex {
    display: flex;
  }
}
`
	assert.Equal(t, expected, out)
}

func TestAssemble_Minify(t *testing.T) {
	rules := []Rule{
		flexRule(),
		{
			Selector:     `.dark\:text-white`,
			AtRules:      []string{"@media (prefers-color-scheme: dark)"},
			Declarations: []Declaration{{Property: "color", Value: "#fff", Important: true}},
			Layer:        LayerVariant,
			VariantRank:  []int{90},
		},
	}

	out, err := Assemble(rules, Options{Minify: true})
	require.NoError(t, err)
	assert.Equal(t,
		".flex{display:flex}\n@media (prefers-color-scheme: dark){.dark\\:text-white{color:#fff!important}}\n",
		out)
}

func TestAssemble_Deterministic(t *testing.T) {
	a := Rule{Selector: ".a", Declarations: []Declaration{Decl("color", "red")}}
	b := Rule{Selector: ".b", Declarations: []Declaration{Decl("color", "blue")}}

	first, err := Assemble([]Rule{a, b}, Options{})
	require.NoError(t, err)
	second, err := Assemble([]Rule{b, a}, Options{})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAssemble_InvalidRule(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
	}{
		{name: "empty selector", rule: Rule{Declarations: []Declaration{Decl("color", "red")}}},
		{name: "no declarations", rule: Rule{Selector: ".a"}},
		{name: "empty value", rule: Rule{Selector: ".a", Declarations: []Declaration{Decl("color", " ")}}},
		{name: "bad at-rule", rule: Rule{Selector: ".a", AtRules: []string{"media"}, Declarations: []Declaration{Decl("color", "red")}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assemble([]Rule{tt.rule}, Options{})
			var assemblyErr *AssemblyError
			require.ErrorAs(t, err, &assemblyErr)
		})
	}
}

func TestDedup_DoesNotShareSlices(t *testing.T) {
	in := []Rule{flexRule()}
	out := Dedup(in)
	out[0].Declarations[0].Value = "block"
	assert.Equal(t, "flex", in[0].Declarations[0].Value)
}

func TestEscapeClass(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"flex", "flex"},
		{"md:flex", `md\:flex`},
		{"w-1/2", `w-1\/2`},
		{"w-[40%]", `w-\[40\%\]`},
		{"p-0.5", `p-0\.5`},
		{"2xl:flex", `\32 xl\:flex`},
		{"-m-4", "-m-4"},
		{"!font-bold", `\!font-bold`},
		{"-", `\-`},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeClass(tt.token))
		})
	}
}
