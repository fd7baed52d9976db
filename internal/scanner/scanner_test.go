package scanner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "html class attribute",
			input: `<div class="flex items-center">x</div>`,
			want:  []string{"/div", "class", "div", "flex", "items-center", "x"},
		},
		{
			name:  "duplicates collapse",
			input: "flex flex\tflex\nflex",
			want:  []string{"flex"},
		},
		{
			name:  "variants and fractions",
			input: `"md:hover:bg-blue-500 w-1/2 p-0.5"`,
			want:  []string{"md:hover:bg-blue-500", "p-0.5", "w-1/2"},
		},
		{
			name:  "arbitrary values keep quotes parens and commas",
			input: `{"class": "font-['JetBrains_Mono',monospace] text-[clamp(1rem,2vw,2rem)] w-[40%]"}`,
			want: []string{
				"JetBrains_Mono", "class", "font-[", "font-['JetBrains_Mono',monospace]",
				"monospace", "text-[clamp(1rem,2vw,2rem)]", "w-[40%]",
			},
		},
		{
			name:  "arbitrary property",
			input: `'[mask-type:luminance]'`,
			want:  []string{"[mask-type:luminance]"},
		},
		{
			name:  "trailing sentence punctuation",
			input: "Use flex. Or block:",
			want:  []string{"Or", "Use", "block", "flex"},
		},
		{
			name:  "important and negative",
			input: "!font-bold -mt-4",
			want:  []string{"!font-bold", "-mt-4"},
		},
		{
			name:  "tokens without letters are dropped",
			input: "1 2.5 100% -- [] 42",
			want:  []string{},
		},
		{
			name:  "whitespace ends arbitrary values",
			input: "font['Inter', font-sans]",
			want:  []string{"Inter", "font-sans", "font[", "font['Inter',"},
		},
		{
			name:  "quoted subscripts expose their contents",
			input: `el = styles['bg-red-500']`,
			want:  []string{"bg-red-500", "el", "styles[", "styles['bg-red-500']"},
		},
		{
			name:  "quoted arbitrary value inside a subscript",
			input: `x['w-[40%]']`,
			want:  []string{"w-[40%]", "x[", "x['w-[40%]']"},
		},
		{
			name:  "invalid utf-8 is dropped",
			input: "w-[1\xffpx] flex [--x:\xff]",
			want:  []string{"flex"},
		},
		{
			name:  "python dict",
			input: `{"class": "my-8 border-t border-gray-300", "aria-hidden": "true"}`,
			want:  []string{"aria-hidden", "border-gray-300", "border-t", "class", "my-8", "true"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Scan(tt.input).Sorted())
		})
	}
}

func TestScan_EscapedCharacters(t *testing.T) {
	set := Scan(`a\:b`)
	assert.True(t, set.Has(`a\:b`))
}

func TestScan_LengthCap(t *testing.T) {
	long := "a" + strings.Repeat("b", MaxTokenLen)
	set := Scan("flex " + long)
	assert.Equal(t, []string{"flex"}, set.Sorted())
}

func TestScan_Deterministic(t *testing.T) {
	input := `<p class="text-sm dark:text-white hover:underline md:w-1/3">`
	first := Scan(input).Sorted()
	for range 10 {
		assert.Equal(t, first, Scan(input).Sorted())
	}
}

func TestSet(t *testing.T) {
	a := NewSet("flex", "block")
	b := NewSet("block", "grid", "")

	a.Merge(b)
	assert.Equal(t, 3, a.Len())
	assert.True(t, a.Has("grid"))
	assert.False(t, a.Has(""))
	assert.Equal(t, []string{"block", "flex", "grid"}, a.Sorted())
}
