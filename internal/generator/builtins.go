package generator

import (
	"strings"

	"github.com/yacobolo/utilcss/stylesheet"
)

type decls = []stylesheet.Declaration

func d(prop, value string) stylesheet.Declaration { return stylesheet.Decl(prop, value) }

var (
	lengthTypes = []valueType{typeLength, typeVar, typeOther}
	colorTypes  = []valueType{typeColor, typeVar}
	numberTypes = []valueType{typeNumber, typeVar}
)

var sizeKeywords = map[string]string{
	"auto": "auto",
	"full": "100%",
	"min":  "min-content",
	"max":  "max-content",
	"fit":  "fit-content",
}

func with(base map[string]string, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// spacing returns a family over the spacing scale.
func spacing(prefix string, negative bool, keywords map[string]string, properties ...string) *family {
	return &family{
		prefix:   prefix,
		category: "spacing",
		keywords: keywords,
		accepts:  lengthTypes,
		negative: negative,
		decls:    props(properties...),
	}
}

func sized(prefix string, keywords map[string]string, properties ...string) *family {
	f := spacing(prefix, false, keywords, properties...)
	f.fractions = true
	return f
}

func colorFamily(prefix string, properties ...string) *family {
	return &family{
		prefix:   prefix,
		category: "colors",
		accepts:  colorTypes,
		color:    true,
		decls:    props(properties...),
	}
}

func span(n string) string { return "span " + n + " / span " + n }

func repeatTracks(n string) string { return "repeat(" + n + ", minmax(0, 1fr))" }

func identity(n string) string { return n }

var layoutStatics = static{
	"block":        {d("display", "block")},
	"inline-block": {d("display", "inline-block")},
	"inline":       {d("display", "inline")},
	"flex":         {d("display", "flex")},
	"inline-flex":  {d("display", "inline-flex")},
	"grid":         {d("display", "grid")},
	"inline-grid":  {d("display", "inline-grid")},
	"table":        {d("display", "table")},
	"contents":     {d("display", "contents")},
	"hidden":       {d("display", "none")},

	"static":   {d("position", "static")},
	"fixed":    {d("position", "fixed")},
	"absolute": {d("position", "absolute")},
	"relative": {d("position", "relative")},
	"sticky":   {d("position", "sticky")},

	"visible":   {d("visibility", "visible")},
	"invisible": {d("visibility", "hidden")},
	"collapse":  {d("visibility", "collapse")},

	"box-border":  {d("box-sizing", "border-box")},
	"box-content": {d("box-sizing", "content-box")},

	"sr-only": {
		d("position", "absolute"),
		d("width", "1px"),
		d("height", "1px"),
		d("padding", "0"),
		d("margin", "-1px"),
		d("overflow", "hidden"),
		d("clip", "rect(0, 0, 0, 0)"),
		d("white-space", "nowrap"),
		d("border-width", "0"),
	},
	"not-sr-only": {
		d("position", "static"),
		d("width", "auto"),
		d("height", "auto"),
		d("padding", "0"),
		d("margin", "0"),
		d("overflow", "visible"),
		d("clip", "auto"),
		d("white-space", "normal"),
	},

	"object-contain": {d("object-fit", "contain")},
	"object-cover":   {d("object-fit", "cover")},
}

var flexStatics = static{
	"flex-row":          {d("flex-direction", "row")},
	"flex-row-reverse":  {d("flex-direction", "row-reverse")},
	"flex-col":          {d("flex-direction", "column")},
	"flex-col-reverse":  {d("flex-direction", "column-reverse")},
	"flex-wrap":         {d("flex-wrap", "wrap")},
	"flex-wrap-reverse": {d("flex-wrap", "wrap-reverse")},
	"flex-nowrap":       {d("flex-wrap", "nowrap")},
	"flex-1":            {d("flex", "1 1 0%")},
	"flex-auto":         {d("flex", "1 1 auto")},
	"flex-initial":      {d("flex", "0 1 auto")},
	"flex-none":         {d("flex", "none")},
	"grow":              {d("flex-grow", "1")},
	"grow-0":            {d("flex-grow", "0")},
	"shrink":            {d("flex-shrink", "1")},
	"shrink-0":          {d("flex-shrink", "0")},

	"items-start":    {d("align-items", "flex-start")},
	"items-end":      {d("align-items", "flex-end")},
	"items-center":   {d("align-items", "center")},
	"items-baseline": {d("align-items", "baseline")},
	"items-stretch":  {d("align-items", "stretch")},

	"justify-start":   {d("justify-content", "flex-start")},
	"justify-end":     {d("justify-content", "flex-end")},
	"justify-center":  {d("justify-content", "center")},
	"justify-between": {d("justify-content", "space-between")},
	"justify-around":  {d("justify-content", "space-around")},
	"justify-evenly":  {d("justify-content", "space-evenly")},

	"content-start":   {d("align-content", "flex-start")},
	"content-end":     {d("align-content", "flex-end")},
	"content-center":  {d("align-content", "center")},
	"content-between": {d("align-content", "space-between")},
	"content-around":  {d("align-content", "space-around")},

	"self-auto":    {d("align-self", "auto")},
	"self-start":   {d("align-self", "flex-start")},
	"self-end":     {d("align-self", "flex-end")},
	"self-center":  {d("align-self", "center")},
	"self-stretch": {d("align-self", "stretch")},

	"place-items-center":   {d("place-items", "center")},
	"place-content-center": {d("place-content", "center")},
}

var overflowStatics = static{
	"overflow-auto":       {d("overflow", "auto")},
	"overflow-hidden":     {d("overflow", "hidden")},
	"overflow-clip":       {d("overflow", "clip")},
	"overflow-visible":    {d("overflow", "visible")},
	"overflow-scroll":     {d("overflow", "scroll")},
	"overflow-x-auto":     {d("overflow-x", "auto")},
	"overflow-y-auto":     {d("overflow-y", "auto")},
	"overflow-x-hidden":   {d("overflow-x", "hidden")},
	"overflow-y-hidden":   {d("overflow-y", "hidden")},
	"overflow-x-scroll":   {d("overflow-x", "scroll")},
	"overflow-y-scroll":   {d("overflow-y", "scroll")},
	"truncate":            {d("overflow", "hidden"), d("text-overflow", "ellipsis"), d("white-space", "nowrap")},
	"text-ellipsis":       {d("text-overflow", "ellipsis")},
	"text-clip":           {d("text-overflow", "clip")},
	"whitespace-normal":   {d("white-space", "normal")},
	"whitespace-nowrap":   {d("white-space", "nowrap")},
	"whitespace-pre":      {d("white-space", "pre")},
	"whitespace-pre-line": {d("white-space", "pre-line")},
	"whitespace-pre-wrap": {d("white-space", "pre-wrap")},
	"break-normal":        {d("overflow-wrap", "normal"), d("word-break", "normal")},
	"break-words":         {d("overflow-wrap", "break-word")},
	"break-all":           {d("word-break", "break-all")},
}

var borderStyleStatics = static{
	"border-solid":  {d("border-style", "solid")},
	"border-dashed": {d("border-style", "dashed")},
	"border-dotted": {d("border-style", "dotted")},
	"border-double": {d("border-style", "double")},
	"border-hidden": {d("border-style", "hidden")},
	"border-none":   {d("border-style", "none")},
}

var textAlignStatics = static{
	"text-left":    {d("text-align", "left")},
	"text-center":  {d("text-align", "center")},
	"text-right":   {d("text-align", "right")},
	"text-justify": {d("text-align", "justify")},
	"text-start":   {d("text-align", "start")},
	"text-end":     {d("text-align", "end")},
}

var typographyStatics = static{
	"uppercase":   {d("text-transform", "uppercase")},
	"lowercase":   {d("text-transform", "lowercase")},
	"capitalize":  {d("text-transform", "capitalize")},
	"normal-case": {d("text-transform", "none")},

	"italic":     {d("font-style", "italic")},
	"not-italic": {d("font-style", "normal")},

	"underline":    {d("text-decoration-line", "underline")},
	"overline":     {d("text-decoration-line", "overline")},
	"line-through": {d("text-decoration-line", "line-through")},
	"no-underline": {d("text-decoration-line", "none")},

	"antialiased": {d("-webkit-font-smoothing", "antialiased"), d("-moz-osx-font-smoothing", "grayscale")},
}

const (
	easing        = "cubic-bezier(0.4, 0, 0.2, 1)"
	colorProps    = "color, background-color, border-color, text-decoration-color, fill, stroke"
	defaultTiming = "150ms"
)

var interactionStatics = static{
	"transition": {
		d("transition-property", colorProps+", opacity, box-shadow, transform, filter, backdrop-filter"),
		d("transition-timing-function", easing),
		d("transition-duration", defaultTiming),
	},
	"transition-all": {
		d("transition-property", "all"),
		d("transition-timing-function", easing),
		d("transition-duration", defaultTiming),
	},
	"transition-colors": {
		d("transition-property", colorProps),
		d("transition-timing-function", easing),
		d("transition-duration", defaultTiming),
	},
	"transition-opacity": {
		d("transition-property", "opacity"),
		d("transition-timing-function", easing),
		d("transition-duration", defaultTiming),
	},
	"transition-none": {d("transition-property", "none")},

	"cursor-auto":        {d("cursor", "auto")},
	"cursor-default":     {d("cursor", "default")},
	"cursor-pointer":     {d("cursor", "pointer")},
	"cursor-wait":        {d("cursor", "wait")},
	"cursor-text":        {d("cursor", "text")},
	"cursor-move":        {d("cursor", "move")},
	"cursor-not-allowed": {d("cursor", "not-allowed")},

	"pointer-events-none": {d("pointer-events", "none")},
	"pointer-events-auto": {d("pointer-events", "auto")},

	"select-none": {d("user-select", "none")},
	"select-text": {d("user-select", "text")},
	"select-all":  {d("user-select", "all")},
	"select-auto": {d("user-select", "auto")},
}

// builtins returns the built-in utilities in output order. When two
// families could read the same token the earlier one wins, so "text-lg"
// is a font size and "text-red-500" a color.
func builtins() []utility {
	insetKeywords := map[string]string{"auto": "auto", "full": "100%"}
	marginKeywords := map[string]string{"auto": "auto"}

	inset := func(prefix string, properties ...string) *family {
		f := spacing(prefix, true, insetKeywords, properties...)
		f.fractions = true
		return f
	}
	radius := func(prefix string, properties ...string) *family {
		return &family{prefix: prefix, category: "borderRadius", accepts: lengthTypes, decls: props(properties...)}
	}
	borderWidth := func(prefix string, properties ...string) *family {
		return &family{prefix: prefix, category: "borderWidth", accepts: []valueType{typeLength}, decls: props(properties...)}
	}

	return []utility{
		layoutStatics,

		inset("inset", "top", "right", "bottom", "left"),
		inset("inset-x", "left", "right"),
		inset("inset-y", "top", "bottom"),
		inset("top", "top"),
		inset("right", "right"),
		inset("bottom", "bottom"),
		inset("left", "left"),

		&family{prefix: "z", category: "zIndex", accepts: numberTypes, negative: true, decls: props("z-index")},
		&family{
			prefix:   "order",
			keywords: map[string]string{"first": "-9999", "last": "9999", "none": "0"},
			accepts:  numberTypes,
			negative: true,
			integer:  identity,
			decls:    props("order"),
		},

		&family{prefix: "grid-cols", keywords: map[string]string{"none": "none", "subgrid": "subgrid"}, integer: repeatTracks, decls: props("grid-template-columns")},
		&family{prefix: "grid-rows", keywords: map[string]string{"none": "none", "subgrid": "subgrid"}, integer: repeatTracks, decls: props("grid-template-rows")},
		&family{prefix: "col-span", keywords: map[string]string{"full": "1 / -1"}, integer: span, decls: props("grid-column")},
		&family{prefix: "row-span", keywords: map[string]string{"full": "1 / -1"}, integer: span, decls: props("grid-row")},

		spacing("m", true, marginKeywords, "margin"),
		spacing("mx", true, marginKeywords, "margin-left", "margin-right"),
		spacing("my", true, marginKeywords, "margin-top", "margin-bottom"),
		spacing("mt", true, marginKeywords, "margin-top"),
		spacing("mr", true, marginKeywords, "margin-right"),
		spacing("mb", true, marginKeywords, "margin-bottom"),
		spacing("ml", true, marginKeywords, "margin-left"),

		&family{prefix: "aspect", category: "aspectRatio", decls: props("aspect-ratio")},

		sized("w", with(sizeKeywords, map[string]string{"screen": "100vw"}), "width"),
		sized("min-w", with(sizeKeywords, map[string]string{"0": "0px"}), "min-width"),
		&family{
			prefix:   "max-w",
			category: "maxWidth",
			keywords: with(sizeKeywords, map[string]string{"none": "none", "screen": "100vw"}),
			accepts:  lengthTypes,
			decls:    props("max-width"),
		},
		sized("h", with(sizeKeywords, map[string]string{"screen": "100vh"}), "height"),
		sized("min-h", with(sizeKeywords, map[string]string{"0": "0px", "screen": "100vh"}), "min-height"),
		sized("max-h", with(sizeKeywords, map[string]string{"none": "none", "screen": "100vh"}), "max-height"),
		sized("basis", sizeKeywords, "flex-basis"),

		flexStatics,

		spacing("gap", false, nil, "gap"),
		spacing("gap-x", false, nil, "column-gap"),
		spacing("gap-y", false, nil, "row-gap"),

		overflowStatics,

		radius("rounded", "border-radius"),
		radius("rounded-t", "border-top-left-radius", "border-top-right-radius"),
		radius("rounded-r", "border-top-right-radius", "border-bottom-right-radius"),
		radius("rounded-b", "border-bottom-right-radius", "border-bottom-left-radius"),
		radius("rounded-l", "border-top-left-radius", "border-bottom-left-radius"),
		radius("rounded-tl", "border-top-left-radius"),
		radius("rounded-tr", "border-top-right-radius"),
		radius("rounded-br", "border-bottom-right-radius"),
		radius("rounded-bl", "border-bottom-left-radius"),

		borderWidth("border", "border-width"),
		borderWidth("border-x", "border-left-width", "border-right-width"),
		borderWidth("border-y", "border-top-width", "border-bottom-width"),
		borderWidth("border-t", "border-top-width"),
		borderWidth("border-r", "border-right-width"),
		borderWidth("border-b", "border-bottom-width"),
		borderWidth("border-l", "border-left-width"),

		borderStyleStatics,

		colorFamily("border", "border-color"),
		colorFamily("bg", "background-color"),
		colorFamily("fill", "fill"),
		colorFamily("stroke", "stroke"),

		spacing("p", false, nil, "padding"),
		spacing("px", false, nil, "padding-left", "padding-right"),
		spacing("py", false, nil, "padding-top", "padding-bottom"),
		spacing("pt", false, nil, "padding-top"),
		spacing("pr", false, nil, "padding-right"),
		spacing("pb", false, nil, "padding-bottom"),
		spacing("pl", false, nil, "padding-left"),

		textAlignStatics,

		&family{prefix: "font", category: "fontFamily", accepts: []valueType{typeFamily}, decls: fontFamily},
		&family{prefix: "text", category: "fontSize", accepts: []valueType{typeLength}, decls: fontSize},
		&family{prefix: "font", category: "fontWeight", accepts: numberTypes, decls: props("font-weight")},
		&family{prefix: "leading", category: "lineHeight", accepts: []valueType{typeLength, typeNumber, typeVar}, decls: props("line-height")},
		&family{prefix: "tracking", category: "letterSpacing", accepts: lengthTypes, negative: true, decls: props("letter-spacing")},
		colorFamily("text", "color"),

		typographyStatics,

		&family{prefix: "opacity", category: "opacity", accepts: []valueType{typeNumber, typeLength, typeVar}, decls: props("opacity")},
		&family{prefix: "shadow", category: "boxShadow", accepts: []valueType{typeLength, typeVar, typeOther}, decls: props("box-shadow")},

		interactionStatics,

		&family{prefix: "duration", category: "transitionDuration", accepts: []valueType{typeLength, typeVar}, decls: props("transition-duration")},

		arbitraryProperty{},
	}
}

func fontSize(value string, extra []string) []stylesheet.Declaration {
	out := decls{d("font-size", value)}
	if len(extra) > 0 {
		out = append(out, d("line-height", extra[0]))
	}
	return out
}

func fontFamily(value string, extra []string) []stylesheet.Declaration {
	if len(extra) > 0 {
		value = strings.Join(append([]string{value}, extra...), ", ")
	}
	return decls{d("font-family", value)}
}
