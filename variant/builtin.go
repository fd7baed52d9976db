package variant

type selectorVariant struct {
	name     string
	selector string
}

type mediaVariant struct {
	name   string
	atRule string
}

var pseudoClasses = []selectorVariant{
	{"first", "&:first-child"},
	{"last", "&:last-child"},
	{"odd", "&:nth-child(odd)"},
	{"even", "&:nth-child(even)"},
	{"empty", "&:empty"},
	{"visited", "&:visited"},
	{"checked", "&:checked"},
	{"required", "&:required"},
	{"invalid", "&:invalid"},
	{"focus-within", "&:focus-within"},
	{"hover", "&:hover"},
	{"focus", "&:focus"},
	{"focus-visible", "&:focus-visible"},
	{"active", "&:active"},
	{"disabled", "&:disabled"},
}

var pseudoElements = []selectorVariant{
	{"placeholder", "&::placeholder"},
	{"before", "&::before"},
	{"after", "&::after"},
	{"selection", "&::selection"},
	{"marker", "&::marker"},
}

var relational = []selectorVariant{
	{"group-hover", ".group:hover &"},
	{"group-focus", ".group:focus &"},
	{"peer-hover", ".peer:hover ~ &"},
	{"peer-focus", ".peer:focus ~ &"},
}

var mediaVariants = []mediaVariant{
	{"motion-safe", "@media (prefers-reduced-motion: no-preference)"},
	{"motion-reduce", "@media (prefers-reduced-motion: reduce)"},
	{"print", "@media print"},
	{"portrait", "@media (orientation: portrait)"},
	{"landscape", "@media (orientation: landscape)"},
}
