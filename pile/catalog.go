package pile

import "sort"

// Catalog is the built-in table of named toppling patterns. It is static
// configuration: nothing in the engine writes to it, and callers are free to
// pass raw pattern text instead of a catalogue name.
var Catalog = map[string]string{
	"+":    ".1. 1.1 .1.",
	"x":    "1.1 ... 1.1",
	"o":    "111 1.1 111",
	"O":    "11111 1...1 1...1 1...1 11111",
	"xO":   "11111 11.11 1...1 11.11 11111",
	"o+":   "121 2.2 121",
	"oo":   "11211 11111 21.12 11111 11211",
	"ox":   "212 1.1 212",
	"++":   "..1.. ..1.. 11.11 ..1.. ..1..",
	"+++":  "..2.. ..1.. 21.12 ..1.. ..2..",
	"+_+":  "...1... ...1... ....... 11...11 ....... ...1... ...1...",
	"o++":  "..1.. .111. 11.11 .111. ..1..",
	"o+++": "...1... ...1... ..111.. 111.111 ..111.. ...1... ...1...",
	"o_+":  "...1... ....... ..111.. 1.1.1.1 ..111.. ....... ...1...",
	"o-+":  "..1.. .121. 12.21 .121. ..1..",
	"o-+x": "..1.. .222. 12.21 .222. ..1..",
	"o=+":  "..2.. .111. 21.12 .111. ..2..",
	"+o":   "11211 1.1.1 21.12 1.1.1 11211",
	"xo":   "11211 11.11 2...2 11.11 11211",
	"+x":   "1...1 ..1.. .1.1. ..1.. 1...1",
	"x+":   "..1.. .1.1. 1...1 .1.1. ..1..",
	"::":   "11.11 .1.1. ..... .1.1. 11.11",
	";;":   ".1.1. 11.11 ..... 11.11 .1.1.",
	"Y":    ".111. 1.1.1 11.11 1.1.1 .111.",
	"Y+":   ".121. 1.1.1 21.12 1.1.1 .121.",
	"H":    ".1.1. 11211 .2.2. 11211 .1.1.",
	"sh":   ".1.1. 11111 .1.1. 11111 .1.1.",
	"X++":  "..1.. .313. 11.11 .313. ..1..",
	"ivy":  "121 222 121",
}

// CatalogNames returns the catalogue pattern names in sorted order.
func CatalogNames() []string {
	names := make([]string, 0, len(Catalog))
	for name := range Catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupPattern resolves a catalogue name to its pattern text. Unknown names
// are returned unchanged so that raw pattern text can be used anywhere a
// catalogue name is accepted.
func LookupPattern(name string) string {
	if text, ok := Catalog[name]; ok {
		return text
	}
	return name
}
