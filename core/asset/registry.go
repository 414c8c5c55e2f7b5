package asset

import "regexp"

// family is one registered denomination family: a base pattern, an ordered
// list of display-unit patterns, and a constructor mapping the pattern's
// captured "data" string to the family's canonical Denom. This is the
// registry's dynamic-dispatch point: a first-class function value standing
// in for what would be a trait object or virtual dispatch in other
// languages (see SPEC_FULL.md §9).
type family struct {
	base        *regexp.Regexp
	display     []*regexp.Regexp
	constructor func(data string) Denom
}

// Registry is a fixed, process-lifetime set of denomination families, built
// once at first use (see DefaultRegistry).
type Registry struct {
	families []family
}

// Builder assembles a Registry from an ordered list of families.
type Builder struct {
	families []family
}

// AddFamily registers a new family with the builder and returns it for
// chaining.
func (b *Builder) AddFamily(basePattern string, displayPatterns []string, constructor func(data string) Denom) *Builder {
	f := family{
		base:        regexp.MustCompile(basePattern),
		constructor: constructor,
	}
	for _, p := range displayPatterns {
		f.display = append(f.display, regexp.MustCompile(p))
	}
	b.families = append(b.families, f)
	return b
}

// Build finalizes the builder into an immutable Registry.
func (b *Builder) Build() *Registry {
	return &Registry{families: append([]family(nil), b.families...)}
}

func namedData(re *regexp.Regexp, raw string) (string, bool) {
	match := re.FindStringSubmatch(raw)
	if match == nil {
		return "", false
	}
	for i, name := range re.SubexpNames() {
		if name == "data" {
			return match[i], true
		}
	}
	return "", true
}

// ParseDenom parses a raw denomination string into its canonical Denom.
//
//   - If raw matches exactly one family's base pattern, returns the
//     constructed canonical Denom and true.
//   - If raw matches a display pattern only, returns (Denom{}, false): the
//     caller should use ParseUnit instead.
//   - Otherwise raw is accepted as an opaque, unknown base denom: returns a
//     Denom whose base is raw with no display units, and true.
func (r *Registry) ParseDenom(raw string) (Denom, bool) {
	for _, f := range r.families {
		if data, ok := namedData(f.base, raw); ok {
			return f.constructor(data), true
		}
	}
	for _, f := range r.families {
		for _, d := range f.display {
			if d.MatchString(raw) {
				return Denom{}, false
			}
		}
	}
	return Denom{Base: raw}, true
}

// ParseUnit parses a raw denomination string into the Unit it names,
// whether that string names a base denom or one of its display units.
// Unknown strings resolve to the base unit of a fallback opaque Denom.
func (r *Registry) ParseUnit(raw string) Unit {
	for _, f := range r.families {
		if data, ok := namedData(f.base, raw); ok {
			return BaseUnit(f.constructor(data))
		}
		for i, d := range f.display {
			if data, ok := namedData(d, raw); ok {
				denom := f.constructor(data)
				return Unit{denom: denom, index: i + 1}
			}
		}
	}
	return BaseUnit(Denom{Base: raw})
}
