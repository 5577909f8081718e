package restaurant

// DishChoice is one selectable value of a DishOption, such as "Hot" for "Spice".
type DishChoice struct {
	Name  string `json:"name"`
	Extra int    `json:"extra,omitempty"`
}

// DishOption is an option a customer can select for a dish. Extra is a flat
// surcharge; zero means the option has none and its choices decide the price.
type DishOption struct {
	Name    string       `json:"name"`
	Extra   int          `json:"extra,omitempty"`
	Choices []DishChoice `json:"choices,omitempty"`
}

// MatchKind tags the outcome of resolving a selected option.
type MatchKind int

const (
	// OptionUnmatched means the selection names no option or choice of the dish.
	OptionUnmatched MatchKind = iota

	// OptionMatched means the selection resolved to a priced option or choice.
	OptionMatched
)

// OptionMatch is the tagged result of Dish.MatchOption: either Matched with
// the extra to add, or Unmatched. Unmatched selections are priced as zero.
type OptionMatch struct {
	kind  MatchKind
	extra int
}

// Matched builds a successful match.
func Matched(extra int) OptionMatch {
	return OptionMatch{kind: OptionMatched, extra: extra}
}

// Unmatched builds a miss.
func Unmatched() OptionMatch {
	return OptionMatch{kind: OptionUnmatched}
}

func (m OptionMatch) Kind() MatchKind {
	return m.kind
}

func (m OptionMatch) IsMatched() bool {
	return m.kind == OptionMatched
}

// Extra returns the surcharge to add, zero for an unmatched selection.
func (m OptionMatch) Extra() int {
	if m.kind != OptionMatched {
		return 0
	}
	return m.extra
}
