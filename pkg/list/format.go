package list

import "sort"

// Numbering formats understood by the default numbering template.
const (
	FormatClosedDiamond = "closedDiamond"
	FormatUpperRoman    = "upperRoman"
	FormatOpenDiamond   = "openDiamond"
	FormatDecimal       = "decimal"
	FormatLowerLetter   = "lowerLetter"
	FormatLowerRoman    = "lowerRoman"
	FormatBullet        = "bullet"
	FormatArrow         = "arrow"
	FormatStar          = "star"
	FormatUpperLetter   = "upperLetter"
)

// FallbackAbstractNumID is used for format names missing from the table.
const FallbackAbstractNumID = 2

var abstractNumIDs = map[string]int{
	FormatClosedDiamond: 0,
	FormatUpperRoman:    1,
	FormatOpenDiamond:   2,
	FormatDecimal:       3,
	FormatLowerLetter:   4,
	FormatLowerRoman:    5,
	FormatBullet:        6,
	FormatArrow:         7,
	FormatStar:          8,
	FormatUpperLetter:   9,
}

// AbstractNumID maps a numbering format name to the abstract numbering
// definition implementing it. Unknown names map to FallbackAbstractNumID
// and report known == false.
func AbstractNumID(format string) (id int, known bool) {
	id, known = abstractNumIDs[format]
	if !known {
		return FallbackAbstractNumID, false
	}
	return id, true
}

// Formats returns the known format names ordered by abstract id.
func Formats() []string {
	names := make([]string, 0, len(abstractNumIDs))
	for name := range abstractNumIDs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return abstractNumIDs[names[i]] < abstractNumIDs[names[j]]
	})
	return names
}
