package schema

import (
	"regexp"
	"strings"
)

// LevelInferer derives a task's hierarchy level from its description.
// ok is false when the description carries no usable signal.
type LevelInferer interface {
	InferLevel(description string) (level int, ok bool)
}

// DottedNumberInferer reads a leading outline number: "1.2.1 GALIAN" is level 3.
type DottedNumberInferer struct{}

var dottedPrefixRe = regexp.MustCompile(`^\s*(\d+(?:\.\d+)*)`)

func (DottedNumberInferer) InferLevel(description string) (int, bool) {
	m := dottedPrefixRe.FindStringSubmatch(description)
	if m == nil {
		return 0, false
	}
	return strings.Count(m[1], ".") + 1, true
}

// DefaultLevel is used when neither the sheet nor the inferer provides one.
const DefaultLevel = 1
