package filter

import (
	"fmt"
	"strings"
)

// Kind identifies a filter bank family.
type Kind int

const (
	KindMexicanHat Kind = iota
	KindMeyer
	KindABSpline3
)

// String returns the canonical lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindMexicanHat:
		return "mexican-hat"
	case KindMeyer:
		return "meyer"
	case KindABSpline3:
		return "abspline3"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Kinds returns all named kinds, implemented or not.
func Kinds() []Kind {
	return []Kind{KindMexicanHat, KindMeyer, KindABSpline3}
}

// ParseKind resolves a kind from its name. Matching ignores case and
// accepts "_" in place of "-".
func ParseKind(name string) (Kind, error) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for _, k := range Kinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("filter: unknown kind %q", name)
}
