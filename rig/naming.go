package rig

import "strings"

const (
	ORG_PREFIX = "ORG-"
	MCH_PREFIX = "MCH-"
	DEF_PREFIX = "DEF-"
)

// StripOrg removes the original-bone prefix if present.
func StripOrg(name string) string {
	return strings.TrimPrefix(name, ORG_PREFIX)
}

// DerivedName maps an original bone name to the name of a bone derived
// from it: "ORG-tongue" -> "tongue" (ctrl), "MCH-tongue", "DEF-tongue",
// "tweak_tongue".
func DerivedName(name string, kind string) string {
	base := StripOrg(name)
	switch kind {
	case "ctrl":
		return base
	case "mch":
		return MCH_PREFIX + base
	case "def":
		return DEF_PREFIX + base
	case "tweak":
		return "tweak_" + base
	}
	return base
}
