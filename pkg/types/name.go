package types

import "strings"

// SplitName splits a filename at its last dot into stem and suffix, the
// suffix keeping the dot. Only the final extension counts ("a.tar.gz" has
// suffix ".gz"). A dot in first position (".bashrc") or last position ("a.")
// does not start a suffix.
func SplitName(name string) (stem, suffix string) {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return name, ""
	}
	return name[:i], name[i:]
}
