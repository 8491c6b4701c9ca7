package types

import (
	"fmt"
	"sort"
	"strings"
)

// Category is the coarse file type used to filter which files get renamed.
type Category int

const (
	// Image covers photos, raster and vector graphics
	Image Category = iota
	// Video covers movie containers and camera video formats
	Video
	// Document covers office files, plain text and markup
	Document
	// Other is everything the extension tables do not recognise
	Other
)

// AllCategories lists every category in display order.
var AllCategories = []Category{Image, Video, Document, Other}

func (c Category) String() string {
	switch c {
	case Image:
		return "image"
	case Video:
		return "video"
	case Document:
		return "document"
	case Other:
		return "other"
	default:
		return "unknown"
	}
}

// ParseCategory accepts singular and plural category names, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "image", "images":
		return Image, nil
	case "video", "videos":
		return Video, nil
	case "document", "documents", "doc", "docs":
		return Document, nil
	case "other", "others":
		return Other, nil
	default:
		return Other, fmt.Errorf("invalid file type: %s (valid: image, video, document, other, all)", s)
	}
}

// MarshalText implements encoding.TextMarshaler so categories read well in YAML.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CategorySet is the type filter. An empty set selects nothing.
type CategorySet map[Category]bool

// NewCategorySet builds a set from the given categories.
func NewCategorySet(categories ...Category) CategorySet {
	set := make(CategorySet, len(categories))
	for _, c := range categories {
		set[c] = true
	}
	return set
}

// AllCategorySet returns a set containing every category.
func AllCategorySet() CategorySet {
	return NewCategorySet(AllCategories...)
}

// ParseCategories parses names such as "image,video" or "all".
// Blank entries are ignored, so "" yields an empty set.
func ParseCategories(names []string) (CategorySet, error) {
	set := CategorySet{}
	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if strings.EqualFold(part, "all") {
				return AllCategorySet(), nil
			}
			c, err := ParseCategory(part)
			if err != nil {
				return nil, err
			}
			set[c] = true
		}
	}
	return set, nil
}

// Has reports whether c is selected.
func (s CategorySet) Has(c Category) bool {
	return s[c]
}

// Empty reports whether no category is selected.
func (s CategorySet) Empty() bool {
	for _, on := range s {
		if on {
			return false
		}
	}
	return true
}

// Sorted returns the selected categories in display order.
func (s CategorySet) Sorted() []Category {
	var out []Category
	for c, on := range s {
		if on {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Names returns the selected category names in display order.
func (s CategorySet) Names() []string {
	var names []string
	for _, c := range s.Sorted() {
		names = append(names, c.String())
	}
	return names
}

func (s CategorySet) String() string {
	return strings.Join(s.Names(), ",")
}
