package enums

import "fmt"

// ProductSource records where a catalog row originated, so seed
// reconciliation knows what it may touch.
type ProductSource string

const (
	ProductSourceSeed   ProductSource = "seed"
	ProductSourceAdmin  ProductSource = "admin"
	ProductSourceRemote ProductSource = "remote"
)

var validProductSources = []ProductSource{
	ProductSourceSeed,
	ProductSourceAdmin,
	ProductSourceRemote,
}

// String implements fmt.Stringer.
func (s ProductSource) String() string {
	return string(s)
}

// IsValid reports whether the value is a known ProductSource.
func (s ProductSource) IsValid() bool {
	for _, candidate := range validProductSources {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseProductSource converts raw input into a ProductSource.
func ParseProductSource(value string) (ProductSource, error) {
	for _, candidate := range validProductSources {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product source %q", value)
}
