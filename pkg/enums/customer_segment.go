package enums

import "fmt"

// CustomerSegment selects a back-office customer listing slice.
type CustomerSegment string

const (
	CustomerSegmentAll            CustomerSegment = "all"
	CustomerSegmentHighSpenders   CustomerSegment = "high-spenders"
	CustomerSegmentFrequentBuyers CustomerSegment = "frequent-buyers"
	CustomerSegmentInactive       CustomerSegment = "inactive"
)

var validCustomerSegments = []CustomerSegment{
	CustomerSegmentAll,
	CustomerSegmentHighSpenders,
	CustomerSegmentFrequentBuyers,
	CustomerSegmentInactive,
}

// String implements fmt.Stringer.
func (s CustomerSegment) String() string {
	return string(s)
}

// IsValid reports whether the value is a known CustomerSegment.
func (s CustomerSegment) IsValid() bool {
	for _, candidate := range validCustomerSegments {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseCustomerSegment converts raw input into a CustomerSegment,
// defaulting to the full listing for blank input.
func ParseCustomerSegment(value string) (CustomerSegment, error) {
	if value == "" {
		return CustomerSegmentAll, nil
	}
	for _, candidate := range validCustomerSegments {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid customer segment %q", value)
}
