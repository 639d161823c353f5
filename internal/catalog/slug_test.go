package catalog

import "testing"

func TestSlugify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Business Cards", want: "business-cards"},
		{name: "parentheses", in: "ID Cards (PVC)", want: "id-cards-pvc"},
		{name: "ampersand run", in: "Flyers & Posters", want: "flyers-posters"},
		{name: "surrounding junk", in: "  --Photo Prints-- ", want: "photo-prints"},
		{name: "digits", in: "A4 Pamphlets", want: "a4-pamphlets"},
		{name: "empty", in: "  ", want: ""},
		{name: "symbols only", in: "!!!", want: ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("%s: Slugify(%q) = %q, want %q", tc.name, tc.in, got, tc.want)
		}
	}
}
