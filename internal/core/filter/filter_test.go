package filter

import "testing"

func TestAnyOf_EmptyAllowedPasses(t *testing.T) {
	t.Parallel()

	if !AnyOf("anything", nil) {
		t.Fatal("nil allowed must pass")
	}
	if !AnyOf("anything", []string{}) {
		t.Fatal("empty allowed must pass")
	}
}

func TestAnyOf_Membership(t *testing.T) {
	t.Parallel()

	allowed := []string{"0-15 days", "16-30 days"}
	if !AnyOf("16-30 days", allowed) {
		t.Fatal("expected member to pass")
	}
	if AnyOf("31-60 days", allowed) {
		t.Fatal("expected non-member to fail")
	}
	// exact equality only, no trimming or case mapping
	if AnyOf("0-15 DAYS", allowed) {
		t.Fatal("membership is exact")
	}
}

func TestSearchFold_EmptyQueryPasses(t *testing.T) {
	t.Parallel()

	if !SearchFold("", "some field") {
		t.Fatal("empty query must pass")
	}
	if !SearchFold("   ", "some field") {
		t.Fatal("blank query must pass")
	}
}

func TestSearchFold_CaselessSubstring(t *testing.T) {
	t.Parallel()

	if !SearchFold("ram", "CCC-Ramgarh", "") {
		t.Fatal("expected caseless substring hit")
	}
	if !SearchFold("RAM", "ccc-ramgarh") {
		t.Fatal("expected fold to equalize case both ways")
	}
	if SearchFold("ram", "Bhiwani", "Hisar") {
		t.Fatal("expected miss when no field contains query")
	}
}

func TestSearchFold_UnicodeFold(t *testing.T) {
	t.Parallel()

	// case folding handles non ASCII letters too
	if !SearchFold("STRASSE", "Straße 5") {
		t.Fatal("expected sharp s to fold to ss")
	}
}

func TestInRange_InclusiveLexicographic(t *testing.T) {
	t.Parallel()

	cases := []struct {
		date, from, to string
		want           bool
	}{
		{"2024-05-10", "", "", true},
		{"2024-05-10", "2024-05-10", "2024-05-10", true},
		{"2024-05-09", "2024-05-10", "", false},
		{"2024-05-11", "", "2024-05-10", false},
		{"2024-05-10", "2024-01-01", "2024-12-31", true},
		// empty date fails a closed lower bound
		{"", "2024-01-01", "", false},
	}
	for _, c := range cases {
		if got := InRange(c.date, c.from, c.to); got != c.want {
			t.Fatalf("InRange(%q, %q, %q) = %v want %v", c.date, c.from, c.to, got, c.want)
		}
	}
}
