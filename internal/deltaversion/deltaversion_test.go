package deltaversion

import (
	"testing"
	"time"
)

func TestIsStaleStringEncoding(t *testing.T) {
	cases := []struct {
		name     string
		existing string
		incoming string
		want     bool
	}{
		{
			name:     "newer_delta_accepted",
			existing: "1",
			incoming: "2",
			want:     false,
		},
		{
			name:     "equal_delta_stale",
			existing: "20140925171003950844",
			incoming: "20140925171003950844",
			want:     true,
		},
		{
			name:     "older_delta_stale",
			existing: "20140925171003950844",
			incoming: "20140925171003950843",
			want:     true,
		},
		{
			// Lexicographic quirk: "1" < "11" even though the caller might
			// expect numeric ordering.
			name:     "shorter_string_sorts_less",
			existing: "11",
			incoming: "1",
			want:     true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IsStale(FromString(tc.existing), FromString(tc.incoming))
			if got != tc.want {
				t.Fatalf("IsStale(%q, %q)=%v, want %v", tc.existing, tc.incoming, got, tc.want)
			}
		})
	}
}

func TestIsStaleInstantEncoding(t *testing.T) {
	day12 := time.Date(2022, 1, 12, 0, 0, 0, 0, time.UTC)
	day14 := time.Date(2022, 1, 14, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name     string
		existing time.Time
		incoming time.Time
		want     bool
	}{
		{
			name:     "later_instant_accepted",
			existing: day12,
			incoming: day14,
			want:     false,
		},
		{
			name:     "earlier_instant_stale",
			existing: day14,
			incoming: day12,
			want:     true,
		},
		{
			name:     "equal_instant_stale",
			existing: day12,
			incoming: day12,
			want:     true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := IsStale(FromInstant(tc.existing), FromInstant(tc.incoming))
			if got != tc.want {
				t.Fatalf("IsStale(%v, %v)=%v, want %v", tc.existing, tc.incoming, got, tc.want)
			}
		})
	}
}

func TestIsStaleNoExistingVersion(t *testing.T) {
	if IsStale(Version{}, FromString("1")) {
		t.Fatal("incoming delta must never be stale when no existing version was observed")
	}
	if IsStale(FromString(""), FromInstant(time.Now())) {
		t.Fatal("blank existing version must not mark incoming stale")
	}
}

func TestIsStaleMissingIncoming(t *testing.T) {
	if !IsStale(FromString("1"), Version{}) {
		t.Fatal("missing incoming version must be stale against an observed one")
	}
}

func TestParseTimestamp(t *testing.T) {
	v, err := ParseTimestamp("20220112000000000000")
	if err != nil {
		t.Fatalf("ParseTimestamp: %v", err)
	}
	want := time.Date(2022, 1, 12, 0, 0, 0, 0, time.UTC)
	if !v.Instant().Equal(want) {
		t.Fatalf("ParseTimestamp instant=%v, want %v", v.Instant(), want)
	}
	if v.String() != "20220112000000000000" {
		t.Fatalf("round trip mismatch: %q", v.String())
	}

	for _, raw := range []string{"", "  ", "2022", "not-a-timestamp-here"} {
		if _, err := ParseTimestamp(raw); err == nil {
			t.Fatalf("ParseTimestamp(%q) expected error", raw)
		}
	}
}
