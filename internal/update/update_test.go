package update

import "testing"

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"1.2.3", "1.2.3", 0},
		{"1.2.4", "1.2.3", 1},
		{"1.2.3", "1.10.0", -1},
		{"2.0", "1.9.9", 1},
		{"1.2", "1.2.0", 0},
		{"1.2.3-rc1", "1.2.3", 0},
	}
	for _, c := range cases {
		if got := compare(c.a, c.b); got != c.want {
			t.Fatalf("compare(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	if got := normalize(" v1.2.3 "); got != "1.2.3" {
		t.Fatalf("normalize: got %q", got)
	}
}

func TestCheck_SkippedInCI(t *testing.T) {
	t.Setenv("CI", "true")
	latest, newer, err := Check("0.1.0", false)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if latest != "" || newer {
		t.Fatalf("expected skip in CI, got latest=%q newer=%v", latest, newer)
	}
}

func TestCheck_NoNetwork(t *testing.T) {
	if _, newer, err := Check("0.1.0", true); err != nil || newer {
		t.Fatalf("expected no-op, got newer=%v err=%v", newer, err)
	}
}
