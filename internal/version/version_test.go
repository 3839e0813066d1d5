package version

import (
	"strings"
	"testing"
)

func TestInfo(t *testing.T) {
	v, c, d := Info()
	switch {
	case v == "":
		t.Error("version should not be empty")
	case c == "":
		t.Error("commit should not be empty")
	case d == "":
		t.Error("date should not be empty")
	case v != Version():
		t.Errorf("Version (%s) should match Info version (%s)", Version(), v)
	}
}

func TestString(t *testing.T) {
	s := String()
	for _, part := range []string{"version=", "commit=", "date="} {
		if !strings.Contains(s, part) {
			t.Errorf("String should contain %q, got %s", part, s)
		}
	}
}

func TestFields(t *testing.T) {
	fields := Fields("checkout-service")

	if fields["service"] != "checkout-service" {
		t.Errorf("unexpected service field %v", fields["service"])
	}
	if fields["version"] != Version() {
		t.Errorf("unexpected version field %v", fields["version"])
	}
	if _, ok := fields["commit"]; !ok {
		t.Error("commit field is missing")
	}
}
