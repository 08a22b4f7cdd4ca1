package version

import (
	"strings"
	"testing"
)

func TestVersionShape(t *testing.T) {
	if strings.Count(Version, ".") != 2 {
		t.Fatalf("Version %q is not dotted triple", Version)
	}
	if !strings.HasSuffix(Version, "-dev") {
		t.Fatalf("development builds must carry the -dev suffix, got %q", Version)
	}
}
