package fingerprint_test

import (
	"strings"
	"testing"

	"github.com/melih-ucgun/converge/internal/fingerprint"
)

func TestSHA1(t *testing.T) {
	const want = "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"

	got, err := fingerprint.SHA1(strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("SHA1 failed: %v", err)
	}
	if got != want {
		t.Errorf("SHA1 = %s, want %s", got, want)
	}

	if fingerprint.SHA1Bytes([]byte("hello")) != want {
		t.Error("SHA1Bytes disagrees with SHA1")
	}
}

func TestShort(t *testing.T) {
	if got := fingerprint.Short("aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"); got != "aaf4c61d" {
		t.Errorf("Short = %s, want aaf4c61d", got)
	}
	// Degenerate inputs pass through untruncated.
	if got := fingerprint.Short("ab"); got != "ab" {
		t.Errorf("Short = %s, want ab", got)
	}
}
