package core_test

import (
	"testing"

	"github.com/melih-ucgun/converge/internal/core"
)

func TestKeyMapCanonicalOrder(t *testing.T) {
	// Construction order must not affect equality or display.
	a := core.MapKey(map[string]core.Key{
		"host": core.StringKey("web1"),
		"port": core.StringKey("80"),
	})
	b := core.MapKey(map[string]core.Key{
		"port": core.StringKey("80"),
		"host": core.StringKey("web1"),
	})

	if !a.Equal(b) {
		t.Errorf("map keys with same fields not equal: %s vs %s", a, b)
	}
	want := `{host: "web1", port: "80"}`
	if a.String() != want {
		t.Errorf("display = %s, want %s", a, want)
	}
}

func TestKeySeqOrderSensitive(t *testing.T) {
	a := core.SeqKey(core.StringKey("x"), core.StringKey("y"))
	b := core.SeqKey(core.StringKey("y"), core.StringKey("x"))

	if a.Equal(b) {
		t.Error("sequences with different order compared equal")
	}
	if a.String() != `["x", "y"]` {
		t.Errorf("display = %s", a)
	}
}

func TestKeyVariantsDoNotCollide(t *testing.T) {
	s := core.StringKey("/etc/motd")
	p := core.PathKey("/etc/motd")

	if s.Equal(p) {
		t.Error("string and path keys with same text compared equal")
	}
	if s.Compare(p) == 0 {
		t.Error("compare reported equal across variants")
	}
}

func TestKeyTotalOrder(t *testing.T) {
	tests := []struct {
		name string
		a, b core.Key
		want int
	}{
		{"string order", core.StringKey("a"), core.StringKey("b"), -1},
		{"equal strings", core.StringKey("a"), core.StringKey("a"), 0},
		{"seq prefix is smaller", core.SeqKey(core.StringKey("a")), core.SeqKey(core.StringKey("a"), core.StringKey("b")), -1},
		{"variant tag first", core.SeqKey(), core.PathKey("a"), -1},
		{"paths", core.PathKey("/a"), core.PathKey("/b"), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := tt.b.Compare(tt.a); got != -tt.want {
				t.Errorf("Compare(%s, %s) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestKeyNestedDisplay(t *testing.T) {
	k := core.MapKey(map[string]core.Key{
		"paths": core.SeqKey(core.PathKey("/a"), core.PathKey("/b")),
		"name":  core.StringKey("app"),
	})

	want := `{name: "app", paths: ["/a", "/b"]}`
	if k.String() != want {
		t.Errorf("display = %s, want %s", k, want)
	}
}
