package core_test

import (
	"runtime"
	"testing"

	"github.com/melih-ucgun/converge/internal/core"
)

func TestEvaluateCondition(t *testing.T) {
	ctx := testContext(&recordLogger{})

	tests := []struct {
		name      string
		condition string
		want      bool
		wantErr   bool
	}{
		{"literal true", "true", true, false},
		{"literal false", "false", false, false},
		{"os fact", `os == "` + runtime.GOOS + `"`, true, false},
		{"negated os fact", `os != "` + runtime.GOOS + `"`, false, false},
		{"boolean logic", `os == "plan9" || hostname != ""`, true, false},
		{"syntax error", "os ==", false, true},
		{"non-boolean result", `"just a string"`, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := core.EvaluateCondition(tt.condition, ctx)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("EvaluateCondition failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("EvaluateCondition(%q) = %v, want %v", tt.condition, got, tt.want)
			}
		})
	}
}

func TestExecuteTemplate(t *testing.T) {
	data := map[string]interface{}{
		"vars": map[string]string{"name": "world"},
		"os":   "linux",
	}

	t.Run("renders data and sprig functions", func(t *testing.T) {
		out, err := core.ExecuteTemplate("hello {{ .vars.name | upper }} on {{ .os }}", data)
		if err != nil {
			t.Fatalf("ExecuteTemplate failed: %v", err)
		}
		if out != "hello WORLD on linux" {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("plain strings pass through", func(t *testing.T) {
		out, err := core.ExecuteTemplate("no templates here", data)
		if err != nil || out != "no templates here" {
			t.Errorf("output = (%q, %v)", out, err)
		}
	})

	t.Run("broken templates fail", func(t *testing.T) {
		if _, err := core.ExecuteTemplate("{{ .vars.name", data); err == nil {
			t.Error("expected an error")
		}
	})
}
