package report

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ALEYI17/InfraSight_layerprof/internal/analysis"
	"github.com/ALEYI17/InfraSight_layerprof/internal/dataset"
	"github.com/ALEYI17/InfraSight_layerprof/pkg/types"
)

func baselineResult(t *testing.T) *analysis.Result {
	t.Helper()
	res, err := analysis.Analyze(dataset.Baseline(), analysis.DefaultAcceleration)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	return res
}

func TestFormatMillis(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{3420.643, "3420.643"},
		{982.790, "982.79"},
		{0.950, "0.95"},
		{5, "5.0"},
		{0, "0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatMillis(tt.in); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFormatPercent(t *testing.T) {
	if got := formatPercent(3420.643 / 8155.692); got != "41.94%" {
		t.Errorf("got %s, want 41.94%%", got)
	}
	if got := formatPercent(0); got != "0.00%" {
		t.Errorf("got %s, want 0.00%%", got)
	}
}

func TestRenderGolden(t *testing.T) {
	want, err := os.ReadFile(filepath.Join("testdata", "answers.golden"))
	if err != nil {
		t.Fatalf("reading golden file: %v", err)
	}

	got := Render(baselineResult(t))
	if !bytes.Equal(got, want) {
		t.Errorf("report mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestRenderSections(t *testing.T) {
	res := baselineResult(t)
	out := string(Render(res))

	if !strings.Contains(out, "CONV_L1        : 3420.643   ms / 41.94%    \n") {
		t.Errorf("missing CONV_L1 line in:\n%s", out)
	}

	convAgg := res.Percents[0] + res.Percents[3] + res.Percents[6]
	wantQ2 := fmt.Sprintf("%-15s: %-10s\n", "CONV", fmt.Sprintf("%.2f%%", convAgg*100))
	if !strings.Contains(out, wantQ2) {
		t.Errorf("missing CONV aggregate line %q", wantQ2)
	}

	p := res.ByType[types.LAYER_CONV]
	wantQ3 := fmt.Sprintf("%-15s: %3.2fx\n", "CONV", 1/((1-p)+p/4))
	if !strings.Contains(out, wantQ3) {
		t.Errorf("missing CONV speedup line %q", wantQ3)
	}

	q1 := strings.Index(out, "QUESTION 1")
	q2 := strings.Index(out, "QUESTION 2")
	q3 := strings.Index(out, "QUESTION 3")
	if !(q1 >= 0 && q1 < q2 && q2 < q3) {
		t.Errorf("sections out of order: %d %d %d", q1, q2, q3)
	}
	if !strings.HasSuffix(out, "\nLayer we should optimize: CONV\n") {
		t.Errorf("unexpected ending: %q", out[len(out)-40:])
	}
}

func TestWriteFileIsRepeatable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "answers.txt")

	if err := WriteFile(path, Render(baselineResult(t))); err != nil {
		t.Fatalf("first write: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading first report: %v", err)
	}

	if err := WriteFile(path, Render(baselineResult(t))); err != nil {
		t.Fatalf("second write: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading second report: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Error("two runs produced different reports")
	}
}

func TestWriteFileTruncates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "answers.txt")
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), 4096), 0o644); err != nil {
		t.Fatalf("seeding file: %v", err)
	}

	if err := WriteFile(path, []byte("short\n")); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading report: %v", err)
	}
	if string(got) != "short\n" {
		t.Errorf("got %q, want %q", got, "short\n")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("temp files left behind: %v", entries)
	}
}

func TestWriteFileMissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "answers.txt")

	err := WriteFile(path, []byte("report"))
	if !errors.Is(err, ErrWriteFailed) {
		t.Errorf("got error %v, want ErrWriteFailed", err)
	}
}
