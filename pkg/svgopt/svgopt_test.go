package svgopt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleSVG = `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor">
  <!-- a friendly circle -->
  <circle cx="12" cy="12" r="10" fill="#ff0000" stroke="#000"/>
  <path d="M 2 2 L 22 22" stroke="blue"/>
</svg>
`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "icon.svg")
	if err := os.WriteFile(path, []byte(sampleSVG), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOptimizeStripsAttributes(t *testing.T) {
	path := writeSample(t)
	if err := Optimize(path); err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}

	out, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(out)
	for _, attr := range []string{"width=", "height=", "viewBox=", "stroke=", "fill="} {
		if strings.Contains(got, attr) {
			t.Errorf("optimized output still contains %q:\n%s", attr, got)
		}
	}
	if !strings.Contains(got, "<circle") || !strings.Contains(got, "<path") {
		t.Errorf("optimized output lost shape elements:\n%s", got)
	}
}

func TestOptimizeShrinksFile(t *testing.T) {
	path := writeSample(t)
	if err := Optimize(path); err != nil {
		t.Fatalf("Optimize failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() >= int64(len(sampleSVG)) {
		t.Errorf("optimized size %d, want smaller than %d", info.Size(), len(sampleSVG))
	}
}

func TestOptimizeCreatesBackupOnce(t *testing.T) {
	path := writeSample(t)
	backup := path + BackupSuffix

	if err := Optimize(path); err != nil {
		t.Fatalf("first Optimize failed: %v", err)
	}
	got, err := os.ReadFile(backup)
	if err != nil {
		t.Fatalf("backup missing: %v", err)
	}
	if string(got) != sampleSVG {
		t.Error("backup does not hold the original content")
	}

	// A second run must not replace the backup with the already
	// optimized markup.
	if err := Optimize(path); err != nil {
		t.Fatalf("second Optimize failed: %v", err)
	}
	got, err = os.ReadFile(backup)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != sampleSVG {
		t.Error("second run overwrote the backup with optimized content")
	}
}

func TestOptimizeIsIdempotent(t *testing.T) {
	path := writeSample(t)
	if err := Optimize(path); err != nil {
		t.Fatalf("first Optimize failed: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := Optimize(path); err != nil {
		t.Fatalf("second Optimize failed: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("optimizing an already-optimized file changed its content")
	}
}

func TestOptimizeRejectsBrokenMarkup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.svg")
	if err := os.WriteFile(path, []byte("<svg><unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Optimize(path); err == nil {
		t.Error("expected error for unparseable svg")
	}
}

func TestOptimizeMarkupKeepsNestedElements(t *testing.T) {
	in := `<svg width="10" height="10"><g fill="red"><rect width="5" height="5" stroke="blue"/></g></svg>`
	out, err := optimizeMarkup([]byte(in))
	if err != nil {
		t.Fatalf("optimizeMarkup failed: %v", err)
	}
	got := string(out)
	if strings.Contains(got, "stroke") || strings.Contains(got, "fill") {
		t.Errorf("presentation attributes survived: %s", got)
	}
	if !strings.Contains(got, "<g") || !strings.Contains(got, "<rect") {
		t.Errorf("nested elements lost: %s", got)
	}
}
