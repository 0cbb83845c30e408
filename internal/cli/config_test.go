package cli

import (
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/linebreak"
)

func TestLoadOptionsEmptyPath(t *testing.T) {
	got, err := loadOptions("", linebreak.Options{LinePenalty: 3})
	if err != nil {
		t.Fatalf("loadOptions: %v", err)
	}
	if got.LinePenalty != 3 {
		t.Errorf("LinePenalty = %v, want unchanged 3", got.LinePenalty)
	}
}

func TestLoadOptionsOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "p_tolerance = 2.0\nalpha = 500\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := loadOptions(path, linebreak.Options{})
	if err != nil {
		t.Fatalf("loadOptions: %v", err)
	}
	if got.PTolerance != 2.0 {
		t.Errorf("PTolerance = %v, want 2.0", got.PTolerance)
	}
	if got.Alpha != 500 {
		t.Errorf("Alpha = %v, want 500", got.Alpha)
	}
	if got.Gamma != 0 {
		t.Errorf("Gamma = %v, want left at 0 (unset in file)", got.Gamma)
	}
}

func TestLoadOptionsMissingFile(t *testing.T) {
	_, err := loadOptions("/no/such/file.toml", linebreak.Options{})
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
