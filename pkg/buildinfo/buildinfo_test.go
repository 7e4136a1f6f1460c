package buildinfo

import (
	"runtime/debug"
	"testing"
)

func TestBinaryVersionDefault(t *testing.T) {
	if BinaryVersion != "dev" {
		t.Errorf("Expected BinaryVersion to be 'dev', got '%s'", BinaryVersion)
	}
}

func TestModuleVersionMatchesBuildInfo(t *testing.T) {
	expected := ""
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" && info.Main.Version != "(devel)" {
		expected = info.Main.Version
	}
	if actual := ModuleVersion(); actual != expected {
		t.Errorf("ModuleVersion() = '%s', expected '%s'", actual, expected)
	}
}

func TestVersion_PrefersLdflags(t *testing.T) {
	saved := BinaryVersion
	t.Cleanup(func() { BinaryVersion = saved })

	BinaryVersion = "v1.4.0"
	if got := Version(); got != "v1.4.0" {
		t.Errorf("Version() = %q, want v1.4.0", got)
	}
}

func TestVersion_FallsBack(t *testing.T) {
	saved := BinaryVersion
	t.Cleanup(func() { BinaryVersion = saved })

	BinaryVersion = "dev"
	got := Version()
	if mv := ModuleVersion(); mv != "" {
		if got != mv {
			t.Errorf("Version() = %q, want module version %q", got, mv)
		}
		return
	}
	if got != "dev" {
		t.Errorf("Version() = %q, want dev", got)
	}
}
