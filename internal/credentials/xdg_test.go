package credentials

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultRefreshTokenPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("Failed to get home directory: %v", err)
	}

	t.Run("with XDG_CONFIG_HOME set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/test-config")

		result := DefaultRefreshTokenPath()
		expected := filepath.Join("/tmp/test-config", "planning", "refresh_token.txt")

		if result != expected {
			t.Errorf("Expected %s, got %s", expected, result)
		}
	})

	t.Run("without XDG_CONFIG_HOME set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")

		result := DefaultRefreshTokenPath()
		expected := filepath.Join(homeDir, ".config", "planning", "refresh_token.txt")

		if result != expected {
			t.Errorf("Expected %s, got %s", expected, result)
		}
	})
}

func TestEnsureParentDir(t *testing.T) {
	testPath := filepath.Join(t.TempDir(), "nested", "dir", "refresh_token.txt")

	if err := EnsureParentDir(testPath); err != nil {
		t.Fatalf("EnsureParentDir failed: %v", err)
	}

	info, err := os.Stat(filepath.Dir(testPath))
	if err != nil {
		t.Fatalf("Parent directory was not created: %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected parent to be a directory")
	}
	if info.Mode().Perm() != os.FileMode(0700) {
		t.Errorf("Expected permissions %v, got %v", os.FileMode(0700), info.Mode().Perm())
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()

	existing := filepath.Join(tmpDir, "exists.txt")
	if err := os.WriteFile(existing, []byte("1//0abc"), 0600); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existing) {
		t.Error("Expected FileExists to return true for existing file")
	}
	if FileExists(filepath.Join(tmpDir, "missing.txt")) {
		t.Error("Expected FileExists to return false for missing file")
	}
}
