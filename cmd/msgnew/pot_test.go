package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPot_writesConventionalTemplate(t *testing.T) {
	workDir, logFile := testEnv(t)
	manifest := "name: myapp\nlang_dir: po\n"
	if err := os.WriteFile(filepath.Join(workDir, "msgnew.yaml"), []byte(manifest), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(workDir, "main.go"), []byte("package main\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := execute("pot"); err != nil {
		t.Fatal(err)
	}

	pot := filepath.Join("po", "myapp.pot")
	if _, err := os.Stat(pot); err != nil {
		t.Errorf("template not created: %v", err)
	}
	log, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"xgettext", "--output=" + pot, "--package-name=myapp", "main.go"} {
		if !strings.Contains(string(log), want) {
			t.Errorf("xgettext invocation missing %q:\n%s", want, log)
		}
	}
}

func TestPot_outputOverride(t *testing.T) {
	workDir, logFile := testEnv(t)
	if err := os.WriteFile(filepath.Join(workDir, "main.go"), []byte("package main\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := execute("pot", "-o", "custom.pot"); err != nil {
		t.Fatal(err)
	}
	log, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(log), "--output=custom.pot") {
		t.Errorf("output override not honored:\n%s", log)
	}
}
