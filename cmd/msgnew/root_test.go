package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

func TestNormalizePotFlag(t *testing.T) {
	fs := pflag.NewFlagSet("x", pflag.ContinueOnError)
	if got := normalizePotFlag(fs, "pot"); got != "pot-file" {
		t.Errorf("pot normalized to %q, want pot-file", got)
	}
	if got := normalizePotFlag(fs, "encoding"); got != "encoding" {
		t.Errorf("encoding normalized to %q, want encoding", got)
	}
}

func TestSetVerboseMode(t *testing.T) {
	defer logrus.SetLevel(logrus.WarnLevel)
	tests := []struct {
		count int
		want  logrus.Level
	}{
		{0, logrus.WarnLevel},
		{1, logrus.InfoLevel},
		{2, logrus.DebugLevel},
		{5, logrus.DebugLevel},
	}
	for _, tt := range tests {
		setVerboseMode(tt.count)
		if got := logrus.GetLevel(); got != tt.want {
			t.Errorf("setVerboseMode(%d): level = %v, want %v", tt.count, got, tt.want)
		}
	}
}

func TestConfigFileSuppliesDefaults(t *testing.T) {
	workDir, logFile := testEnv(t)
	config := "pot-file: custom.pot\n"
	if err := os.WriteFile(filepath.Join(workDir, ".msgnew.yaml"), []byte(config), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(workDir, "custom.pot"), []byte("# pot\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := execute("init", "fr"); err != nil {
		t.Fatal(err)
	}
	log, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(log), "--input=custom.pot") {
		t.Errorf("config-file template not used:\n%s", log)
	}
}

func TestBrokenConfigFileFails(t *testing.T) {
	workDir, _ := testEnv(t)
	if err := os.WriteFile(filepath.Join(workDir, ".msgnew.yaml"), []byte("pot-file: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := execute("init", "fr"); err == nil {
		t.Fatal("broken config file accepted")
	}
}
