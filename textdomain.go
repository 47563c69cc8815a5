package msgnew

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"

	"github.com/loopcontext/msgnew/internal/run"
)

// DefaultManifest is the conventional manifest filename, looked up in the
// working directory when no path is given.
const DefaultManifest = "msgnew.yaml"

// TextDomain describes where a project keeps its catalogs and how its
// template is extracted. It is usually loaded from msgnew.yaml.
type TextDomain struct {
	Name           string   `yaml:"name"`
	LangDir        string   `yaml:"lang_dir"`
	LangFileSuffix string   `yaml:"lang_file_suffix"`
	Sources        []string `yaml:"sources"`
	SourceLanguage string   `yaml:"source_language"`
	Keywords       []string `yaml:"keywords"`

	CopyrightHolder string `yaml:"copyright_holder"`
	BugsEmail       string `yaml:"bugs_email"`
}

// LoadTextDomain reads a project manifest. A missing file is not an error:
// the returned domain then carries only defaults, with the project name
// taken from the working directory.
func LoadTextDomain(path string) (*TextDomain, error) {
	if path == "" {
		path = DefaultManifest
	}
	td := &TextDomain{}
	content, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("read manifest: %w", err)
	default:
		if err := yaml.Unmarshal(content, td); err != nil {
			return nil, fmt.Errorf("parse manifest %s: %w", path, err)
		}
	}
	td.applyDefaults()
	return td, nil
}

func (td *TextDomain) applyDefaults() {
	if td.Name == "" {
		if wd, err := os.Getwd(); err == nil {
			td.Name = filepath.Base(wd)
		}
	}
	if td.LangDir == "" {
		td.LangDir = "po"
	}
	if td.LangFileSuffix == "" {
		td.LangFileSuffix = ".po"
	}
	if len(td.Sources) == 0 {
		td.Sources = []string{"*.go"}
	}
	if td.SourceLanguage == "" {
		td.SourceLanguage = "C"
	}
}

// PotFile returns the conventional template path: <lang_dir>/<name>.pot.
func (td *TextDomain) PotFile() string {
	return filepath.Join(td.LangDir, td.Name+".pot")
}

// CatalogFile returns the destination path for a per-language catalog with
// the given stem (e.g. "fr" or "pt-BR").
func (td *TextDomain) CatalogFile(base string) string {
	return filepath.Join(td.LangDir, base+td.LangFileSuffix)
}

// WritePot extracts the project's translatable strings into dest by running
// xgettext over the manifest's source globs.
func (td *TextDomain) WritePot(ctx context.Context, r run.Runner, dest, xgettext, encoding, copyrightHolder, bugsEmail string) error {
	inputs, err := td.expandSources()
	if err != nil {
		return err
	}
	args := []string{
		"--output=" + dest,
		"--from-code=" + encoding,
		"--language=" + td.SourceLanguage,
		"--package-name=" + td.Name,
		"--add-comments=TRANSLATORS:",
		"--sort-by-file",
	}
	if copyrightHolder != "" {
		args = append(args, "--copyright-holder="+copyrightHolder)
	}
	if bugsEmail != "" {
		args = append(args, "--msgid-bugs-address="+bugsEmail)
	}
	for _, kw := range td.Keywords {
		args = append(args, "--keyword="+kw)
	}
	args = append(args, inputs...)
	if err := r.Run(ctx, xgettext, args...); err != nil {
		return fmt.Errorf("extract template: %w", err)
	}
	return nil
}

func (td *TextDomain) expandSources() ([]string, error) {
	var inputs []string
	for _, pattern := range td.Sources {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad source glob %q: %w", pattern, err)
		}
		inputs = append(inputs, matches...)
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no source files match %v", td.Sources)
	}
	return inputs, nil
}
