package msgnew

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/loopcontext/msgnew/internal/run"
)

// Merger refreshes existing per-language catalogs against a template by
// invoking msgmerge once per catalog.
type Merger struct {
	Domain  *TextDomain
	Options Options
	Runner  run.Runner
	Log     logrus.FieldLogger
}

// Merge updates the catalogs for the given locales in place and returns the
// files touched. With no locales, every catalog found under the domain's
// lang_dir is merged. As with initialization, the first failure aborts.
func (m *Merger) Merge(ctx context.Context, potFile string, locales []Locale) ([]string, error) {
	targets, err := m.targets(locales)
	if err != nil {
		return nil, err
	}
	var merged []string
	for _, catalog := range targets {
		err := m.Runner.Run(ctx, m.Options.MsgMerge,
			"--update", "--backup=none", catalog, potFile)
		if err != nil {
			return merged, &CatalogGenerationError{Path: catalog, err: err}
		}
		m.logger().WithField("catalog", catalog).Info("merged catalog")
		merged = append(merged, catalog)
	}
	return merged, nil
}

func (m *Merger) targets(locales []Locale) ([]string, error) {
	if len(locales) == 0 {
		return m.allCatalogs()
	}
	targets := make([]string, 0, len(locales))
	for _, loc := range locales {
		catalog := m.Domain.CatalogFile(loc.Base())
		if _, err := os.Stat(catalog); errors.Is(err, fs.ErrNotExist) {
			return nil, &CatalogNotFoundError{Path: catalog}
		} else if err != nil {
			return nil, err
		}
		targets = append(targets, catalog)
	}
	return targets, nil
}

func (m *Merger) allCatalogs() ([]string, error) {
	entries, err := os.ReadDir(m.Domain.LangDir)
	if err != nil {
		return nil, err
	}
	var targets []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), m.Domain.LangFileSuffix) {
			continue
		}
		targets = append(targets, filepath.Join(m.Domain.LangDir, e.Name()))
	}
	sort.Strings(targets)
	return targets, nil
}

func (m *Merger) logger() logrus.FieldLogger {
	if m.Log != nil {
		return m.Log
	}
	return logrus.StandardLogger()
}
