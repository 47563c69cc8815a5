package msgnew

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/loopcontext/msgnew/internal/run"
)

// TemplateLocator produces the path of the .pot template to initialize
// catalogs from. Preference order: the explicitly configured file, then the
// conventional <lang_dir>/<name>.pot, then a freshly extracted temporary
// template. The result is memoized for the life of the locator.
type TemplateLocator struct {
	Domain  *TextDomain
	Options Options
	Runner  run.Runner
	Log     logrus.FieldLogger

	path string
	temp bool
}

// Locate returns the template path, extracting a temporary one if needed.
// Repeat calls within one run return the same path without re-extracting.
func (t *TemplateLocator) Locate(ctx context.Context) (string, error) {
	if t.path != "" {
		return t.path, nil
	}
	if t.Options.POTFile != "" {
		if _, err := os.Stat(t.Options.POTFile); err != nil {
			return "", &TemplateNotFoundError{Path: t.Options.POTFile}
		}
		t.path = t.Options.POTFile
		return t.path, nil
	}
	conventional := t.Domain.PotFile()
	if _, err := os.Stat(conventional); err == nil {
		t.path = conventional
		return t.path, nil
	}
	path, err := t.extractTemp(ctx)
	if err != nil {
		return "", err
	}
	t.path, t.temp = path, true
	return t.path, nil
}

func (t *TemplateLocator) extractTemp(ctx context.Context) (string, error) {
	f, err := os.CreateTemp("", "msgnew-*.pot")
	if err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	t.logger().WithField("pot", f.Name()).Info("extracting gettext strings")
	err = t.Domain.WritePot(ctx, t.Runner, f.Name(),
		t.Options.XGettext, t.Options.Encoding,
		t.Options.CopyrightHolder, t.Options.BugsEmail)
	if err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// Cleanup removes a temporary template, if one was extracted. Removal is
// best effort; callers defer it so the file's lifetime is bound to the
// command invocation.
func (t *TemplateLocator) Cleanup() {
	if !t.temp || t.path == "" {
		return
	}
	if err := os.Remove(t.path); err != nil && !os.IsNotExist(err) {
		t.logger().WithError(err).Warn("could not remove temporary template")
	}
	t.path, t.temp = "", false
}

func (t *TemplateLocator) logger() logrus.FieldLogger {
	if t.Log != nil {
		return t.Log
	}
	return logrus.StandardLogger()
}
