package msgnew

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/loopcontext/msgnew/internal/run"
)

// Initializer creates per-language catalogs from a template by invoking
// msginit once per locale.
type Initializer struct {
	Domain  *TextDomain
	Options Options
	Runner  run.Runner
	Log     logrus.FieldLogger
}

// Init generates one catalog per locale, in input order, and returns the
// files created. An existing destination is never overwritten; the first
// failed invocation aborts the run, leaving earlier catalogs on disk.
func (g *Initializer) Init(ctx context.Context, potFile string, locales []Locale) ([]string, error) {
	if err := os.MkdirAll(g.Domain.LangDir, 0755); err != nil {
		return nil, err
	}
	base := []string{"--input=" + potFile, "--no-translator"}
	var created []string
	for _, loc := range locales {
		dest := g.Domain.CatalogFile(loc.Base())
		if _, err := os.Stat(dest); err == nil {
			return created, &CatalogExistsError{Path: dest}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return created, err
		}
		args := append(append([]string{}, base...),
			"--locale="+loc.String(), "--output-file="+dest)
		if err := g.Runner.Run(ctx, g.Options.MsgInit, args...); err != nil {
			return created, &CatalogGenerationError{Path: dest, err: err}
		}
		g.logger().WithField("catalog", dest).Info("initialized catalog")
		created = append(created, dest)
	}
	return created, nil
}

func (g *Initializer) logger() logrus.FieldLogger {
	if g.Log != nil {
		return g.Log
	}
	return logrus.StandardLogger()
}
