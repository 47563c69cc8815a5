package msgnew

import (
	"os/exec"
	"runtime"

	"golang.org/x/text/encoding/ianaindex"
)

// DefaultEncoding is used when no encoding option is given.
const DefaultEncoding = "UTF-8"

// Options are the raw invocation options for catalog generation. Zero values
// mean "use the default"; ResolveOptions fills them in.
type Options struct {
	XGettext        string
	MsgInit         string
	MsgMerge        string
	Encoding        string
	POTFile         string
	CopyrightHolder string
	BugsEmail       string
}

// lookPath is swapped out in tests so tool resolution does not depend on the
// host's PATH.
var lookPath = exec.LookPath

// DefaultOptions returns a copy of opts with tool names and encoding
// defaulted and the encoding validated. The command search path is not
// consulted; callers confirm the tools they actually run with LookupTool.
func DefaultOptions(opts Options) (Options, error) {
	if opts.XGettext == "" {
		opts.XGettext = DefaultToolName("xgettext")
	}
	if opts.MsgInit == "" {
		opts.MsgInit = DefaultToolName("msginit")
	}
	if opts.MsgMerge == "" {
		opts.MsgMerge = DefaultToolName("msgmerge")
	}
	if opts.Encoding == "" {
		opts.Encoding = DefaultEncoding
	} else if err := ValidateEncoding(opts.Encoding); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// ResolveOptions defaults opts like DefaultOptions and additionally requires
// xgettext and msginit on the command search path, the tools catalog
// initialization runs. msgmerge is deliberately not checked here so that
// initialization works on hosts without it.
func ResolveOptions(opts Options) (Options, error) {
	opts, err := DefaultOptions(opts)
	if err != nil {
		return Options{}, err
	}
	for _, tool := range []string{opts.XGettext, opts.MsgInit} {
		if err := LookupTool(tool); err != nil {
			return Options{}, err
		}
	}
	return opts, nil
}

// LookupTool confirms that tool resolves through the command search path.
func LookupTool(tool string) error {
	if _, err := lookPath(tool); err != nil {
		return &ToolNotFoundError{Tool: tool, err: err}
	}
	return nil
}

// DefaultToolName returns the platform name for a gettext utility.
func DefaultToolName(name string) string {
	if runtime.GOOS == "windows" {
		return name + ".exe"
	}
	return name
}

// ValidateEncoding accepts any name registered with IANA. The index may map
// a registered name to no usable encoding; that is still a valid name for
// the gettext tools, so only unknown names are rejected.
func ValidateEncoding(name string) error {
	if _, err := ianaindex.IANA.Encoding(name); err != nil {
		return &InvalidEncodingError{Encoding: name}
	}
	return nil
}
