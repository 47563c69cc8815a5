package msgnew

import "fmt"

// ToolNotFoundError reports a required external utility missing from PATH.
type ToolNotFoundError struct {
	Tool string
	err  error
}

func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("required tool %q not found in PATH", e.Tool)
}

func (e *ToolNotFoundError) Unwrap() error {
	return e.err
}

// InvalidEncodingError reports an encoding name unknown to the IANA registry.
type InvalidEncodingError struct {
	Encoding string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid encoding %q", e.Encoding)
}

// UsageError reports a malformed invocation (wrong arguments, not bad input data).
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// InvalidLanguageCodeError reports a language sub-token that is not a known
// ISO 639 code.
type InvalidLanguageCodeError struct {
	Code string
}

func (e *InvalidLanguageCodeError) Error() string {
	return fmt.Sprintf("invalid language code %q", e.Code)
}

// InvalidCountryCodeError reports a region sub-token that is not a known
// ISO 3166 code.
type InvalidCountryCodeError struct {
	Code string
}

func (e *InvalidCountryCodeError) Error() string {
	return fmt.Sprintf("invalid country code %q", e.Code)
}

// TemplateNotFoundError reports an explicitly configured template file that
// does not exist.
type TemplateNotFoundError struct {
	Path string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("template file %q does not exist", e.Path)
}

// CatalogExistsError reports a destination catalog that is already on disk.
// Catalogs are never overwritten.
type CatalogExistsError struct {
	Path string
}

func (e *CatalogExistsError) Error() string {
	return fmt.Sprintf("catalog %q already exists", e.Path)
}

// CatalogNotFoundError reports a locale named for merging that has no
// catalog on disk.
type CatalogNotFoundError struct {
	Path string
}

func (e *CatalogNotFoundError) Error() string {
	return fmt.Sprintf("catalog %q does not exist", e.Path)
}

// CatalogGenerationError reports a failed external generation step for one
// destination file.
type CatalogGenerationError struct {
	Path string
	err  error
}

func (e *CatalogGenerationError) Error() string {
	return fmt.Sprintf("generating %q: %v", e.Path, e.err)
}

func (e *CatalogGenerationError) Unwrap() error {
	return e.err
}
