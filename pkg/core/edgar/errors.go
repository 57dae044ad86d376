package edgar

import "fmt"

// CIKNotFoundError reports that neither the ticker nor any of the
// provided company names matched an SEC registrant.
type CIKNotFoundError struct {
	Ticker string
	Names  []string
}

func (e *CIKNotFoundError) Error() string {
	if e.Ticker != "" {
		return fmt.Sprintf("no CIK found for ticker %q", e.Ticker)
	}
	return fmt.Sprintf("no CIK found for any of %d company names", len(e.Names))
}

// FilingNotFoundError reports that a filing, or a document inside a
// filing, could not be located with the given constraints.
type FilingNotFoundError struct {
	CIK  string
	What string
}

func (e *FilingNotFoundError) Error() string {
	return fmt.Sprintf("cik %s: %s not found", e.CIK, e.What)
}

// UnknownFormTypeError reports a filing whose form type has no bucket
// in the dataset.
type UnknownFormTypeError struct {
	CIK      string
	FormType string
}

func (e *UnknownFormTypeError) Error() string {
	return fmt.Sprintf("filing of unknown type (%s) for CIK %s", e.FormType, e.CIK)
}
