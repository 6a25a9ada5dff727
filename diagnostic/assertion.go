// Copyright © 2026 The qassert authors

package diagnostic

// NoDescriptionMessage is the message reported for an assertion nothing
// could describe.
const NoDescriptionMessage = "no description available for this assertion"

// Assertion builds the report for a failed assertion identified by code
// (conventionally "module:id"). When found is false the brief, tips and url
// are ignored and a note-level diagnostic is returned.
func Assertion(code, brief, tips, url string, found bool) Diagnostic {
	if !found {
		return Diagnostic{
			Severity: SeverityNote,
			Code:     code,
			Message:  NoDescriptionMessage,
		}
	}
	d := Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  brief,
		Help:     tips,
	}
	if d.Message == "" {
		d.Message = "assertion failed"
	}
	if url != "" {
		d.Notes = append(d.Notes, "see "+url)
	}
	return d
}
