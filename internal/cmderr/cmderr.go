// Package cmderr prints fatal CLI errors before the process exits.
package cmderr

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"
)

// ErrorDescription is an error carrying a longer explanation printed
// after the error line.
type ErrorDescription interface {
	error
	Description() string
}

// ErrorSuggestion is an error carrying a suggested next step.
type ErrorSuggestion interface {
	error
	Suggestion() string
}

// PrintCLIOutput writes err to stderr in the standard fatal format.
// Cancellation is silent: a user interrupting the process already knows.
func PrintCLIOutput(err error) {
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, aurora.Red("Error"), err)

	var desc ErrorDescription
	if errors.As(err, &desc) {
		fmt.Fprintf(os.Stderr, "\n%s\n", desc.Description())
	}

	var sugg ErrorSuggestion
	if errors.As(err, &sugg) {
		fmt.Fprintf(os.Stderr, "\n%s\n", sugg.Suggestion())
	}
}
