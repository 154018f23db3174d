package cli

import (
	"fmt"
	"io"

	"github.com/dmitrijs2005/gymtrack/internal/client/services"
	"github.com/dmitrijs2005/gymtrack/internal/client/validation"
)

// toastNotifier renders notifications as single terminal lines, the CLI
// equivalent of the mobile toast.
type toastNotifier struct {
	w io.Writer
}

func (n *toastNotifier) Notify(kind services.NotifyKind, message string) {
	switch kind {
	case services.NotifySuccess:
		fmt.Fprintf(n.w, "[success] %s\n", message)
	default:
		fmt.Fprintf(n.w, "[error] %s\n", message)
	}
}

// printFieldErrors renders per-field validation messages under the form,
// in the form's field order.
func printFieldErrors(w io.Writer, result validation.Result, fields ...string) {
	for _, field := range fields {
		if msg, ok := result[field]; ok {
			fmt.Fprintf(w, "  %s: %s\n", field, msg)
		}
	}
}
