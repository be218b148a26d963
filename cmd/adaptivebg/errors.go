package main

import (
	"errors"
	"fmt"
	"io"

	"adaptivebg"

	"github.com/fatih/color"
)

const installHint = "PNG encoding support is required. Rebuild adaptivebg with the image/png encoder linked in."

func printError(w io.Writer, err error) {
	msg := err.Error()
	if errors.Is(err, adaptivebg.ErrCapabilityMissing) {
		msg = installHint
	}
	_, _ = color.New(color.FgRed).Fprint(w, "Error:")
	_, _ = fmt.Fprintf(w, " %s\n", msg)
}
