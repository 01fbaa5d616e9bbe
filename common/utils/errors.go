package utils

import (
	"fmt"
	"os"

	"github.com/ttacon/chalk"
	bettererrors "github.com/xtuc/better-errors"
)

// Check stops the process when err is set. The message is printed in red
// above the error; better-errors chains go through FailWith.
func Check(err error, msg string) {
	if err == nil {
		return
	}

	fmt.Fprintln(os.Stderr, chalk.Red.Color(msg))

	if bettererrors.IsBetterError(err) {
		FailWith(err)
	}

	panic(err)
}
