package utils

import (
	"fmt"
	"os"
	"strings"

	bettererrors "github.com/xtuc/better-errors"
	bettererrorstree "github.com/xtuc/better-errors/printer/tree"
)

// Set at link time with -ldflags "-X github.com/botarena/botarena/common/utils.version=..."
var version = "dev"

func GetVersion() string {
	return version
}

// FailWith prints err and exits; errors that are not better-errors chains
// panic so the stack trace is kept.
func FailWith(err error) {
	if bettererrors.IsBetterError(err) {

		command := strings.Join(os.Args, " ")

		berror := bettererrors.
			New(command).
			SetContext("version", GetVersion()).
			With(err)

		fmt.Println("")
		fmt.Println("❌  An error occurred.")
		fmt.Println("")

		fmt.Print(bettererrorstree.PrintChain(berror))

		fmt.Println("")

		os.Exit(1)
	} else {
		panic(err)
	}
}

func WarnWith(err error) {
	fmt.Println(FormatWarning(err))
}

func FormatWarning(err error) string {
	if chain, ok := err.(*bettererrors.Chain); ok {
		return "⚠️  Warning\n\n" + bettererrorstree.PrintChain(chain)
	}

	return err.Error()
}
