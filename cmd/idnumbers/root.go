package main

import (
	"encoding/json"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"idnumbers/internal/idnumber/catalogue"
	"idnumbers/internal/idnumber/service"
	"idnumbers/internal/platform/logger"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "idnumbers",
		Short:         "National identification number validation",
		Long:          "idnumbers validates national identification numbers, recovers the facts they encode and computes their check digits.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCmd(),
		newNumberCmd(validateCommand),
		newNumberCmd(parseCommand),
		newNumberCmd(checksumCommand),
		newFormatsCmd(),
	)
	return root
}

// newCLIService builds a service whose logs go to stderr at warn level so
// they never mix with JSON on stdout.
func newCLIService(cmd *cobra.Command) *service.Service {
	return service.New(catalogue.Default(), service.WithLogger(cliLogger(cmd.ErrOrStderr())))
}

func cliLogger(w io.Writer) *slog.Logger {
	return logger.NewTo(w, "warn", "text")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
