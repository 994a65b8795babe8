package main

import (
	"github.com/spf13/cobra"

	"idnumbers/internal/idnumber/handler"
)

func newFormatsCmd() *cobra.Command {
	var country string
	cmd := &cobra.Command{
		Use:     "formats",
		Short:   "List the catalogued formats",
		Example: "  idnumbers formats -c KR",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos, err := newCLIService(cmd).Formats(cmd.Context(), country)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), handler.FormatsResponse{Formats: infos})
		},
	}
	cmd.Flags().StringVarP(&country, "country", "c", "", "Only list this country's formats")
	return cmd
}
