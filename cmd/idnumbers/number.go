package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"idnumbers/internal/idnumber/handler"
	"idnumbers/internal/idnumber/service"
	"idnumbers/pkg/requestcontext"
)

type numberCommand int

const (
	validateCommand numberCommand = iota
	parseCommand
	checksumCommand
)

type numberFlags struct {
	country string
	format  string
	ref     string
}

func newNumberCmd(kind numberCommand) *cobra.Command {
	var flags numberFlags
	cmd := &cobra.Command{
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNumber(cmd, kind, flags, args[0])
		},
	}
	switch kind {
	case validateCommand:
		cmd.Use = "validate NUMBER"
		cmd.Short = "Check a number against a country format"
		cmd.Example = "  idnumbers validate -c PL 81010200141"
	case parseCommand:
		cmd.Use = "parse NUMBER"
		cmd.Short = "Validate a number and print the facts it encodes"
		cmd.Example = "  idnumbers parse -c SE 850709-9805"
	case checksumCommand:
		cmd.Use = "checksum NUMBER"
		cmd.Short = "Compute the check digits of a number"
		cmd.Example = "  idnumbers checksum -c ES -f NIE X1234567L"
	}

	cmd.Flags().StringVarP(&flags.country, "country", "c", "", "ISO 3166 alpha-2 or alpha-3 country code (required)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Format name or alias; the country default when empty")
	cmd.Flags().StringVar(&flags.ref, "ref", "", "Reference date (YYYY-MM-DD) for two digit years; today when empty")
	if err := cmd.MarkFlagRequired("country"); err != nil {
		panic(fmt.Sprintf("failed to mark country flag as required: %v", err))
	}
	return cmd
}

func runNumber(cmd *cobra.Command, kind numberCommand, flags numberFlags, number string) error {
	ctx, err := withReferenceDate(cmd.Context(), flags.ref)
	if err != nil {
		return err
	}
	svc := newCLIService(cmd)
	q := service.Query{Country: flags.country, Format: flags.format, Number: number}

	switch kind {
	case parseCommand:
		verdict, err := svc.Parse(ctx, q)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), handler.FromVerdict(verdict))
	case checksumCommand:
		res, err := svc.Checksum(ctx, q)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), handler.FromChecksum(res))
	default:
		verdict, err := svc.Validate(ctx, q)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), handler.FromVerdict(verdict))
	}
}

func withReferenceDate(ctx context.Context, ref string) (context.Context, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if ref == "" {
		return requestcontext.WithTime(ctx, time.Now()), nil
	}
	t, err := time.Parse(time.DateOnly, ref)
	if err != nil {
		return nil, fmt.Errorf("invalid --ref %q: want YYYY-MM-DD", ref)
	}
	return requestcontext.WithTime(ctx, t), nil
}
