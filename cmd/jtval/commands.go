package main

import (
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate SCHEMA DATA",
		Short: "Partition items into valid and invalid lists",
		Long: `Validates every item of DATA and prints {"correct": [...], "errors": [...]}.
Exits with status 1 when any item is invalid and 2 when the schema is invalid.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.compile(args[0], nil)
			if err != nil {
				return err
			}
			r, closeFn, err := a.openItems(args[1])
			if err != nil {
				return err
			}
			defer closeFn()

			correct, failures, err := v.Validate(cmd.Context(), r.Items())
			if err == nil && r.Err() == nil {
				err = writeJSON(cmd, map[string]any{"correct": correct, "errors": failures})
			}
			return a.finish(cmd, r, args[1], len(correct), len(failures), err)
		},
	}
}

func newStreamCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stream SCHEMA DATA",
		Short: "Print one [ok, error] pair per item as results arrive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.compile(args[0], nil)
			if err != nil {
				return err
			}
			r, closeFn, err := a.openItems(args[1])
			if err != nil {
				return err
			}
			defer closeFn()

			enc := json.NewEncoder(cmd.OutOrStdout())
			var valid, invalid int
			var runErr error
			for res, err := range v.Stream(cmd.Context(), r.Items()) {
				if err != nil {
					runErr = err
					break
				}
				ok, failure := res.Pair()
				if res.OK() {
					valid++
				} else {
					invalid++
				}
				if err := enc.Encode([]any{ok, failure}); err != nil {
					runErr = err
					break
				}
			}
			return a.finish(cmd, r, args[1], valid, invalid, runErr)
		},
	}
}

func newLegacyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "legacy SCHEMA DATA",
		Short: "Validate with placeholder-aligned output and numbered errors",
		Long: `Like validate, but the correct list keeps one entry per input item and every
invalid item is replaced by {"_JSON_VALIDATOR_ERROR_ID": n}; errors carry
{"error_id", "error", "object"}.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := a.compile(args[0], nil)
			if err != nil {
				return err
			}
			r, closeFn, err := a.openItems(args[1])
			if err != nil {
				return err
			}
			defer closeFn()

			correct, failures, err := v.ValidateLegacy(cmd.Context(), r.Items())
			if err == nil && r.Err() == nil {
				err = writeJSON(cmd, map[string]any{"correct": correct, "errors": failures})
			}
			return a.finish(cmd, r, args[1], len(correct)-len(failures), len(failures), err)
		},
	}
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
