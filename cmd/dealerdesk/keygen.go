package main

import (
	"fmt"

	"github.com/go-playground/errors/v5"
	"github.com/helmethub/dealerdesk/internal/cookie"
	"github.com/spf13/cobra"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Print a random cookie key for session.cookie_key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			key, err := cookie.GenerateKey()
			if err != nil {
				return errors.Wrap(err, "cookie.GenerateKey()")
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)

			return nil
		},
	}
}
