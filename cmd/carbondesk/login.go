package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store an API session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		token, _ := cmd.Flags().GetString("token")
		if token == "" {
			return errors.New("a token is required; pass it with --token")
		}

		if err := tokenStore().Save(token); err != nil {
			return err
		}

		fmt.Println(green("signed in"))
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := tokenStore().Clear(); err != nil {
			return err
		}

		fmt.Println(cyan("signed out"))
		return nil
	},
}

func init() {
	loginCmd.Flags().StringP("token", "t", "", "Bearer token issued by the directory API")
	rootCmd.AddCommand(loginCmd, logoutCmd)
}
