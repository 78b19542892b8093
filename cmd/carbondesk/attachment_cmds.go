package main

import (
	"fmt"

	"github.com/opencarbon/carbondesk/internal/desksdk"
	"github.com/spf13/cobra"
)

type attachmentSelector func(sdk *desksdk.DeskSDK) *desksdk.AttachmentAPI

// Persisted attachments are managed with direct API calls, never through an
// upload queue. These constructors build the shared ls/rm/designate verbs for
// each entity's media and document groups.

func attachmentListCmd(noun string, pick attachmentSelector) *cobra.Command {
	return &cobra.Command{
		Use:   "ls <parent-id>",
		Short: "List persisted " + noun,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}
			defer sdk.Close()

			records, err := pick(sdk).List(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printAttachments(records)
			return nil
		},
	}
}

func attachmentRemoveCmd(pick attachmentSelector) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <parent-id> <record-id>",
		Short: "Delete a persisted attachment",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}
			defer sdk.Close()

			if err := pick(sdk).Delete(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Println(green("removed"), args[1])
			return nil
		},
	}
}

func attachmentCoverCmd(designation string, pick attachmentSelector) *cobra.Command {
	return &cobra.Command{
		Use:   designation + " <parent-id> <record-id>",
		Short: "Mark a persisted image as the " + designation,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sdk, err := newSDK()
			if err != nil {
				return err
			}
			defer sdk.Close()

			// the server clears any previous designee
			if err := pick(sdk).SetCover(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Println(green("set"), designation, args[1])
			return nil
		},
	}
}

func registerListFlags(cmd *cobra.Command) {
	cmd.Flags().Int("page", 1, "Page number")
	cmd.Flags().Int("per-page", 20, "Results per page")
	cmd.Flags().StringP("query", "q", "", "Search query")
}

func listParamsFrom(cmd *cobra.Command) *desksdk.ListParams {
	page, _ := cmd.Flags().GetInt("page")
	perPage, _ := cmd.Flags().GetInt("per-page")
	query, _ := cmd.Flags().GetString("query")
	return &desksdk.ListParams{Page: page, PerPage: perPage, Query: query}
}
