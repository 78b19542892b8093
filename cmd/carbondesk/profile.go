package main

import (
	"fmt"

	"github.com/opencarbon/carbondesk/internal/desksdk"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your user profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a profile (your own when no id is given)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sdk, err := newSDK()
		if err != nil {
			return err
		}
		defer sdk.Close()

		var profile *desksdk.Profile
		if len(args) == 1 {
			profile, err = sdk.Profiles.Get(cmd.Context(), args[0])
		} else {
			profile, err = sdk.Profiles.Me(cmd.Context())
		}
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n", cyan(profile.DisplayName), profile.ID)
		if profile.Headline != "" {
			fmt.Println(profile.Headline)
		}
		if profile.Country != "" {
			fmt.Println("country:", profile.Country)
		}
		if profile.Bio != "" {
			fmt.Println(profile.Bio)
		}
		return nil
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your profile and upload an avatar or documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		sdk, err := newSDK()
		if err != nil {
			return err
		}
		defer sdk.Close()

		me, err := sdk.Profiles.Me(ctx)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("display-name") || cmd.Flags().Changed("headline") ||
			cmd.Flags().Changed("bio") || cmd.Flags().Changed("country") {
			if _, err := sdk.Profiles.Update(ctx, me.ID, profileParamsFrom(cmd)); err != nil {
				return err
			}
			fmt.Println(green("updated"), me.ID)
		}

		flags := attachFlagsFrom(cmd, "avatar")
		if flags.empty() {
			return nil
		}

		persistedMedia, err := sdk.Profiles.Media.List(ctx, me.ID)
		if err != nil {
			return err
		}
		persistedDocs, err := sdk.Profiles.Documents.List(ctx, me.ID)
		if err != nil {
			return err
		}

		// profile images never self-designate; the avatar flag is explicit
		session, mediaQueue, docQueue := newAttachSession(sdk.Profiles.Media, sdk.Profiles.Documents, false)
		defer session.Close()
		session.Bind(me.ID)

		if err := stageSelection(flags, mediaQueue, docQueue, len(persistedMedia), len(persistedDocs)); err != nil {
			return err
		}
		if err := session.NotifyEnqueued(ctx); err != nil {
			return err
		}

		if failed := reportQueue(mediaQueue) + reportQueue(docQueue); failed > 0 {
			return fmt.Errorf("%d attachment(s) failed", failed)
		}
		return nil
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse the member directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		sdk, err := newSDK()
		if err != nil {
			return err
		}
		defer sdk.Close()

		list, err := sdk.Profiles.List(cmd.Context(), listParamsFrom(cmd))
		if err != nil {
			return err
		}

		for _, profile := range list.Items {
			fmt.Printf("%-24s %-30s %s\n", profile.ID, profile.DisplayName, profile.Country)
		}
		fmt.Printf("page %d, %d total\n", list.Page, list.Total)
		return nil
	},
}

var profileMediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Manage your persisted profile images",
}

func init() {
	profileUpdateCmd.Flags().String("display-name", "", "Display name")
	profileUpdateCmd.Flags().String("headline", "", "Short headline")
	profileUpdateCmd.Flags().String("bio", "", "Profile bio")
	profileUpdateCmd.Flags().String("country", "", "Country code")
	registerAttachFlags(profileUpdateCmd, "avatar")
	registerListFlags(profileListCmd)

	profileMediaCmd.AddCommand(
		attachmentListCmd("media", func(sdk *desksdk.DeskSDK) *desksdk.AttachmentAPI { return sdk.Profiles.Media }),
		attachmentRemoveCmd(func(sdk *desksdk.DeskSDK) *desksdk.AttachmentAPI { return sdk.Profiles.Media }),
		attachmentCoverCmd("avatar", func(sdk *desksdk.DeskSDK) *desksdk.AttachmentAPI { return sdk.Profiles.Media }),
	)

	profileCmd.AddCommand(profileShowCmd, profileUpdateCmd, profileListCmd, profileMediaCmd)
	rootCmd.AddCommand(profileCmd)
}

func profileParamsFrom(cmd *cobra.Command) *desksdk.ProfileParams {
	displayName, _ := cmd.Flags().GetString("display-name")
	headline, _ := cmd.Flags().GetString("headline")
	bio, _ := cmd.Flags().GetString("bio")
	country, _ := cmd.Flags().GetString("country")
	return &desksdk.ProfileParams{
		DisplayName: displayName,
		Headline:    headline,
		Bio:         bio,
		Country:     country,
	}
}
