package main

import (
	"context"
	"fmt"

	"github.com/opencarbon/carbondesk/internal/desksdk"
	"github.com/spf13/cobra"
)

var companyCmd = &cobra.Command{
	Use:   "company",
	Short: "Manage company listings",
}

var companyCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a company, then upload its attachments",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		sdk, err := newSDK()
		if err != nil {
			return err
		}
		defer sdk.Close()

		params := companyParamsFrom(cmd)
		if params.Name == "" {
			return fmt.Errorf("--name is required")
		}

		session, mediaQueue, docQueue := newAttachSession(sdk.Companies.Media, sdk.Companies.Documents, true)
		defer session.Close()

		// files stay local until the company record exists
		flags := attachFlagsFrom(cmd, "cover")
		if err := stageSelection(flags, mediaQueue, docQueue, 0, 0); err != nil {
			return err
		}

		var company *desksdk.Company
		err = session.CreateThenDrain(ctx, func(ctx context.Context) (string, error) {
			created, err := sdk.Companies.Create(ctx, params)
			if err != nil {
				return "", err
			}
			company = created
			return created.ID, nil
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s %s (%s)\n", green("created"), company.Name, company.ID)
		if failed := reportQueue(mediaQueue) + reportQueue(docQueue); failed > 0 {
			return fmt.Errorf("%d attachment(s) failed; retry with `carbondesk company update %s`", failed, company.ID)
		}
		return nil
	},
}

var companyUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a company and upload new attachments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id := args[0]

		sdk, err := newSDK()
		if err != nil {
			return err
		}
		defer sdk.Close()

		if cmd.Flags().Changed("name") || cmd.Flags().Changed("description") ||
			cmd.Flags().Changed("website") || cmd.Flags().Changed("sector") ||
			cmd.Flags().Changed("country") {
			if _, err := sdk.Companies.Update(ctx, id, companyParamsFrom(cmd)); err != nil {
				return err
			}
			fmt.Println(green("updated"), id)
		}

		flags := attachFlagsFrom(cmd, "cover")
		if flags.empty() {
			return nil
		}

		// quota counts what the server already holds
		persistedMedia, err := sdk.Companies.Media.List(ctx, id)
		if err != nil {
			return err
		}
		persistedDocs, err := sdk.Companies.Documents.List(ctx, id)
		if err != nil {
			return err
		}

		session, mediaQueue, docQueue := newAttachSession(sdk.Companies.Media, sdk.Companies.Documents, false)
		defer session.Close()
		session.Bind(id)

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

var companyShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a company's public detail view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sdk, err := newSDK()
		if err != nil {
			return err
		}
		defer sdk.Close()

		company, err := sdk.Companies.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n", cyan(company.Name), company.ID)
		if company.Sector != "" {
			fmt.Println("sector: ", company.Sector)
		}
		if company.Country != "" {
			fmt.Println("country:", company.Country)
		}
		if company.Website != "" {
			fmt.Println("website:", company.Website)
		}
		if company.Description != "" {
			fmt.Println(company.Description)
		}
		return nil
	},
}

var companyListCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse the company directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		sdk, err := newSDK()
		if err != nil {
			return err
		}
		defer sdk.Close()

		list, err := sdk.Companies.List(cmd.Context(), listParamsFrom(cmd))
		if err != nil {
			return err
		}

		for _, company := range list.Items {
			fmt.Printf("%-24s %-30s %s\n", company.ID, company.Name, company.Country)
		}
		fmt.Printf("page %d, %d total\n", list.Page, list.Total)
		return nil
	},
}

var companyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a company",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sdk, err := newSDK()
		if err != nil {
			return err
		}
		defer sdk.Close()

		if err := sdk.Companies.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println(green("deleted"), args[0])
		return nil
	},
}

var companyMediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Manage a company's persisted media",
}

func init() {
	registerCompanyFields(companyCreateCmd)
	registerAttachFlags(companyCreateCmd, "cover")
	registerCompanyFields(companyUpdateCmd)
	registerAttachFlags(companyUpdateCmd, "cover")
	registerListFlags(companyListCmd)

	companyMediaCmd.AddCommand(
		attachmentListCmd("media", func(sdk *desksdk.DeskSDK) *desksdk.AttachmentAPI { return sdk.Companies.Media }),
		attachmentRemoveCmd(func(sdk *desksdk.DeskSDK) *desksdk.AttachmentAPI { return sdk.Companies.Media }),
		attachmentCoverCmd("cover", func(sdk *desksdk.DeskSDK) *desksdk.AttachmentAPI { return sdk.Companies.Media }),
	)

	companyCmd.AddCommand(
		companyCreateCmd, companyUpdateCmd, companyShowCmd,
		companyListCmd, companyDeleteCmd, companyMediaCmd,
	)
	rootCmd.AddCommand(companyCmd)
}

func registerCompanyFields(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Company name")
	cmd.Flags().String("description", "", "Company description")
	cmd.Flags().String("website", "", "Company website")
	cmd.Flags().String("sector", "", "Industry sector")
	cmd.Flags().String("country", "", "Country code")
}

func companyParamsFrom(cmd *cobra.Command) *desksdk.CompanyParams {
	name, _ := cmd.Flags().GetString("name")
	description, _ := cmd.Flags().GetString("description")
	website, _ := cmd.Flags().GetString("website")
	sector, _ := cmd.Flags().GetString("sector")
	country, _ := cmd.Flags().GetString("country")
	return &desksdk.CompanyParams{
		Name:        name,
		Description: description,
		Website:     website,
		Sector:      sector,
		Country:     country,
	}
}
