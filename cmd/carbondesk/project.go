package main

import (
	"context"
	"fmt"

	"github.com/opencarbon/carbondesk/internal/desksdk"
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage carbon-offset project listings",
}

var projectCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a project, then upload its attachments",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		sdk, err := newSDK()
		if err != nil {
			return err
		}
		defer sdk.Close()

		params := projectParamsFrom(cmd)
		if params.Name == "" {
			return fmt.Errorf("--name is required")
		}

		session, mediaQueue, docQueue := newAttachSession(sdk.Projects.Media, sdk.Projects.Documents, true)
		defer session.Close()

		flags := attachFlagsFrom(cmd, "cover")
		if err := stageSelection(flags, mediaQueue, docQueue, 0, 0); err != nil {
			return err
		}

		var project *desksdk.Project
		err = session.CreateThenDrain(ctx, func(ctx context.Context) (string, error) {
			created, err := sdk.Projects.Create(ctx, params)
			if err != nil {
				return "", err
			}
			project = created
			return created.ID, nil
		})
		if err != nil {
			return err
		}

		fmt.Printf("%s %s (%s)\n", green("created"), project.Name, project.ID)
		if failed := reportQueue(mediaQueue) + reportQueue(docQueue); failed > 0 {
			return fmt.Errorf("%d attachment(s) failed; retry with `carbondesk project update %s`", failed, project.ID)
		}
		return nil
	},
}

var projectUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a project and upload new attachments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		id := args[0]

		sdk, err := newSDK()
		if err != nil {
			return err
		}
		defer sdk.Close()

		if cmd.Flags().Changed("name") || cmd.Flags().Changed("summary") ||
			cmd.Flags().Changed("standard") || cmd.Flags().Changed("country") ||
			cmd.Flags().Changed("status") {
			if _, err := sdk.Projects.Update(ctx, id, projectParamsFrom(cmd)); err != nil {
				return err
			}
			fmt.Println(green("updated"), id)
		}

		flags := attachFlagsFrom(cmd, "cover")
		if flags.empty() {
			return nil
		}

		persistedMedia, err := sdk.Projects.Media.List(ctx, id)
		if err != nil {
			return err
		}
		persistedDocs, err := sdk.Projects.Documents.List(ctx, id)
		if err != nil {
			return err
		}

		session, mediaQueue, docQueue := newAttachSession(sdk.Projects.Media, sdk.Projects.Documents, false)
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

var projectShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a project's public detail view",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sdk, err := newSDK()
		if err != nil {
			return err
		}
		defer sdk.Close()

		project, err := sdk.Projects.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s)\n", cyan(project.Name), project.ID)
		if project.Standard != "" {
			fmt.Println("standard:", project.Standard)
		}
		if project.Country != "" {
			fmt.Println("country: ", project.Country)
		}
		if project.Status != "" {
			fmt.Println("status:  ", project.Status)
		}
		if project.Summary != "" {
			fmt.Println(project.Summary)
		}
		return nil
	},
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse the project directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		sdk, err := newSDK()
		if err != nil {
			return err
		}
		defer sdk.Close()

		list, err := sdk.Projects.List(cmd.Context(), listParamsFrom(cmd))
		if err != nil {
			return err
		}

		for _, project := range list.Items {
			fmt.Printf("%-24s %-30s %-16s %s\n", project.ID, project.Name, project.Standard, project.Country)
		}
		fmt.Printf("page %d, %d total\n", list.Page, list.Total)
		return nil
	},
}

var projectDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sdk, err := newSDK()
		if err != nil {
			return err
		}
		defer sdk.Close()

		if err := sdk.Projects.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println(green("deleted"), args[0])
		return nil
	},
}

var projectMediaCmd = &cobra.Command{
	Use:   "media",
	Short: "Manage a project's persisted media",
}

func init() {
	registerProjectFields(projectCreateCmd)
	registerAttachFlags(projectCreateCmd, "cover")
	registerProjectFields(projectUpdateCmd)
	registerAttachFlags(projectUpdateCmd, "cover")
	registerListFlags(projectListCmd)

	projectMediaCmd.AddCommand(
		attachmentListCmd("media", func(sdk *desksdk.DeskSDK) *desksdk.AttachmentAPI { return sdk.Projects.Media }),
		attachmentRemoveCmd(func(sdk *desksdk.DeskSDK) *desksdk.AttachmentAPI { return sdk.Projects.Media }),
		attachmentCoverCmd("cover", func(sdk *desksdk.DeskSDK) *desksdk.AttachmentAPI { return sdk.Projects.Media }),
	)

	projectCmd.AddCommand(
		projectCreateCmd, projectUpdateCmd, projectShowCmd,
		projectListCmd, projectDeleteCmd, projectMediaCmd,
	)
	rootCmd.AddCommand(projectCmd)
}

func registerProjectFields(cmd *cobra.Command) {
	cmd.Flags().String("name", "", "Project name")
	cmd.Flags().String("summary", "", "Project summary")
	cmd.Flags().String("standard", "", "Certification standard")
	cmd.Flags().String("country", "", "Country code")
	cmd.Flags().String("status", "", "Project status")
	cmd.Flags().String("company", "", "Owning company id")
}

func projectParamsFrom(cmd *cobra.Command) *desksdk.ProjectParams {
	name, _ := cmd.Flags().GetString("name")
	summary, _ := cmd.Flags().GetString("summary")
	standard, _ := cmd.Flags().GetString("standard")
	country, _ := cmd.Flags().GetString("country")
	status, _ := cmd.Flags().GetString("status")
	company, _ := cmd.Flags().GetString("company")
	return &desksdk.ProjectParams{
		CompanyID: company,
		Name:      name,
		Summary:   summary,
		Standard:  standard,
		Country:   country,
		Status:    status,
	}
}
