package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTemplatesCmd(a *app) *cobra.Command {
	var shellVersion shellVersionValue

	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage SCSS templates",
		Long: `List the SCSS templates for a shell version or dump them to the user
override directory, where edits take precedence over the installed copies.`,
	}
	addShellVersionFlag(cmd.PersistentFlags(), &shellVersion)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List templates and where each is loaded from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := a.newGenerator(cmd.Context(), shellVersion)
			if err != nil {
				return err
			}

			loader := g.Templates()
			names, err := loader.List()
			if err != nil {
				return err
			}

			table := NewTable([]string{"Template", "Source"})
			for _, name := range names {
				source := "installed"
				if loader.HasCustomTemplate(name) {
					source = "custom (" + loader.CustomPath(name) + ")"
				}
				table.AddRow([]string{name, source})
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, table.Render())
			if !a.quiet {
				fmt.Fprintf(out, "\nOverrides: %s\n", loader.CustomDir())
			}
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show <template>",
		Short: "Print the template that apply would use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.newGenerator(cmd.Context(), shellVersion)
			if err != nil {
				return err
			}

			content, fromCustom, err := g.Templates().Load(args[0])
			if err != nil {
				return err
			}
			a.logger.Debug("showing template", "name", args[0], "custom", fromCustom)

			_, err = cmd.OutOrStdout().Write(content)
			return err
		},
	}

	var force bool
	dumpCmd := &cobra.Command{
		Use:   "dump [template...]",
		Short: "Copy templates to the override directory for editing",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.newGenerator(cmd.Context(), shellVersion)
			if err != nil {
				return err
			}

			loader := g.Templates()
			if len(args) == 0 {
				written, err := loader.DumpAll(force)
				a.printDumped(cmd, written)
				return err
			}

			var written []string
			for _, name := range args {
				if err := loader.Dump(name, force); err != nil {
					a.printDumped(cmd, written)
					return err
				}
				written = append(written, loader.CustomPath(name))
			}
			a.printDumped(cmd, written)
			return nil
		},
	}
	dumpCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite existing custom templates")

	cmd.AddCommand(listCmd, showCmd, dumpCmd)
	return cmd
}

func (a *app) printDumped(cmd *cobra.Command, paths []string) {
	if a.quiet {
		return
	}
	out := cmd.OutOrStdout()
	for _, path := range paths {
		fmt.Fprintf(out, "✓ %s\n", path)
	}
}
