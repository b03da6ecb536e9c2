package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hoist/internal/app"
)

func (c *CLI) newPublishCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Publish every package of the ordering plan",
		Long: "Publish the packages group by group. Internal workspace references are pinned to\n" +
			"the release version while a package is published and restored afterwards.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Publish(cmd.Context(), app.PublishOptions{
				Options:    c.options(),
				DryRun:     c.v.GetBool(keyDryRun),
				Version:    c.v.GetString(keyVersion),
				IndexDelay: c.v.GetString(keyDelay),
			})
		},
	}
	cmd.Flags().BoolP(keyDryRun, "n", false, "Validate every package without uploading")
	cmd.Flags().String("delay", "", "Pause between groups for registry indexing (default from config, 60s)")
	cmd.Flags().String(keyVersion, "", "Version pinned into rewritten dependencies")

	_ = c.v.BindPFlag(keyDryRun, cmd.Flags().Lookup(keyDryRun))
	_ = c.v.BindPFlag(keyDelay, cmd.Flags().Lookup("delay"))
	_ = c.v.BindPFlag(keyVersion, cmd.Flags().Lookup(keyVersion))
	return cmd
}
