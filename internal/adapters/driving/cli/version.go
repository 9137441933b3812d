package cli

import (
	"github.com/spf13/cobra"
)

var versionShort bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		if versionShort {
			cmd.Println(version)
			return
		}
		cmd.Printf("canopy version %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "print the bare version number")
	rootCmd.AddCommand(versionCmd)
}
