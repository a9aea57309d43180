package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"pkt.systems/wsnav/internal/version"
)

func newVersionCmd() *cobra.Command {
	var details bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.Read()
			out := cmd.OutOrStdout()
			if _, err := fmt.Fprintf(out, "%s %s\n", info.Module, info.Version); err != nil {
				return err
			}
			if !details {
				return nil
			}
			for _, line := range [][2]string{
				{"go", info.GoVersion},
				{"revision", info.Revision},
				{"built", info.Time},
			} {
				if line[1] == "" {
					continue
				}
				if _, err := fmt.Fprintf(out, "%-9s%s\n", line[0], line[1]); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&details, "details", false, "include go version and vcs details")
	return cmd
}
