package cmd

import (
	"fmt"

	"simplequery/config"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var connectionsCmd = &cobra.Command{
	Use:   "connections",
	Short: "List the configured connections",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		conns := cfg.Connections()
		if len(conns) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "(no connections configured)")
			return nil
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"Name", "Driver", "Available"})
		table.SetAutoFormatHeaders(false)
		table.SetBorder(false)
		for _, c := range conns {
			driver, available := c.Driver, "no"
			if driver == "" {
				driver = "(none)"
			} else if driverRegistered(c.Driver) {
				available = "yes"
			}
			table.Append([]string{c.Name, driver, available})
		}
		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(connectionsCmd)
}
