// CLI-команда вывода версии и даты сборки
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCmd создаёт CLI-команду version.
//
// Версия и дата сборки передаются при сборке через ldflags.
func NewVersionCmd(buildVersion, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Версия и дата сборки",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "userdir %s (built %s)\n", buildVersion, buildDate)
		},
	}
}
