package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/igoratamanchuk/findamechanic/internal/domain"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "tags",
		Short: "Print the service and specialty tag vocabularies",
		Args:  cobra.NoArgs,
		RunE:  runTags,
	})
}

func runTags(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if formatFlag == "json" {
		return printJSON(out, domain.Tags{Service: domain.ServiceTags(), Specialty: domain.SpecialtyTags()})
	}
	fmt.Fprintf(out, "service:   %s\n", joinTags(domain.ServiceTags()))
	fmt.Fprintf(out, "specialty: %s\n", joinTags(domain.SpecialtyTags()))
	return nil
}
