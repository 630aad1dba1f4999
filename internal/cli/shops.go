package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/igoratamanchuk/findamechanic/internal/domain"
	"github.com/igoratamanchuk/findamechanic/internal/service"
)

type listingView struct {
	domain.Shop
	domain.Tags
	Strength int `json:"strength"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "shops",
		Short: "List shops with their derived tags",
		Args:  cobra.NoArgs,
		RunE:  runShops,
	}

	cmd.Flags().String("service", "", "Only shops offering this service tag")
	cmd.Flags().String("specialty", "", "Only shops with this specialty tag")
	cmd.Flags().String("sort", "", `Ordering: "" for catalog order or "strength"`)

	RootCmd.AddCommand(cmd)
}

func runShops(cmd *cobra.Command, _ []string) error {
	svcTag, _ := cmd.Flags().GetString("service")
	specTag, _ := cmd.Flags().GetString("specialty")
	sort, _ := cmd.Flags().GetString("sort")
	if sort != "" && sort != "strength" {
		return fmt.Errorf(`--sort must be "strength", got %q`, sort)
	}

	a, err := openApp(cmd.Context())
	if err != nil {
		return fmt.Errorf("open app: %w", err)
	}
	defer a.Close()

	listings, err := a.Shops.List(cmd.Context(), service.ShopFilter{
		Service:        svcTag,
		Specialty:      specTag,
		SortByStrength: sort == "strength",
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if formatFlag == "json" {
		views := make([]listingView, len(listings))
		for i, l := range listings {
			views[i] = listingView{Shop: l.Shop, Tags: l.Tags, Strength: l.Strength}
		}
		return printJSON(out, views)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SLUG\tSTRENGTH\tSERVICE TAGS\tSPECIALTY TAGS")
	for _, l := range listings {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\n", l.Shop.Slug, l.Strength, joinTags(l.Tags.Service), joinTags(l.Tags.Specialty))
	}
	return tw.Flush()
}

func joinTags[T ~string](tags []T) string {
	if len(tags) == 0 {
		return "-"
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = string(t)
	}
	return strings.Join(parts, ",")
}
