package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/igoratamanchuk/findamechanic/internal/domain"
	"github.com/igoratamanchuk/findamechanic/internal/site"
)

type detailView struct {
	listingView
	Page    site.Page `json:"page"`
	MapsURL string    `json:"mapsUrl"`
	TelLink string    `json:"telLink,omitempty"`
}

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "show <slug>",
		Short: "Show one shop with its page metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	})
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context())
	if err != nil {
		return fmt.Errorf("open app: %w", err)
	}
	defer a.Close()

	d, err := a.Shops.GetBySlug(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if formatFlag == "json" {
		return printJSON(out, detailView{
			listingView: listingView{Shop: d.Shop, Tags: d.Tags, Strength: d.Strength},
			Page:        d.Page,
			MapsURL:     d.MapsURL,
			TelLink:     d.TelLink,
		})
	}

	fmt.Fprintf(out, "%s\n", d.Page.Title)
	fmt.Fprintf(out, "  address:     %s\n", d.Shop.Address)
	if domain.Present(d.Shop.Phone) {
		fmt.Fprintf(out, "  phone:       %s (%s)\n", *d.Shop.Phone, d.TelLink)
	}
	if domain.Present(d.Shop.Website) {
		fmt.Fprintf(out, "  website:     %s\n", *d.Shop.Website)
	}
	fmt.Fprintf(out, "  services:    %s\n", joinTags(d.Tags.Service))
	fmt.Fprintf(out, "  specialties: %s\n", joinTags(d.Tags.Specialty))
	fmt.Fprintf(out, "  strength:    %d\n", d.Strength)
	fmt.Fprintf(out, "  canonical:   %s\n", d.Page.Canonical)
	fmt.Fprintf(out, "  directions:  %s\n", d.MapsURL)
	return nil
}
