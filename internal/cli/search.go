package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/igoratamanchuk/findamechanic/internal/domain"
)

type rankedView struct {
	domain.Shop
	MatchScore int `json:"matchScore"`
}

type searchView struct {
	Parsed  domain.IssueParse `json:"parsed"`
	Results []rankedView      `json:"results"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "search <issue text...>",
		Short: "Classify an issue with the configured AI provider and rank shops",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSearch,
	}

	cmd.Flags().String("make", "", "Vehicle make")
	cmd.Flags().String("model", "", "Vehicle model")
	cmd.Flags().String("year", "", "Vehicle year")

	RootCmd.AddCommand(cmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	mk, _ := cmd.Flags().GetString("make")
	model, _ := cmd.Flags().GetString("model")
	year, _ := cmd.Flags().GetString("year")

	a, err := openApp(cmd.Context())
	if err != nil {
		return fmt.Errorf("open app: %w", err)
	}
	defer a.Close()

	res, err := a.Search.Search(cmd.Context(), domain.Issue{
		Text:  strings.Join(args, " "),
		Make:  mk,
		Model: model,
		Year:  year,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if formatFlag == "json" {
		view := searchView{Parsed: res.Parsed, Results: make([]rankedView, len(res.Results))}
		for i, r := range res.Results {
			view.Results[i] = rankedView{Shop: r.Shop, MatchScore: r.MatchScore}
		}
		return printJSON(out, view)
	}

	fmt.Fprintf(out, "urgency: %s  drivable: %t\n", res.Parsed.Urgency, res.Parsed.Drivable)
	fmt.Fprintf(out, "summary: %s\n", res.Parsed.Summary)
	fmt.Fprintf(out, "tags:    %s / %s\n", joinTags(res.Parsed.ServiceTags), joinTags(res.Parsed.SpecialtyTags))
	for i, r := range res.Results {
		fmt.Fprintf(out, "%d. %s (score %d)\n", i+1, r.Shop.Name, r.MatchScore)
	}
	return nil
}
