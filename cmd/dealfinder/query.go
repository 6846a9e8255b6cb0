package main

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"dealfinder/internal/services"
	"dealfinder/internal/validate"
)

var (
	suggestQuery  string
	suggestType   string
	suggestBudget string
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Print suggestions for a query as JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cat := mustLoad()
		budget, _ := validate.Budget(suggestBudget)
		results := services.NewSuggestionService(cat).Suggest(services.SuggestQuery{
			Text:     validate.Query(suggestQuery),
			Category: suggestType,
			Budget:   budget,
		})
		return printJSON(cmd.OutOrStdout(), results)
	},
}

var errCompareNotFound = errors.New("one or both products not found")

var compareCmd = &cobra.Command{
	Use:          "compare <device1> <device2>",
	Short:        "Compare two products by name or brand",
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, cat := mustLoad()
		res, err := services.NewComparisonService(cat).Compare(args[0], args[1])
		if errors.Is(err, services.ErrNotFound) {
			return errCompareNotFound
		}
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), res)
	},
}

func init() {
	suggestCmd.Flags().StringVar(&suggestQuery, "query", "", "free-text product, brand or model")
	suggestCmd.Flags().StringVar(&suggestType, "type", "", "category filter")
	suggestCmd.Flags().StringVar(&suggestBudget, "budget", "", "max price")
	rootCmd.AddCommand(suggestCmd, compareCmd)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
