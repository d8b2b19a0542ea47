package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"fioparser/feature/parse"

	"github.com/spf13/cobra"
)

var (
	parseJSON       bool
	parseNoFallback bool
)

// parseCmd resolves names given on the command line.
var parseCmd = &cobra.Command{
	Use:   "parse <full name>...",
	Short: "Split full names into surname, given name and patronymic",
	Long: `Resolves each argument as a full name and prints the result.
Quote names that contain spaces.

Examples:
  parse "Иванов Иван Иванович"
  parse --json "Петрова Анна" "Сидоров"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Print results as JSON lines")
	parseCmd.Flags().BoolVar(&parseNoFallback, "no-fallback", false, "Do not assign the first token to the surname when nothing matched")
	RootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := bootstrap(ctx)
	if err != nil {
		return err
	}
	defer rt.logger.Sync()

	fallback := rt.cfg.Dictionary.FallbackSurname && !parseNoFallback
	svc := parse.NewService(rt.resolver, fallback, rt.logger)

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)

	for _, arg := range args {
		res, err := svc.Parse(ctx, arg)
		if err != nil {
			return fmt.Errorf("%q: %w", arg, err)
		}
		if parseJSON {
			if err := enc.Encode(res); err != nil {
				return err
			}
			continue
		}
		fmt.Printf("%s\n  surname:    %s\n  given:      %s\n  patronymic: %s\n",
			strings.TrimSpace(arg), res.LastName, res.FirstName, res.MiddleName)
	}
	return nil
}
