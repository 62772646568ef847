package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"moped-route-service/internal/api/dto"
	"moped-route-service/internal/domain"
	"moped-route-service/internal/platform/locale"
	"moped-route-service/internal/report"
	"moped-route-service/internal/services"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

const appVersion = "0.1.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		vehiclesStr string
		travelStr   string
		lang        string
		asJSON      bool
		noColor     bool
	)

	cmd := &cobra.Command{
		Use:   "routecalc",
		Short: "Task time calculator for a moped route",
		Long: `Calculates how long the Swapper, Fixer and Mechanic each spend on a route.

Mopeds are comma separated task strings (S = swap 1 min, F = fix 5 min,
M = mechanic repair 8 min). Travel times are the minutes between consecutive
mopeds, so there is always one fewer travel time than mopeds.`,
		Example:       "  routecalc --mopeds S,F,SF,FF --travel 2,4,3",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}

			tag := locale.Match(lang, envLanguage())
			p := locale.Printer(tag)

			route, err := domain.ParseRoute(vehiclesStr, travelStr)
			if err != nil {
				return errors.New(locale.DescribeError(p, err))
			}

			result := services.CalculateRoute(route)

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(dto.NewCalculationResponse(uuid.NewString(), tag.String(), result, p))
			}
			return report.Print(out, result, p)
		},
	}

	cmd.Version = appVersion
	cmd.SetVersionTemplate("routecalc v{{.Version}}\n")

	cmd.Flags().StringVarP(&vehiclesStr, "mopeds", "m", "", "Mopeds as comma separated task strings (e.g. S,F,SF,FF)")
	cmd.Flags().StringVarP(&travelStr, "travel", "t", "", "Travel minutes between mopeds (e.g. 2,4,3)")
	cmd.Flags().StringVar(&lang, "lang", "", "Output language (en, nl); defaults to $LANG")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the result as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable coloured output")
	_ = cmd.MarkFlagRequired("mopeds")

	return cmd
}

// envLanguage turns a POSIX locale such as "nl_NL.UTF-8" into a BCP 47 tag.
func envLanguage() string {
	v := os.Getenv("LANG")
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	return strings.ReplaceAll(v, "_", "-")
}
