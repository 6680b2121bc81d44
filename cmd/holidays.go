package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	getHolidaysHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_holidays"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	holidaysService "github.com/m04kA/SMC-AvailabilityService/internal/service/holidays"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

func newHolidaysCommand(out io.Writer) *cobra.Command {
	var (
		configFlag     string
		includeSundays bool
	)

	cmd := &cobra.Command{
		Use:   "holidays <año>",
		Short: "Lista los festivos del año (y opcionalmente los domingos)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid year %q: %w", args[0], err)
			}

			cfg, err := config.Load(configPath(configFlag))
			if err != nil {
				return err
			}

			app, err := newApplication(cfg, logger.NewNop())
			if err != nil {
				return err
			}

			result, err := app.holiday.List(cmd.Context(), &holidaysService.ListRequest{
				Year:           year,
				IncludeSundays: includeSundays,
			})
			if err != nil {
				return err
			}

			return writeJSON(out, getHolidaysHandler.FromServiceResponse(result))
		},
	}
	cmd.Flags().BoolVar(&includeSundays, "domingos", false, "include every Sunday of the year")
	addConfigFlag(cmd, &configFlag)

	return cmd
}
