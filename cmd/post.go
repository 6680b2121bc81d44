package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/availabilityapi"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

func newPostCommand(out io.Writer) *cobra.Command {
	var (
		configFlag string
		url        string
	)

	cmd := &cobra.Command{
		Use:   "post '<citas_json>'",
		Short: "Envía el JSON de citas a un servicio de disponibilidad remoto",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return writeJSON(out, handlers.ErrorResponse{Error: getAvailableSlotsHandler.MsgMissingArgument})
			}

			cfg, err := config.Load(configPath(configFlag))
			if err != nil {
				cfg = config.Default()
			}
			if url != "" {
				cfg.Remote.URL = url
			}

			log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
			if err != nil {
				log = logger.NewNop()
			}
			defer log.Close()

			client := availabilityapi.NewClient(cfg.Remote.URL, time.Duration(cfg.Remote.Timeout)*time.Second, log)
			days, err := client.Compute(cmd.Context(), []byte(args[0]))
			if err != nil {
				log.Error("Remote computation failed: %v", err)
				return writeJSON(out, handlers.ErrorResponse{
					Error:  getAvailableSlotsHandler.MsgComputationFailed,
					Detail: fmt.Sprint(err),
				})
			}

			return writeJSON(out, days)
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "base URL of the availability service (overrides remote.url)")
	addConfigFlag(cmd, &configFlag)

	return cmd
}
