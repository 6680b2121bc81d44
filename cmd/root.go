package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	getAvailableSlotsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	getAvailableSlotsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

// newRootCommand availability '<citas_json>'
// Флаги не разбираются: первый аргумент всегда JSON, результат или ошибка всегда печатаются как JSON.
// Путь к конфигу для расчета задается только через AVAILABILITY_CONFIG; флаг --config есть у подкоманд
func newRootCommand(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:                "availability '<citas_json>'",
		Short:              "Calcula los horarios libres de los próximos días hábiles",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd.Context(), out, configPath(""), args)
		},
	}

	root.AddCommand(
		newServeCommand(),
		newPostCommand(out),
		newHolidaysCommand(out),
	)
	return root
}

// runCompute выполняет расчет для CLI
// Ошибки конфигурации не прерывают расчет: используются значения по умолчанию
func runCompute(ctx context.Context, out io.Writer, path string, args []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = writeJSON(out, handlers.ErrorResponse{
				Error:  getAvailableSlotsHandler.MsgComputationFailed,
				Detail: fmt.Sprint(r),
			})
		}
	}()

	if len(args) < 1 {
		return writeJSON(out, handlers.ErrorResponse{Error: getAvailableSlotsHandler.MsgMissingArgument})
	}

	cfg, cfgErr := config.Load(path)
	if cfgErr != nil {
		cfg = config.Default()
	}
	cfg.Metrics.Enabled = false

	log, logErr := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if logErr != nil {
		log, _ = logger.New("", "info")
	}
	defer log.Close()

	if cfgErr != nil {
		log.Warn("Failed to load config %s, using defaults: %v", path, cfgErr)
	}

	app, err := newApplication(cfg, log)
	if err != nil {
		return writeJSON(out, handlers.ErrorResponse{
			Error:  getAvailableSlotsHandler.MsgComputationFailed,
			Detail: err.Error(),
		})
	}

	result, err := app.useCase.Execute(ctx, &getAvailableSlotsUC.Request{
		RequestID: uuid.NewString(),
		Payload:   []byte(args[0]),
	})
	if err != nil {
		_, response := getAvailableSlotsHandler.FromUseCaseError(err)
		return writeJSON(out, response)
	}

	return writeJSON(out, getAvailableSlotsHandler.FromUseCaseResponse(result))
}

func writeJSON(out io.Writer, v interface{}) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write result: %v\n", err)
		return err
	}
	return nil
}
