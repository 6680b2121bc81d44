package get_holidays

import (
	"context"

	holidaysService "github.com/m04kA/SMC-AvailabilityService/internal/service/holidays"
)

type HolidaysService interface {
	List(ctx context.Context, req *holidaysService.ListRequest) (*holidaysService.ListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
