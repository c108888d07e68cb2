package rest

import (
	"errors"
	"log/slog"
	"net/http"
)

// LogErrorRepository records server errors for later inspection.
type LogErrorRepository interface {
	LogError(message string) error
}

// LogControllerDecorator passes requests through and records any 500 the
// wrapped controller produces, both to the structured log and to the error
// log store. The response itself is never altered.
type LogControllerDecorator struct {
	controller Controller
	logger     *slog.Logger
	errorLog   LogErrorRepository
}

func NewLogControllerDecorator(c Controller, logger *slog.Logger, errorLog LogErrorRepository) *LogControllerDecorator {
	return &LogControllerDecorator{controller: c, logger: logger, errorLog: errorLog}
}

func (d *LogControllerDecorator) Handle(req Request) Response {
	res := d.controller.Handle(req)

	if res.StatusCode == http.StatusInternalServerError {
		if err, ok := res.Body.(error); ok {
			message := err.Error()
			var se *ServerError
			if errors.As(err, &se) && se.Cause != nil {
				message = se.Cause.Error()
			}

			d.logger.Error("request failed", "error", message)
			if d.errorLog != nil {
				if logErr := d.errorLog.LogError(message); logErr != nil {
					d.logger.Error("error log write failed", "error", logErr)
				}
			}
		}
	}

	return res
}
