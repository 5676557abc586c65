package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/risingsuncomputers/backoffice-backend-go/internal/domain/report"
	"github.com/risingsuncomputers/backoffice-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	SalaryReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

// SalaryReport implements ReportHandler.
//
// Month and year default to the current UTC month when omitted.
func (h *reportHandlerImpl) SalaryReport(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()
	req := report.SalaryReportRequest{
		Month: int(now.Month()),
		Year:  now.Year(),
	}

	q := r.URL.Query()
	if v := q.Get("month"); v != "" {
		month, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "month must be a number", nil)
			return
		}
		req.Month = month
	}
	if v := q.Get("year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			response.BadRequest(w, "year must be a number", nil)
			return
		}
		req.Year = year
	}

	result, err := h.reportService.BuildSalaryReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
