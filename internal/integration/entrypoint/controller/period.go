// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dapur-ledger/backend/internal/domain/report"
)

// parsePeriodQuery reads the mode, year, and month query parameters used by
// every period-scoped endpoint. A missing mode means "all". Missing year and
// month default to the current date so "?mode=monthly" alone means this month.
func parsePeriodQuery(ctx *gin.Context) (report.PeriodMode, int, time.Month) {
	now := time.Now().UTC()

	mode := report.PeriodMode(ctx.Query("mode"))
	if mode == "" {
		mode = report.PeriodAll
	}

	year := now.Year()
	if raw := ctx.Query("year"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			year = parsed
		}
	}

	month := now.Month()
	if raw := ctx.Query("month"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 1 && parsed <= 12 {
			month = time.Month(parsed)
		}
	}

	return mode, year, month
}
