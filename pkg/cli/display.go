package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/breweryteam/releasehook/pkg/domain/model"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

var (
	sentColor    = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow, color.Bold)
	failedColor  = color.New(color.FgRed, color.Bold)
	detailsColor = color.New(color.FgHiBlack)
)

// PrintResult writes a one-line summary of a delivery
func PrintResult(w io.Writer, result *model.DeliveryResult) {
	switch result.Status {
	case model.DeliveryStatusSent:
		sentColor.Fprint(w, "✅ Announcement sent")
		detailsColor.Fprintf(w, " (%d %s, %s, %s)\n",
			result.Delivered, plural(result.Delivered, "segment", "segments"),
			humanize.Bytes(uint64(result.Bytes)),
			result.Duration.Round(time.Millisecond),
		)

	case model.DeliveryStatusPartial:
		warnColor.Fprintf(w, "⚠️  Announcement partially sent: %d/%d segments", result.Delivered, result.Total)
		printCause(w, result)

	case model.DeliveryStatusFailed:
		failedColor.Fprint(w, "❌ Announcement failed")
		printCause(w, result)

	case model.DeliveryStatusSkipped:
		warnColor.Fprintln(w, "⏭  Announcement skipped")
	}
}

func printCause(w io.Writer, result *model.DeliveryResult) {
	if result.StatusCode != 0 {
		detailsColor.Fprintf(w, " (HTTP %d)", result.StatusCode)
	}
	fmt.Fprintln(w)
	if result.Err != nil {
		detailsColor.Fprintf(w, "   %s\n", result.Err.Error())
	}
}

// PrintHistory writes ledger records, newest first
func PrintHistory(w io.Writer, records []*model.ReleaseRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No announcements recorded yet.")
		return
	}

	for _, r := range records {
		sentColor.Fprintf(w, "%s %s", r.Project, r.Version)
		detailsColor.Fprintf(w, "  %s  %d %s  %s (%s)\n",
			r.DeliveredAt.Local().Format("2006-01-02 15:04:05"),
			r.Segments, plural(r.Segments, "segment", "segments"),
			r.DeliveryID,
			humanize.Time(r.DeliveredAt),
		)
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
