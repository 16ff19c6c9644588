package srv

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sgolla/polar/internal/climate"
	"github.com/sgolla/polar/internal/sparkline"
)

const sparklineHeight = 4

// handleText is the curl-friendly dashboard.
func (s *Server) handleText(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	var sb strings.Builder
	sb.WriteString(s.title())

	latest, ok := s.hist.Latest()
	if !ok {
		sb.WriteString("no readings yet\n")
		_, _ = w.Write([]byte(sb.String()))
		return
	}

	readings := s.hist.Snapshot()
	temps := make([]float64, len(readings))
	humis := make([]float64, len(readings))
	for i, r := range readings {
		temps[i] = r.Temperature
		humis[i] = r.Humidity
	}

	fmt.Fprintf(&sb, "Temp %0.2f °C\nHumi %0.2f %%\nLast update: %s\n",
		latest.Temperature, latest.Humidity, latest.Timestamp.Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&sb, "\nTemperature\n%s\n", sparkline.Render(sparklineHeight, temps))
	fmt.Fprintf(&sb, "\nHumidity\n%s\n", sparkline.Render(sparklineHeight, humis))
	fmt.Fprintf(&sb, "\n%s", renderReadingsTable(readings))

	_, _ = w.Write([]byte(sb.String()))
}

func (s *Server) title() string {
	return fmt.Sprintf("Simulator: 🟢 Live %s\n", s.formatUptime())
}

func (s *Server) formatUptime() string {
	mins := int(time.Since(s.startTime).Minutes())
	days, hours, m := mins/(24*60), (mins/60)%24, mins%60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%dd", days))
	}
	if days > 0 || hours > 0 {
		parts = append(parts, fmt.Sprintf("%dh", hours))
	}
	parts = append(parts, fmt.Sprintf("%dm", m))

	return fmt.Sprintf("(uptime: %s)", strings.Join(parts, " "))
}

func renderReadingsTable(readings []climate.Reading) string {
	if len(readings) == 0 {
		return ""
	}

	var builder strings.Builder
	builder.WriteString("+-----------------+----------------+----------------+\n")
	builder.WriteString("|  Time           |       T        |        H       |\n")
	builder.WriteString("+-----------------+----------------+----------------+\n")

	up, down, same := "^", "v", "~"
	prevT := readings[0].Temperature
	for _, r := range readings {
		var progMark string
		switch {
		case r.Temperature > prevT:
			progMark = up
		case r.Temperature < prevT:
			progMark = down
		default:
			progMark = same
		}

		builder.WriteString(fmt.Sprintf("| %-15s | %7s%7.2f | %14.2f |\n",
			r.Timestamp.Format("15:04:05"), progMark, r.Temperature, r.Humidity))
		prevT = r.Temperature
	}

	builder.WriteString("+-----------------+----------------+----------------+\n")

	return builder.String()
}
