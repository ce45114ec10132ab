package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/flight-alert/flight-alert-service/internal/adapter/airportapi"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(10)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	bodyStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

// renderReport formats a probe result. Bodies longer than maxBody bytes are
// truncated unless maxBody is 0.
func renderReport(r *airportapi.ProbeResult, elapsed time.Duration, maxBody int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Airport API probe"))
	b.WriteString("\n")
	writeRow(&b, "URL", r.URL)
	writeRow(&b, "Status", statusText(r.StatusCode))
	writeRow(&b, "Elapsed", elapsed.Round(time.Millisecond).String())

	if r.DecodeErr != nil {
		writeRow(&b, "Shape", failStyle.Render(fmt.Sprintf("%s (%v)", r.Shape, r.DecodeErr)))
	} else {
		writeRow(&b, "Shape", okStyle.Render(r.Shape.String()))
	}
	writeRow(&b, "Airports", fmt.Sprintf("%d", r.Airports))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Headers"))
	b.WriteString("\n")
	keys := make([]string, 0, len(r.Header))
	for k := range r.Header {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "  %s: %s\n", k, strings.Join(r.Header[k], ", "))
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(fmt.Sprintf("Body (%d bytes)", len(r.Body))))
	b.WriteString("\n")
	b.WriteString(bodyStyle.Render(formatBody(r.Body, maxBody)))

	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString(value)
	b.WriteString("\n")
}

func statusText(code int) string {
	text := fmt.Sprintf("%d", code)
	if code >= 200 && code < 300 {
		return okStyle.Render(text)
	}
	return failStyle.Render(text)
}

// formatBody indents JSON bodies and truncates the output to maxBody bytes.
func formatBody(body []byte, maxBody int) string {
	if len(body) == 0 {
		return "(empty)"
	}

	out := body
	var indented bytes.Buffer
	if json.Indent(&indented, body, "", "  ") == nil {
		out = indented.Bytes()
	}

	if maxBody > 0 && len(out) > maxBody {
		return string(out[:maxBody]) + fmt.Sprintf("\n... (%d more bytes)", len(out)-maxBody)
	}
	return string(out)
}
