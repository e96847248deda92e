package tui

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// requestStatus picks the status out of a formatted request line
// ("GET /nodes/1/images -> 404 | ...").
var requestStatus = regexp.MustCompile(` -> (\d{3})\b`)

// renderLogs draws the debug panel: the newest requests, failed ones
// highlighted, padded to a fixed height so the table does not jump.
func (m Model) renderLogs() string {
	panelWidth := sectionPanelWidth(m.width)
	contentWidth := max(10, panelWidth-6)

	lines := make([]string, 0, maxVisibleLogs+1)
	lines = append(lines, logTitleStyle.Render(fmt.Sprintf("Requests (%d)", len(m.logs))))
	tail := m.logs[max(0, len(m.logs)-maxVisibleLogs):]
	if len(tail) == 0 {
		lines = append(lines, emptyStyle.Render("(no requests yet)"))
	}
	for _, entry := range tail {
		line := truncateLogLine(entry, contentWidth)
		if failedRequest(entry) {
			line = noticeFailureStyle.Render(line)
		}
		lines = append(lines, line)
	}
	for len(lines) < maxVisibleLogs+1 {
		lines = append(lines, "")
	}
	return logBoxStyle.Width(panelWidth).Render(strings.Join(lines, "\n"))
}

func failedRequest(entry string) bool {
	match := requestStatus.FindStringSubmatch(entry)
	if match == nil {
		return false
	}
	status, err := strconv.Atoi(match[1])
	return err == nil && status >= 400
}
