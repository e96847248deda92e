package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scottbass3/keel/internal/actions"
	"github.com/scottbass3/keel/internal/api"
	"github.com/scottbass3/keel/internal/resource"
)

func listenLogs(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return logMsg(msg)
	}
}

func initClientCmd(apiURL string, timeout time.Duration, logger api.RequestLogger) tea.Cmd {
	return func() tea.Msg {
		client, err := api.NewClientWithTimeout(apiURL, timeout, logger)
		return initClientMsg{client: client, err: err}
	}
}

func loadNodeHeadCmd(client api.Client, node string, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		head, err := client.NodeHead(ctx, node)
		return nodeHeadMsg{node: node, head: head, err: err}
	}
}

func closeDialogCmd(kind resource.Kind, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return closeDialogMsg{kind: kind}
	})
}

func expireNoticeCmd(id int) tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id}
	})
}

func (m *Model) appendLog(entry string) {
	if entry == "" {
		return
	}
	m.logs = append(m.logs, entry)
	if m.logMax > 0 && len(m.logs) > m.logMax {
		m.logs = m.logs[len(m.logs)-m.logMax:]
	}
}

// showNotice replaces the toast and schedules its expiry.
func (m *Model) showNotice(notice actions.Notice) tea.Cmd {
	m.noticeID++
	m.notice = notice
	m.hasNotice = true
	return expireNoticeCmd(m.noticeID)
}

func (m Model) dispatcher() *actions.Dispatcher {
	return actions.New(m.client, m.nodeID, actions.WithLogger(m.logger))
}
