package tui

import (
	"cmp"
	"strings"

	lipglossv2 "github.com/charmbracelet/lipgloss/v2"

	"github.com/scottbass3/keel/internal/listview"
)

func (m Model) renderConfirmModal() string {
	confirmLabel := "Confirm"
	if m.confirmAction == confirmActionQuit {
		confirmLabel = "Quit"
	}
	lines := []string{modalTitleStyle.Render(cmp.Or(strings.TrimSpace(m.confirmTitle), "Confirm action"))}
	if message := strings.TrimSpace(m.confirmMessage); message != "" {
		lines = append(lines, modalLabelStyle.Render(message))
	}
	lines = append(lines,
		"",
		m.renderDialogButtons(confirmLabel),
		"",
		modalHelpStyle.Render("tab/left/right move  enter choose  y/n quick select"),
	)
	return m.renderModalCard(strings.Join(lines, "\n"), 64)
}

// renderActionModal draws the delete or prune dialog of the active screen.
func (m Model) renderActionModal() string {
	s := m.activeScreen()
	title, message := s.dialog()
	lines := []string{
		modalTitleStyle.Render(title),
		modalLabelStyle.Render(message),
		"",
	}
	switch phase := s.phase(); phase {
	case listview.PhaseDeleting, listview.PhasePruning:
		lines = append(lines, modalBusyStyle.Render(m.spinner.View()+" "+busyLabel(phase)))
	case listview.PhaseClosing:
		lines = append(lines, modalHelpStyle.Render("Done."))
	default:
		lines = append(lines,
			m.renderDialogButtons("Delete"),
			"",
			modalHelpStyle.Render("tab/left/right move  enter choose  y confirm  esc cancel"),
		)
	}
	return m.renderModalCard(strings.Join(lines, "\n"), 64)
}

func busyLabel(phase listview.Phase) string {
	if phase == listview.PhasePruning {
		return "Deleting unused..."
	}
	return "Deleting..."
}

// renderDialogButtons renders Cancel and a destructive confirm button.
func (m Model) renderDialogButtons(confirmLabel string) string {
	cancel := modalButtonStyle.Render("Cancel")
	if m.confirmFocus == 0 {
		cancel = modalButtonFocusStyle.Render("Cancel")
	}
	confirm := modalDangerButtonStyle.Render(confirmLabel)
	if m.confirmFocus == 1 {
		confirm = modalDangerFocusStyle.Render(confirmLabel)
	}
	return lipglossv2.JoinHorizontal(
		lipglossv2.Top,
		lipglossv2.NewStyle().MarginRight(2).Render(cancel),
		confirm,
	)
}

func (m Model) renderModal(base, modal string) string {
	width, height := m.modalViewport(base)
	background := lipglossv2.Place(width, height, lipglossv2.Left, lipglossv2.Top, modalBackdropStyle.Render(base))
	canvas := lipglossv2.NewCanvas(lipglossv2.NewLayer(background))
	canvas.AddLayers(
		lipglossv2.NewLayer(modal).
			X(max(0, (width-lipglossv2.Width(modal))/2)).
			Y(max(0, (height-lipglossv2.Height(modal))/2)).
			Z(1),
	)
	return canvas.Render()
}

func (m Model) renderModalCard(content string, maxWidth int) string {
	return modalPanelStyle.Width(m.modalWidth(maxWidth)).Render(content)
}

// modalWidth keeps a margin around the card, dropping most of it on narrow
// terminals, and never goes below twelve cells.
func (m Model) modalWidth(maxWidth int) int {
	width, _ := m.modalViewport("")
	if width <= 2 {
		return width
	}
	card := width - 8
	if card < 24 {
		card = width - 2
	}
	if maxWidth > 0 {
		card = min(card, maxWidth)
	}
	return max(card, 12)
}

func (m Model) modalViewport(base string) (width, height int) {
	width, height = m.width, m.height
	if width <= 0 {
		width = defaultRenderWidth
	}
	if height <= 0 {
		height = max(24, lineCount(base))
	}
	return width, height
}

func (m Model) isContextSelectionActive() bool {
	return m.contextSelectionActive
}

func (m Model) isContextFormActive() bool {
	return m.contextFormActive
}

func (m Model) isConfirmModalActive() bool {
	return m.confirmAction != confirmActionNone
}
