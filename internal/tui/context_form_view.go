package tui

import (
	"strings"

	lipglossv2 "github.com/charmbracelet/lipgloss/v2"
)

func (m Model) renderContextFormModal() string {
	title, subtitle, primary := "Add Context", "Enter the backend API and the node to manage.", "Add Context"
	if m.contextFormMode == contextFormModeEdit {
		title, subtitle, primary = "Edit Context", "Update context details.", "Save Context"
	}

	lines := []string{
		modalTitleStyle.Render(title),
		modalLabelStyle.Render(subtitle),
		modalDividerStyle.Render(strings.Repeat("─", 24)),
	}
	if m.contextFormError != "" {
		lines = append(lines, modalErrorStyle.Render(m.contextFormError))
	}
	lines = append(lines, "")
	for i, field := range contextFormFields {
		style := modalInputStyle
		if contextFormSlot(i) == m.contextFormFocus {
			style = modalInputFocusStyle
		}
		lines = append(lines,
			modalLabelStyle.Render(field.label),
			style.Render(m.contextFormInputs[i].View()),
		)
	}
	lines = append(lines,
		"",
		m.renderContextFormButtons(primary),
		"",
		modalHelpStyle.Render("tab/shift+tab move  enter select  esc cancel"),
	)
	return m.renderModalCard(strings.Join(lines, "\n"), 88)
}

func (m Model) renderContextFormButtons(primary string) string {
	button := func(label string, slot contextFormSlot) string {
		if m.contextFormFocus == slot {
			return modalButtonFocusStyle.Render(label)
		}
		return modalButtonStyle.Render(label)
	}
	return lipglossv2.JoinHorizontal(
		lipglossv2.Top,
		lipglossv2.NewStyle().MarginRight(2).Render(button("Cancel", contextFormFocusCancelButton)),
		button(primary, contextFormFocusSaveButton),
	)
}
