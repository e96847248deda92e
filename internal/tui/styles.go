package tui

import (
	"github.com/charmbracelet/lipgloss"
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"
)

var (
	colorPrimary   = lipgloss.Color("62")
	colorMuted     = lipgloss.Color("241")
	colorAccent    = lipgloss.Color("204")
	colorSelected  = lipgloss.Color("229")
	colorBorder    = lipgloss.Color("238")
	colorTitleText = lipgloss.Color("252")
	colorSurface2  = lipgloss.Color("236")
	colorSuccess   = lipgloss.Color("42")
	colorDanger    = lipgloss.Color("196")
)

var (
	titleStyle         = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).MarginRight(2)
	statusStyle        = lipgloss.NewStyle().Foreground(colorTitleText)
	statusLoadingStyle = lipgloss.NewStyle().Foreground(colorAccent)
	metaLabelStyle     = lipgloss.NewStyle().Foreground(colorMuted).MarginRight(1)
	metaValueStyle     = lipgloss.NewStyle().Foreground(colorTitleText).MarginRight(3)
	modeInputStyle     = lipgloss.NewStyle().Foreground(colorAccent)
	shortcutHintStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	tabStyle           = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)
	tabActiveStyle     = lipgloss.NewStyle().Foreground(colorSelected).Background(colorPrimary).Bold(true).Padding(0, 1)
	noticeSuccessStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	noticeFailureStyle = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	emptyStyle         = lipgloss.NewStyle().Foreground(colorMuted).Italic(true)

	topSectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)
	mainSectionStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder).
				Padding(0, 1)
	mainSectionTitleStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	mainSectionTitleLine  = lipgloss.NewStyle()

	logTitleStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	logBoxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	helpHeadingStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	helpItemStyle    = lipgloss.NewStyle().Foreground(colorTitleText)
	helpFooterStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)

var (
	modalBackdropStyle = lipglossv2.NewStyle().Foreground(lipglossv2.Color("238"))
	modalPanelStyle    = lipglossv2.NewStyle().
				Border(lipglossv2.RoundedBorder()).
				BorderForeground(lipglossv2.Color("62")).
				Padding(1, 2)
	modalTitleStyle        = lipglossv2.NewStyle().Foreground(lipglossv2.Color("62")).Bold(true)
	modalLabelStyle        = lipglossv2.NewStyle().Foreground(lipglossv2.Color("252"))
	modalHelpStyle         = lipglossv2.NewStyle().Foreground(lipglossv2.Color("241"))
	modalDividerStyle      = lipglossv2.NewStyle().Foreground(lipglossv2.Color("238"))
	modalErrorStyle        = lipglossv2.NewStyle().Foreground(lipglossv2.Color("196"))
	modalBusyStyle         = lipglossv2.NewStyle().Foreground(lipglossv2.Color("204"))
	modalInputStyle        = lipglossv2.NewStyle().Foreground(lipglossv2.Color("252"))
	modalInputFocusStyle   = lipglossv2.NewStyle().Foreground(lipglossv2.Color("229")).Bold(true)
	modalButtonStyle       = lipglossv2.NewStyle().Foreground(lipglossv2.Color("252")).Background(lipglossv2.Color("236")).Padding(0, 2)
	modalButtonFocusStyle  = lipglossv2.NewStyle().Foreground(lipglossv2.Color("229")).Background(lipglossv2.Color("62")).Bold(true).Padding(0, 2)
	modalDangerButtonStyle = lipglossv2.NewStyle().Foreground(lipglossv2.Color("196")).Background(lipglossv2.Color("236")).Padding(0, 2)
	modalDangerFocusStyle  = lipglossv2.NewStyle().Foreground(lipglossv2.Color("229")).Background(lipglossv2.Color("196")).Bold(true).Padding(0, 2)
	modalOptionStyle       = lipglossv2.NewStyle().Foreground(lipglossv2.Color("252"))
	modalOptionFocusStyle  = lipglossv2.NewStyle().Foreground(lipglossv2.Color("229")).Bold(true)
	modalOptionMutedStyle  = lipglossv2.NewStyle().Foreground(lipglossv2.Color("241"))
	modalOptionErrorStyle  = lipglossv2.NewStyle().Foreground(lipglossv2.Color("196"))
)
