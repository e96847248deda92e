package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/scottbass3/keel/internal/resource"
)

func NewModel(opts Options) Model {
	status := "Backend not configured"
	if opts.APIURL != "" {
		status = fmt.Sprintf("Backend: %s", opts.APIURL)
	}

	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "search"
	filter.CharLimit = 64
	filter.Blur()

	tbl := table.New()
	tbl.SetStyles(tableStyles())
	tbl.SetHeight(defaultTableHeight)
	tbl.Focus()

	commandInput := textinput.New()
	commandInput.Prompt = ":"
	commandInput.Placeholder = "images | node <id> | context <name>"
	commandInput.CharLimit = 64
	commandInput.Blur()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = statusLoadingStyle

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	m := Model{
		status:                status,
		context:               opts.Context,
		configPath:            opts.ConfigPath,
		apiURL:                opts.APIURL,
		client:                opts.Client,
		timeout:               timeout,
		requestLog:            opts.RequestLog,
		logger:                logger,
		nodeID:                strings.TrimSpace(opts.Node),
		current:               opts.Screen,
		screens:               newScreens(),
		filterInput:           filter,
		table:                 tbl,
		spinner:               spin,
		commandState:          commandState{commandInput: commandInput},
		contexts:              opts.Contexts,
		debug:                 opts.Debug,
		logCh:                 opts.LogCh,
		logMax:                maxLogLines,
		contextSelectionState: contextSelectionState{contextSelectionIndex: -1},
		contextFormState: contextFormState{
			contextFormIndex:  -1,
			contextFormInputs: newContextInputs(),
		},
	}
	if _, ok := m.screens[m.current]; !ok {
		m.current = resource.KindImages
	}
	if current := m.currentContextIndex(); current >= 0 {
		m.contextSelectionIndex = current
	}
	if m.client == nil && m.apiURL == "" {
		m.contextSelectionActive = true
		m.contextSelectionRequired = len(m.contexts) > 0
	}
	if m.canLoad(m.current) {
		m.status = loadingStatus(m.current)
		m.startLoading()
		m.spinning = true
	}
	m.syncSearchInput()
	m.syncTable()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := m.initialLoadCmds()
	if m.spinning {
		cmds = append(cmds, m.spinner.Tick)
	}
	if m.logCh != nil {
		cmds = append(cmds, listenLogs(m.logCh))
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKeyMsg(msg)
	case tea.MouseMsg:
		return m.updateMouseMsg(msg)
	case tea.WindowSizeMsg:
		return m.updateWindowSizeMsg(msg)
	case spinner.TickMsg:
		return m.updateSpinnerMsg(msg)
	case collectionMsg:
		return m.updateCollectionMsg(msg)
	case actionDoneMsg:
		return m.updateActionDoneMsg(msg)
	case closeDialogMsg:
		return m.updateCloseDialogMsg(msg)
	case noticeExpiredMsg:
		return m.updateNoticeExpiredMsg(msg)
	case nodeHeadMsg:
		return m.updateNodeHeadMsg(msg)
	case initClientMsg:
		return m.updateInitClientMsg(msg)
	case logMsg:
		return m.updateLogMsg(msg)
	}
	return m, nil
}

func (m Model) View() string {
	base := m.renderApp()
	switch {
	case m.isConfirmModalActive():
		return m.renderModal(base, m.renderConfirmModal())
	case m.isActionDialogActive():
		return m.renderModal(base, m.renderActionModal())
	case m.isContextFormActive():
		return m.renderModal(base, m.renderContextFormModal())
	case m.isContextSelectionActive():
		return m.renderModal(base, m.renderContextSelectionModal())
	default:
		return base
	}
}

func (m Model) activeScreen() screen {
	return m.screens[m.current]
}
