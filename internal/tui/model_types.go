package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/log"

	"github.com/scottbass3/keel/internal/actions"
	"github.com/scottbass3/keel/internal/api"
	"github.com/scottbass3/keel/internal/resource"
)

type confirmAction int

const (
	confirmActionNone confirmAction = iota
	confirmActionQuit
)

const (
	defaultTableHeight      = 10
	minTableHeight          = 1
	maxLogLines             = 25
	maxVisibleLogs          = 5
	maxFilterWidth          = 40
	tableChromeLines        = 2
	mainSectionTitleLines   = 1
	mainSectionBorderLines  = 2
	mainSectionHChromeChars = 4
	defaultRenderWidth      = 80
	noticeTTL               = 4 * time.Second
	defaultRequestTimeout   = 15 * time.Second
)

type Model struct {
	width  int
	height int

	status  string
	context string

	contextSelectionState
	contextFormState
	confirmState

	configPath string

	apiURL     string
	client     api.Client
	timeout    time.Duration
	requestLog api.RequestLogger
	logger     *log.Logger

	nodeID   string
	nodeName string

	current resource.Kind
	screens map[resource.Kind]screen

	filterActive bool
	filterInput  textinput.Model

	table        table.Model
	tableColumns []table.Column
	tableYOffset int

	spinner  spinner.Model
	spinning bool

	notice    actions.Notice
	noticeID  int
	hasNotice bool

	commandState
	helpActive bool
	contexts   []ContextOption

	debug  bool
	logCh  <-chan string
	logs   []string
	logMax int

	loadingCount int
}

// Options configures a new Model. Client may be nil when no backend is
// configured yet; the context picker is shown instead.
type Options struct {
	Client     api.Client
	APIURL     string
	Node       string
	Context    string
	Contexts   []ContextOption
	ConfigPath string
	Timeout    time.Duration
	RequestLog api.RequestLogger
	Logger     *log.Logger
	Debug      bool
	LogCh      <-chan string
	Screen     resource.Kind
}

type contextSelectionState struct {
	contextSelectionActive   bool
	contextSelectionRequired bool
	contextSelectionIndex    int
	contextSelectionError    string
}

type contextFormState struct {
	contextFormActive          bool
	contextFormMode            contextFormMode
	contextFormIndex           int
	contextFormReturnSelection bool
	contextFormError           string
	contextFormFocus           contextFormSlot
	contextFormInputs          [contextFormFieldCount]textinput.Model
}

type confirmState struct {
	confirmAction  confirmAction
	confirmTitle   string
	confirmMessage string
	confirmFocus   int
}

type commandState struct {
	commandActive           bool
	commandInput            textinput.Model
	commandMatches          []string
	commandIndex            int
	commandError            string
	commandPrevFilterActive bool
}

type collectionMsg struct {
	kind  resource.Kind
	node  string
	items any
	total int
	err   error
}

type actionDoneMsg struct {
	kind    resource.Kind
	outcome actions.Outcome
}

type closeDialogMsg struct {
	kind resource.Kind
}

type noticeExpiredMsg struct {
	id int
}

type nodeHeadMsg struct {
	node string
	head api.NodeHead
	err  error
}

type initClientMsg struct {
	client api.Client
	err    error
}

type helpEntry struct {
	Keys   string
	Action string
}

type commandHelp struct {
	Command string
	Usage   string
}

type logMsg string

type ContextOption struct {
	Name string
	API  string
	Node string
}
