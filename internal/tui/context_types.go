package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/scottbass3/keel/internal/contextstore"
)

type contextFormMode int

const (
	contextFormModeAdd contextFormMode = iota
	contextFormModeEdit
)

// contextFormSlot walks the form top to bottom: the text fields first, then
// the two buttons. Field slots double as indexes into contextFormInputs.
type contextFormSlot int

const (
	contextFormFocusName contextFormSlot = iota
	contextFormFocusAPI
	contextFormFocusNode
	contextFormFocusCancelButton
	contextFormFocusSaveButton
	contextFormFocusCount
)

const contextFormFieldCount = int(contextFormFocusCancelButton)

type contextField struct {
	label       string
	placeholder string
	limit       int
}

var contextFormFields = [contextFormFieldCount]contextField{
	{label: "Name", placeholder: "production", limit: 64},
	{label: "API", placeholder: "https://backend.example.com/api", limit: 256},
	{label: "Node", placeholder: "1", limit: 32},
}

func (s contextFormSlot) isField() bool {
	return s >= 0 && int(s) < contextFormFieldCount
}

func (s contextFormSlot) next(step int) contextFormSlot {
	count := int(contextFormFocusCount)
	return contextFormSlot(((int(s)+step)%count + count) % count)
}

func newContextInputs() [contextFormFieldCount]textinput.Model {
	var inputs [contextFormFieldCount]textinput.Model
	for i, field := range contextFormFields {
		input := textinput.New()
		input.Prompt = ""
		input.Placeholder = field.placeholder
		input.CharLimit = field.limit
		inputs[i] = input
	}
	return inputs
}

func (m *Model) fillContextForm(ctx ContextOption) {
	m.contextFormInputs[contextFormFocusName].SetValue(ctx.Name)
	m.contextFormInputs[contextFormFocusAPI].SetValue(strings.TrimSpace(ctx.API))
	m.contextFormInputs[contextFormFocusNode].SetValue(strings.TrimSpace(ctx.Node))
}

func (m Model) contextFormCandidate() contextstore.Context {
	return contextstore.Context{
		Name: strings.TrimSpace(m.contextFormInputs[contextFormFocusName].Value()),
		API:  strings.TrimSpace(m.contextFormInputs[contextFormFocusAPI].Value()),
		Node: strings.TrimSpace(m.contextFormInputs[contextFormFocusNode].Value()),
	}
}
