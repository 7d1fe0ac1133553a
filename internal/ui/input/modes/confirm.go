package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"maidadmin/internal/domain"
	"maidadmin/internal/ui/input/types"
)

type ConfirmMode struct {
	resource domain.Resource
	record   domain.Record
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "delete-confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	// Remember the target so later table changes cannot retarget the delete
	m.resource = ctx.Resource()
	m.record, _ = ctx.CurrentRecord()
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	m.record = nil
	return nil
}

// Target returns the record awaiting confirmation
func (m *ConfirmMode) Target() (domain.Resource, domain.Record) {
	return m.resource, m.record
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "n", "N":
		// Cancel deletion
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case "y", "Y":
		if m.record == nil {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
		}
		return []types.Action{
			types.DeleteRecordAction{Resource: m.resource, Record: m.record},
			types.ChangeModeAction{Mode: types.ModeNormal},
		}, true
	}
	return nil, true
}
