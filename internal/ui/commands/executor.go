package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"maidadmin/internal/api"
	"maidadmin/internal/domain"
	"maidadmin/internal/eventbus"
)

const defaultTimeout = 15 * time.Second

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor. bus and logger may be nil.
func NewExecutor(data DataService, admin AdminService, session Session, bus eventbus.EventBus, logger *zap.Logger, timeout time.Duration) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Executor{
		ctx: &CommandContext{
			Data:    data,
			Admin:   admin,
			Session: session,
			Bus:     bus,
			Logger:  logger.Named("commands"),
			Timeout: timeout,
		},
	}
}

// ExecuteLoad creates and executes a load command
func (e *Executor) ExecuteLoad() tea.Cmd {
	return NewLoadCommand(e.ctx).Execute()
}

// ExecuteToggleBlock creates and executes a block/unblock command
func (e *Executor) ExecuteToggleBlock(user domain.User) tea.Cmd {
	return NewToggleBlockCommand(e.ctx, user).Execute()
}

// ExecuteDelete creates and executes a delete command
func (e *Executor) ExecuteDelete(resource domain.Resource, record domain.Record) tea.Cmd {
	return NewDeleteCommand(e.ctx, resource, record).Execute()
}

// ExecuteNewAdmin creates and executes a new-admin command
func (e *Executor) ExecuteNewAdmin(account api.Account) tea.Cmd {
	return NewNewAdminCommand(e.ctx, account).Execute()
}

// ExecuteLogin creates and executes a login command
func (e *Executor) ExecuteLogin(username, password string) tea.Cmd {
	return NewLoginCommand(e.ctx, username, password).Execute()
}

// ExecuteLogout creates and executes a logout command
func (e *Executor) ExecuteLogout() tea.Cmd {
	return NewLogoutCommand(e.ctx).Execute()
}
