package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"maidadmin/internal/api"
	"maidadmin/internal/auth"
	"maidadmin/internal/domain"
	"maidadmin/internal/eventbus"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// DataService loads and deletes admin records
type DataService interface {
	Refresh(ctx context.Context) (domain.AdminData, error)
	Delete(ctx context.Context, resource domain.Resource, id string, previous domain.Record) (domain.Record, error)
}

// AdminService performs the admin-only account actions
type AdminService interface {
	Block(ctx context.Context, userID string) error
	Unblock(ctx context.Context, userID string) error
	NewAdmin(ctx context.Context, account api.Account) error
}

// Session is the part of the auth provider commands use
type Session interface {
	Login(ctx context.Context, username, password string) (auth.Identity, error)
	Logout(ctx context.Context) error
	CheckError(err error) error
}

// CommandContext provides context for command execution
type CommandContext struct {
	Data    DataService
	Admin   AdminService
	Session Session
	Bus     eventbus.EventBus
	Logger  *zap.Logger
	Timeout time.Duration
}

func (c *CommandContext) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), c.Timeout)
}

func (c *CommandContext) publish(event eventbus.DomainEvent) {
	if c.Bus != nil {
		c.Bus.Publish(event)
	}
}

// fail logs err, lets the session react to authorization failures and
// reports it on the bus. The returned error replaces err for the caller.
func (c *CommandContext) fail(op string, err error) error {
	c.Logger.Warn("command failed", zap.String("op", op), zap.Error(err))
	if authErr := c.Session.CheckError(err); authErr != nil {
		err = authErr
	}
	c.publish(eventbus.ErrorEvent{Message: op, Err: err})
	return err
}

// LoadCommand fetches admin data
type LoadCommand struct {
	ctx *CommandContext
}

// NewLoadCommand creates a new load command
func NewLoadCommand(ctx *CommandContext) *LoadCommand {
	return &LoadCommand{ctx: ctx}
}

// Execute fetches the data off the update loop
func (c *LoadCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.ctx.context()
		defer cancel()

		data, err := c.ctx.Data.Refresh(ctx)
		if err != nil {
			return DataLoadedMsg{Err: c.ctx.fail("load admin data", err)}
		}
		c.ctx.publish(eventbus.AdminDataLoadedEvent{
			Users:    len(data.Users),
			Projects: len(data.Projects),
			Datasets: len(data.Datasets),
		})
		return DataLoadedMsg{Data: data}
	}
}

// ToggleBlockCommand blocks or unblocks a user
type ToggleBlockCommand struct {
	ctx      *CommandContext
	user     domain.User
	blocking bool
}

// NewToggleBlockCommand creates a command that flips the user's blocked flag
func NewToggleBlockCommand(ctx *CommandContext, user domain.User) *ToggleBlockCommand {
	return &ToggleBlockCommand{ctx: ctx, user: user, blocking: !user.IsBlocked}
}

// Execute calls block or unblock depending on the current flag
func (c *ToggleBlockCommand) Execute() tea.Cmd {
	user, blocking := c.user, c.blocking
	return func() tea.Msg {
		ctx, cancel := c.ctx.context()
		defer cancel()

		var err error
		if blocking {
			err = c.ctx.Admin.Block(ctx, user.ID)
		} else {
			err = c.ctx.Admin.Unblock(ctx, user.ID)
		}
		msg := BlockToggledMsg{UserID: user.ID, Username: user.Username, Blocked: blocking}
		if err != nil {
			msg.Err = c.ctx.fail("toggle block", err)
			return msg
		}

		if blocking {
			c.ctx.publish(eventbus.UserBlockedEvent{UserID: user.ID})
		} else {
			c.ctx.publish(eventbus.UserUnblockedEvent{UserID: user.ID})
		}
		return msg
	}
}

// DeleteCommand removes one record
type DeleteCommand struct {
	ctx      *CommandContext
	resource domain.Resource
	record   domain.Record
}

// NewDeleteCommand creates a new delete command
func NewDeleteCommand(ctx *CommandContext, resource domain.Resource, record domain.Record) *DeleteCommand {
	return &DeleteCommand{ctx: ctx, resource: resource, record: record}
}

// Execute deletes the record on the backend
func (c *DeleteCommand) Execute() tea.Cmd {
	resource, record := c.resource, c.record
	return func() tea.Msg {
		ctx, cancel := c.ctx.context()
		defer cancel()

		deleted, err := c.ctx.Data.Delete(ctx, resource, record.RecordID(), record)
		if err != nil {
			return DeletedMsg{Resource: resource, Record: record, Err: c.ctx.fail("delete", err)}
		}
		c.ctx.publish(eventbus.RecordDeletedEvent{Resource: resource, ID: deleted.RecordID()})
		return DeletedMsg{Resource: resource, Record: deleted}
	}
}

// NewAdminCommand creates an administrator account
type NewAdminCommand struct {
	ctx     *CommandContext
	account api.Account
}

// NewNewAdminCommand creates a new new-admin command
func NewNewAdminCommand(ctx *CommandContext, account api.Account) *NewAdminCommand {
	return &NewAdminCommand{ctx: ctx, account: account}
}

// Execute posts the new account
func (c *NewAdminCommand) Execute() tea.Cmd {
	account := c.account
	return func() tea.Msg {
		ctx, cancel := c.ctx.context()
		defer cancel()

		if err := c.ctx.Admin.NewAdmin(ctx, account); err != nil {
			return AdminCreatedMsg{Username: account.Username, Err: c.ctx.fail("new admin", err)}
		}
		c.ctx.publish(eventbus.AdminCreatedEvent{Username: account.Username})
		return AdminCreatedMsg{Username: account.Username}
	}
}

// LoginCommand signs in
type LoginCommand struct {
	ctx      *CommandContext
	username string
	password string
}

// NewLoginCommand creates a new login command
func NewLoginCommand(ctx *CommandContext, username, password string) *LoginCommand {
	return &LoginCommand{ctx: ctx, username: username, password: password}
}

// Execute authenticates against the backend. Login failures are not
// passed through CheckError: a 401 here means bad credentials.
func (c *LoginCommand) Execute() tea.Cmd {
	username, password := c.username, c.password
	return func() tea.Msg {
		ctx, cancel := c.ctx.context()
		defer cancel()

		id, err := c.ctx.Session.Login(ctx, username, password)
		if err != nil {
			c.ctx.Logger.Info("login failed", zap.String("username", username), zap.Error(err))
			return LoggedInMsg{Err: err}
		}
		return LoggedInMsg{Identity: id}
	}
}

// LogoutCommand signs out
type LogoutCommand struct {
	ctx *CommandContext
}

// NewLogoutCommand creates a new logout command
func NewLogoutCommand(ctx *CommandContext) *LogoutCommand {
	return &LogoutCommand{ctx: ctx}
}

// Execute ends the session
func (c *LogoutCommand) Execute() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := c.ctx.context()
		defer cancel()

		return LoggedOutMsg{Err: c.ctx.Session.Logout(ctx)}
	}
}
