package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"maidadmin/internal/api"
	"maidadmin/internal/auth"
	"maidadmin/internal/dataprovider"
	"maidadmin/internal/domain"
	"maidadmin/internal/prefs"
	"maidadmin/internal/search"
)

var (
	loginUsername string
	loginPassword string

	accountUsername string
	accountEmail    string
	accountPassword string

	listSearch  string
	listSort    string
	listDesc    bool
	listPage    int
	listPerPage int
)

// withApp builds the services for one subcommand run
func withApp(fn func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(cmd, a, args)
	}
}

// adminCall runs an authenticated call and ends the stored session when the
// backend rejects the token
func (a *app) adminCall(err error) error {
	if err == nil {
		return nil
	}
	if authErr := a.auth.CheckError(err); authErr != nil {
		return authErr
	}
	return err
}

// requireSession fails early when there is no usable token
func (a *app) requireSession() error {
	if err := a.auth.CheckAuth(); err != nil {
		return fmt.Errorf("%s: %w", a.printer().Sprintf("cli.not_signed_in"), err)
	}
	return nil
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
		if loginUsername == "" {
			return errors.New("--username is required")
		}
		password := loginPassword
		if password == "" {
			var err error
			password, err = promptPassword(cmd.InOrStdin(), cmd.ErrOrStderr(), a.printer().Sprintf("cli.password"))
			if err != nil {
				return err
			}
		}

		ctx, cancel := a.timeoutContext(cmd)
		defer cancel()
		id, err := a.auth.Login(ctx, loginUsername, password)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.printer().Sprintf("status.logged_in", id.Username))
		return nil
	}),
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a regular account",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
		account, err := accountFromFlags(cmd, a)
		if err != nil {
			return err
		}
		ctx, cancel := a.timeoutContext(cmd)
		defer cancel()
		tokens, err := a.client.Register(ctx, account)
		if err != nil {
			return err
		}
		name := tokens.Username
		if name == "" {
			name = account.Username
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.printer().Sprintf("cli.registered", name, name))
		return nil
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke and remove the stored session",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
		ctx, cancel := a.timeoutContext(cmd)
		defer cancel()
		if err := a.auth.Logout(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.printer().Sprintf("status.logged_out"))
		return nil
	}),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in administrator",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
		p := a.printer()
		id, err := a.auth.Identity()
		if errors.Is(err, auth.ErrNotAuthenticated) || errors.Is(err, auth.ErrTokenExpired) {
			fmt.Fprintln(cmd.OutOrStdout(), p.Sprintf("cli.not_signed_in"))
			return nil
		}
		if err != nil {
			return err
		}
		expires := "-"
		if !id.ExpiresAt.IsZero() {
			expires = id.ExpiresAt.Local().Format(time.DateTime)
		}
		fmt.Fprintln(cmd.OutOrStdout(), p.Sprintf("cli.whoami", id.Username, id.Role, expires))
		return nil
	}),
}

var listCmd = &cobra.Command{
	Use:       "list <users|projects|datasets>",
	Short:     "Print one resource as a table",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"users", "projects", "datasets"},
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		resource, err := domain.ParseResource(args[0])
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}

		// The search flag goes through the same store the TUI uses
		store := search.NewStoreWithBus(a.bus)
		if listSearch != "" {
			store.SetSearchTerm(listSearch)
		}
		perPage := listPerPage
		if perPage == 0 && listPage > 0 {
			perPage = a.cfg.UISettings.PageSize
		}

		ctx, cancel := a.timeoutContext(cmd)
		defer cancel()
		result, err := a.data.GetList(ctx, resource, dataprovider.ListParams{
			Search:    store.Term(),
			SortField: listSort,
			SortDesc:  listDesc,
			Page:      listPage,
			PerPage:   perPage,
		})
		if err := a.adminCall(err); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, renderList(a, resource, result.Records))
		fmt.Fprintln(out, a.printer().Sprintf("cli.total", len(result.Records), result.Total))
		return nil
	}),
}

var blockCmd = &cobra.Command{
	Use:   "block <user-id>",
	Short: "Block a user",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		return setBlocked(cmd, a, args[0], true)
	}),
}

var unblockCmd = &cobra.Command{
	Use:   "unblock <user-id>",
	Short: "Unblock a user",
	Args:  cobra.ExactArgs(1),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		return setBlocked(cmd, a, args[0], false)
	}),
}

func setBlocked(cmd *cobra.Command, a *app, id string, blocked bool) error {
	if err := a.requireSession(); err != nil {
		return err
	}
	ctx, cancel := a.timeoutContext(cmd)
	defer cancel()

	call, key := a.client.Unblock, "status.unblocked"
	if blocked {
		call, key = a.client.Block, "status.blocked"
	}
	if err := a.adminCall(call(ctx, id)); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), a.printer().Sprintf(key, id))
	return nil
}

var newAdminCmd = &cobra.Command{
	Use:   "new-admin",
	Short: "Create an administrator account",
	Args:  cobra.NoArgs,
	RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
		if err := a.requireSession(); err != nil {
			return err
		}
		account, err := accountFromFlags(cmd, a)
		if err != nil {
			return err
		}
		ctx, cancel := a.timeoutContext(cmd)
		defer cancel()
		if err := a.adminCall(a.client.NewAdmin(ctx, account)); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.printer().Sprintf("status.admin_created", account.Username))
		return nil
	}),
}

var deleteCmd = &cobra.Command{
	Use:   "delete <users|projects|datasets> <id...>",
	Short: "Delete one or more records",
	Args:  cobra.MinimumNArgs(2),
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		resource, err := domain.ParseResource(args[0])
		if err != nil {
			return err
		}
		if err := a.requireSession(); err != nil {
			return err
		}
		ids := args[1:]
		p := a.printer()
		ctx, cancel := a.timeoutContext(cmd)
		defer cancel()

		if len(ids) == 1 {
			if _, err := a.data.Delete(ctx, resource, ids[0], nil); err != nil {
				return a.adminCall(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.Sprintf("status.deleted", resource.Singular(), ids[0]))
			return nil
		}

		deleted, err := a.data.DeleteMany(ctx, resource, ids)
		fmt.Fprintln(cmd.OutOrStdout(), p.Sprintf("cli.deleted_many", len(deleted), len(ids), resource))
		return a.adminCall(err)
	}),
}

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark]",
	Short:     "Show or set the colour theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark"},
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		if len(args) == 1 {
			theme, err := prefs.ParseTheme(args[0])
			if err != nil {
				return err
			}
			if err := a.prefs.SetTheme(theme); err != nil {
				return err
			}
		}
		theme := a.prefs.Theme(domain.DefaultTheme)
		fmt.Fprintln(cmd.OutOrStdout(), a.printer().Sprintf("status.theme", theme))
		return nil
	}),
}

var langCmd = &cobra.Command{
	Use:       "lang [en|pl]",
	Short:     "Show or set the interface language",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"en", "pl"},
	RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
		if len(args) == 1 {
			lang, err := prefs.ParseLanguage(args[0])
			if err != nil {
				return err
			}
			if err := a.prefs.SetLanguage(lang); err != nil {
				return err
			}
		}
		// Printed in the language just chosen
		fmt.Fprintln(cmd.OutOrStdout(), a.printer().Sprintf("status.language"))
		return nil
	}),
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "account name")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "password (prompted when omitted)")

	for _, cmd := range []*cobra.Command{registerCmd, newAdminCmd} {
		cmd.Flags().StringVarP(&accountUsername, "username", "u", "", "account name")
		cmd.Flags().StringVarP(&accountEmail, "email", "e", "", "e-mail address")
		cmd.Flags().StringVar(&accountPassword, "password", "", "password (prompted when omitted)")
	}

	listCmd.Flags().StringVar(&listSearch, "search", "", "filter term, e.g. role:admin")
	listCmd.Flags().StringVar(&listSort, "sort", "", "field to sort by")
	listCmd.Flags().BoolVar(&listDesc, "desc", false, "sort descending")
	listCmd.Flags().IntVar(&listPage, "page", 0, "page number, starting at 1")
	listCmd.Flags().IntVar(&listPerPage, "per-page", 0, "records per page (default ui.page_size)")
}

func accountFromFlags(cmd *cobra.Command, a *app) (api.Account, error) {
	if accountUsername == "" || accountEmail == "" {
		return api.Account{}, errors.New("--username and --email are required")
	}
	password := accountPassword
	if password == "" {
		var err error
		password, err = promptPassword(cmd.InOrStdin(), cmd.ErrOrStderr(), a.printer().Sprintf("cli.password"))
		if err != nil {
			return api.Account{}, err
		}
	}
	return api.Account{Username: accountUsername, Email: accountEmail, Password: password}, nil
}

// promptPassword reads a password without echo from a terminal, or one line
// from any other reader
func promptPassword(in io.Reader, out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read password: %w", err)
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return "", errors.New("empty password")
	}
	return password, nil
}

// renderList prints records with the same columns as the TUI table
func renderList(a *app, resource domain.Resource, records []domain.Record) string {
	p := a.printer()
	names := []string{"id", "name"}
	headers := []string{p.Sprintf("col.id"), p.Sprintf("col.name")}
	if resource == domain.ResourceUsers {
		names = []string{"id", "username", "role", "blocked"}
		headers = []string{p.Sprintf("col.id"), p.Sprintf("col.username"), p.Sprintf("col.role"), p.Sprintf("col.status")}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	for _, rec := range records {
		cells := make([]string, 0, len(names))
		for _, name := range names {
			value := domain.FieldValue(rec, name)
			if name == "blocked" {
				value = p.Sprintf("chip.active")
				if domain.FieldValue(rec, name) == "true" {
					value = p.Sprintf("chip.blocked")
				}
			}
			cells = append(cells, value)
		}
		t.Row(cells...)
	}
	a.logger.Debug("list rendered", zap.String("resource", string(resource)), zap.Int("rows", len(records)))
	return t.String()
}
