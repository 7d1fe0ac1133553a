package i18n

var english = map[string]string{
	"app.title": "MAID Admin",

	"tab.users":    "Users",
	"tab.projects": "Projects",
	"tab.datasets": "Datasets",

	"search.placeholder": "Search (e.g. role:admin)",
	"search.label":       "Search",

	"col.id":       "ID",
	"col.username": "Username",
	"col.role":     "Role",
	"col.status":   "Status",
	"col.name":     "Name",

	"chip.active":  "Active",
	"chip.blocked": "Blocked",
	"role.admin":   "Admin",
	"role.user":    "User",

	"empty.results": "No results for \"%s\"",
	"empty.none":    "Nothing to show",
	"count":         "%d of %d",

	"status.loading":         "Loading...",
	"status.loaded":          "Loaded %d users, %d projects, %d datasets",
	"status.blocked":         "Blocked user %s",
	"status.unblocked":       "Unblocked user %s",
	"status.deleted":         "Deleted %s %s",
	"status.admin_created":   "Created administrator %s",
	"status.theme":           "Theme: %s",
	"status.language":        "Language: English",
	"status.logged_in":       "Signed in as %s",
	"status.logged_out":      "Signed out",
	"status.session_expired": "Session expired, please sign in again",
	"status.error":           "Error: %s",
	"status.users_only":      "Only users can be blocked",
	"status.no_selection":    "Nothing selected",

	"confirm.delete": "Delete %s %s? (y/n)",

	"login.title":    "Sign in",
	"login.username": "Username",
	"login.password": "Password",
	"login.hint":     "enter: sign in  tab: next field  ctrl+c: quit",

	"form.new_admin": "New administrator",
	"form.email":     "Email",
	"form.required":  "All fields are required",
	"form.hint":      "enter: submit  tab: next field  esc: cancel",

	"help.title":     "Keyboard shortcuts",
	"help.search":    "search",
	"help.clear":     "clear search",
	"help.tabs":      "switch resource",
	"help.move":      "move",
	"help.block":     "block / unblock",
	"help.delete":    "delete",
	"help.new_admin": "new admin",
	"help.details":   "details",
	"help.refresh":   "refresh",
	"help.theme":     "toggle theme",
	"help.language":  "toggle language",
	"help.logout":    "sign out",
	"help.help":      "help",
	"help.quit":      "quit",
	"help.close":     "close",

	"cli.registered":    "Registered %s, sign in with: maidadmin login -u %s",
	"cli.not_signed_in": "Not signed in",
	"cli.whoami":        "%s (%s), session valid until %s",
	"cli.password":      "Password: ",
	"cli.total":         "%d of %d",
	"cli.deleted_many":  "Deleted %d of %d %s",
}
