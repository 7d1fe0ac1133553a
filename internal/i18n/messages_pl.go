package i18n

var polish = map[string]string{
	"app.title": "MAID Admin",

	"tab.users":    "Użytkownicy",
	"tab.projects": "Projekty",
	"tab.datasets": "Zbiory danych",

	"search.placeholder": "Szukaj (np. role:admin)",
	"search.label":       "Szukaj",

	"col.id":       "ID",
	"col.username": "Nazwa użytkownika",
	"col.role":     "Rola",
	"col.status":   "Status",
	"col.name":     "Nazwa",

	"chip.active":  "Aktywny",
	"chip.blocked": "Zablokowany",
	"role.admin":   "Administrator",
	"role.user":    "Użytkownik",

	"empty.results": "Brak wyników dla \"%s\"",
	"empty.none":    "Brak danych",
	"count":         "%d z %d",

	"status.loading":         "Ładowanie...",
	"status.loaded":          "Wczytano użytkowników: %d, projektów: %d, zbiorów danych: %d",
	"status.blocked":         "Zablokowano użytkownika %s",
	"status.unblocked":       "Odblokowano użytkownika %s",
	"status.deleted":         "Usunięto %s %s",
	"status.admin_created":   "Utworzono administratora %s",
	"status.theme":           "Motyw: %s",
	"status.language":        "Język: polski",
	"status.logged_in":       "Zalogowano jako %s",
	"status.logged_out":      "Wylogowano",
	"status.session_expired": "Sesja wygasła, zaloguj się ponownie",
	"status.error":           "Błąd: %s",
	"status.users_only":      "Blokować można tylko użytkowników",
	"status.no_selection":    "Nic nie zaznaczono",

	"confirm.delete": "Usunąć %s %s? (y/n)",

	"login.title":    "Logowanie",
	"login.username": "Nazwa użytkownika",
	"login.password": "Hasło",
	"login.hint":     "enter: zaloguj  tab: następne pole  ctrl+c: wyjście",

	"form.new_admin": "Nowy administrator",
	"form.email":     "E-mail",
	"form.required":  "Wszystkie pola są wymagane",
	"form.hint":      "enter: zapisz  tab: następne pole  esc: anuluj",

	"help.title":     "Skróty klawiszowe",
	"help.search":    "szukaj",
	"help.clear":     "wyczyść wyszukiwanie",
	"help.tabs":      "zmień zasób",
	"help.move":      "ruch",
	"help.block":     "zablokuj / odblokuj",
	"help.delete":    "usuń",
	"help.new_admin": "nowy administrator",
	"help.details":   "szczegóły",
	"help.refresh":   "odśwież",
	"help.theme":     "zmień motyw",
	"help.language":  "zmień język",
	"help.logout":    "wyloguj",
	"help.help":      "pomoc",
	"help.quit":      "wyjście",
	"help.close":     "zamknij",

	"cli.registered":    "Zarejestrowano %s, zaloguj się: maidadmin login -u %s",
	"cli.not_signed_in": "Nie zalogowano",
	"cli.whoami":        "%s (%s), sesja ważna do %s",
	"cli.password":      "Hasło: ",
	"cli.total":         "%d z %d",
	"cli.deleted_many":  "Usunięto %d z %d: %s",
}
