package modes

import "maidadmin/internal/ui/input/types"

// NewLoginMode creates the sign-in form. It cannot be cancelled.
func NewLoginMode() *FormMode {
	return NewFormMode(types.ModeLogin, "login", []Field{
		{Label: "login.username"},
		{Label: "login.password", Password: true},
	}, false, func(values []string) types.Action {
		return types.SubmitLoginAction{Username: values[0], Password: values[1]}
	})
}

// NewAdminMode creates the new-administrator form
func NewAdminMode() *FormMode {
	return NewFormMode(types.ModeNewAdmin, "new-admin", []Field{
		{Label: "login.username"},
		{Label: "form.email"},
		{Label: "login.password", Password: true},
	}, true, func(values []string) types.Action {
		return types.SubmitNewAdminAction{Username: values[0], Email: values[1], Password: values[2]}
	})
}
