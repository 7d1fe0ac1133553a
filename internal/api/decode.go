package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"maidadmin/internal/domain"
)

// lookup finds a member of obj by name, ignoring case. The backend
// serialises with camelCase but older builds used PascalCase.
func lookup(obj gjson.Result, name string) gjson.Result {
	if r := obj.Get(gjson.Escape(name)); r.Exists() {
		return r
	}
	var found gjson.Result
	obj.ForEach(func(key, value gjson.Result) bool {
		if strings.EqualFold(key.String(), name) {
			found = value
			return false
		}
		return true
	})
	return found
}

func requiredID(obj gjson.Result, what string) (string, error) {
	r := lookup(obj, "id")
	switch {
	case !r.Exists() || r.Type == gjson.Null:
		return "", &DecodeError{What: what, Field: "id", Err: errMissing}
	case r.Type == gjson.Number:
		return r.Raw, nil
	case r.Type != gjson.String:
		return "", &DecodeError{What: what, Field: "id", Err: errWrongType}
	case r.Str == "":
		return "", &DecodeError{What: what, Field: "id", Err: errEmpty}
	}
	return r.Str, nil
}

func requiredString(obj gjson.Result, what, field string) (string, error) {
	r := lookup(obj, field)
	if !r.Exists() || r.Type == gjson.Null {
		return "", &DecodeError{What: what, Field: field, Err: errMissing}
	}
	if r.Type != gjson.String {
		return "", &DecodeError{What: what, Field: field, Err: errWrongType}
	}
	return r.Str, nil
}

func optionalString(obj gjson.Result, what, field, fallback string) (string, error) {
	r := lookup(obj, field)
	if !r.Exists() || r.Type == gjson.Null {
		return fallback, nil
	}
	if r.Type != gjson.String {
		return "", &DecodeError{What: what, Field: field, Err: errWrongType}
	}
	return r.Str, nil
}

func optionalBool(obj gjson.Result, what, field string) (bool, error) {
	r := lookup(obj, field)
	switch r.Type {
	case gjson.Null:
		return false, nil
	case gjson.True, gjson.False:
		return r.Bool(), nil
	}
	return false, &DecodeError{What: what, Field: field, Err: errWrongType}
}

// records returns the array stored under a resource key
func records(root gjson.Result, r domain.Resource) ([]gjson.Result, error) {
	arr := lookup(root, string(r))
	if !arr.Exists() || arr.Type == gjson.Null {
		return nil, &DecodeError{What: "admin data", Field: string(r), Err: errMissing}
	}
	if !arr.IsArray() {
		return nil, &DecodeError{What: "admin data", Field: string(r), Err: errWrongType}
	}
	items := arr.Array()
	for i, item := range items {
		if !item.IsObject() {
			return nil, &DecodeError{What: fmt.Sprintf("%s[%d]", r, i), Err: errWrongType}
		}
	}
	return items, nil
}

// DecodeAdminData parses the admin-data payload. Every resource key must be
// present and every record must carry an id and its display field.
func DecodeAdminData(body []byte) (domain.AdminData, error) {
	var data domain.AdminData
	if !gjson.ValidBytes(body) {
		return data, &DecodeError{What: "admin data", Err: errors.New("invalid json")}
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return data, &DecodeError{What: "admin data", Err: errWrongType}
	}

	users, err := records(root, domain.ResourceUsers)
	if err != nil {
		return data, err
	}
	data.Users = make([]domain.User, 0, len(users))
	for i, obj := range users {
		u, err := decodeUser(obj, fmt.Sprintf("users[%d]", i))
		if err != nil {
			return domain.AdminData{}, err
		}
		data.Users = append(data.Users, u)
	}

	projects, err := records(root, domain.ResourceProjects)
	if err != nil {
		return domain.AdminData{}, err
	}
	data.Projects = make([]domain.Project, 0, len(projects))
	for i, obj := range projects {
		what := fmt.Sprintf("projects[%d]", i)
		id, err := requiredID(obj, what)
		if err != nil {
			return domain.AdminData{}, err
		}
		name, err := requiredString(obj, what, "name")
		if err != nil {
			return domain.AdminData{}, err
		}
		data.Projects = append(data.Projects, domain.Project{ID: id, Name: name})
	}

	datasets, err := records(root, domain.ResourceDatasets)
	if err != nil {
		return domain.AdminData{}, err
	}
	data.Datasets = make([]domain.Dataset, 0, len(datasets))
	for i, obj := range datasets {
		what := fmt.Sprintf("datasets[%d]", i)
		id, err := requiredID(obj, what)
		if err != nil {
			return domain.AdminData{}, err
		}
		name, err := requiredString(obj, what, "name")
		if err != nil {
			return domain.AdminData{}, err
		}
		data.Datasets = append(data.Datasets, domain.Dataset{ID: id, Name: name})
	}

	return data, nil
}

func decodeUser(obj gjson.Result, what string) (domain.User, error) {
	id, err := requiredID(obj, what)
	if err != nil {
		return domain.User{}, err
	}
	username, err := requiredString(obj, what, "username")
	if err != nil {
		return domain.User{}, err
	}
	role, err := optionalString(obj, what, "role", domain.RoleUser)
	if err != nil {
		return domain.User{}, err
	}
	blocked, err := optionalBool(obj, what, "isBlocked")
	if err != nil {
		return domain.User{}, err
	}
	return domain.User{ID: id, Username: username, Role: role, IsBlocked: blocked}, nil
}

// decodeTokens parses login, register and refresh responses
func decodeTokens(body []byte, what string) (Tokens, error) {
	if !gjson.ValidBytes(body) {
		return Tokens{}, &DecodeError{What: what, Err: errors.New("invalid json")}
	}
	root := gjson.ParseBytes(body)
	token, err := requiredString(root, what, "token")
	if err != nil {
		return Tokens{}, err
	}
	if token == "" {
		return Tokens{}, &DecodeError{What: what, Field: "token", Err: errEmpty}
	}
	refresh, err := optionalString(root, what, "refreshToken", "")
	if err != nil {
		return Tokens{}, err
	}
	username, err := optionalString(root, what, "username", "")
	if err != nil {
		return Tokens{}, err
	}
	return Tokens{Token: token, RefreshToken: refresh, Username: username}, nil
}
