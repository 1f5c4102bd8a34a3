package mailing

import (
	"bytes"
	"html/template"
)

var resetPasswordTemplate = template.Must(template.New("reset").Parse(`<p>Hello, {{.Username}}!</p>
<p>Someone asked to reset the password of your Foodgram account.</p>
<p><a href="{{.Link}}">Set a new password</a></p>
<p>The link is valid for {{.ValidMinutes}} minutes. If it was not you, ignore this email.</p>`))

type ResetPasswordData struct {
	Username     string
	Link         string
	ValidMinutes int
}

func RenderResetPassword(data ResetPasswordData) (string, error) {
	var buf bytes.Buffer
	if err := resetPasswordTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
