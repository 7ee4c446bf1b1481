package email

import (
	"bytes"
	"html/template"
)

type verificationData struct {
	VerifyLink string
}

var verificationTmpl = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Welcome!</h2>
    <p>Thanks for registering. Please confirm your email address by clicking the link below:</p>
    <p><a href="{{.VerifyLink}}">Verify my email</a></p>
    <p>If you did not create an account, you can ignore this message.</p>
  </body>
</html>`))

func renderVerification(data verificationData) (string, error) {
	var buf bytes.Buffer
	if err := verificationTmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
