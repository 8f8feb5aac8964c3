package http

import "html/template"

// Page markup, kept deliberately minimal: the pages exist to exercise the
// auth flows, not to look good.
const pages = `
{{define "top"}}<!DOCTYPE html>
<html>
  <head><title>Top Page</title></head>
  <body>
    <h1>Auth Sample Site</h1>
    <a href="/signup">Sign up</a>
    <a href="/login">Log in</a>
  </body>
</html>{{end}}

{{define "login"}}<!DOCTYPE html>
<html>
  <head><title>Login</title></head>
  <body>
    <h1>Log in</h1>
    <form action="/login" method="post">
      <input type="text" name="email" placeholder="email address" />
      <input type="password" name="password" placeholder="password" />
      <button type="submit">Log in</button>
    </form>
  </body>
</html>{{end}}

{{define "signup"}}<!DOCTYPE html>
<html>
  <head><title>Signup</title></head>
  <body>
    <h1>Sign up</h1>
    {{if .Message}}<p>{{.Message}}</p>{{end}}
    <form action="/signup" method="post">
      <input type="text" name="email" placeholder="email address" />
      <input type="password" name="password" placeholder="password" />
      <button type="submit">Sign up</button>
    </form>
  </body>
</html>{{end}}

{{define "profile"}}<!DOCTYPE html>
<html>
  <head><title>My Profile</title></head>
  <body>
    <h1>Welcome, {{.Email}}</h1>
    <a href="/logout">Log out</a>
  </body>
</html>{{end}}

{{define "denied"}}<!DOCTYPE html>
<html>
  <head><title>Login Required</title></head>
  <body>
    <h1>You must be logged in to view this page</h1>
    <a href="/login">Log in</a>
  </body>
</html>{{end}}
`

func pageTemplates() *template.Template {
	return template.Must(template.New("pages").Parse(pages))
}
