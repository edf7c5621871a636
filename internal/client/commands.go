// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-cms-cli/internal/service"
	"github.com/MKhiriev/go-cms-cli/models"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v2"
)

var (
	errNotLoggedIn   = cli.Exit("not logged in", 1)
	errMissingPath   = errors.New("missing PATH argument")
	errInvalidBody   = errors.New("--data is not valid JSON")
	emailQuestion    = models.Question{Name: "email", Message: "Email:", Validate: service.NonEmpty("Email cannot be blank")}
	passwordQuestion = models.Question{Name: "password", Message: "Password:", Secret: true, Validate: service.NonEmpty("Password cannot be blank")}
)

func (a *App) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:   "login",
			Usage:  "Log in and remember the access token",
			Flags:  authFlags(),
			Action: a.login,
		},
		{
			Name:   "signup",
			Usage:  "Create an account and remember its access token",
			Flags:  authFlags(),
			Action: a.signup,
		},
		{
			Name:   "logout",
			Usage:  "Forget the remembered access token",
			Action: a.logout,
		},
		{
			Name:   "status",
			Usage:  "Report whether a login is remembered",
			Action: a.status,
		},
		{
			Name:   "components",
			Usage:  "List the components of the space",
			Action: a.components,
		},
		{
			Name:      "get",
			Usage:     "Send a GET request",
			ArgsUsage: "PATH",
			Action:    a.get,
		},
		{
			Name:      "post",
			Usage:     "Send a POST request with a JSON body",
			ArgsUsage: "PATH",
			Flags:     []cli.Flag{dataFlag()},
			Action:    a.post,
		},
		{
			Name:      "put",
			Usage:     "Send a PUT request with a JSON body",
			ArgsUsage: "PATH",
			Flags:     []cli.Flag{dataFlag()},
			Action:    a.put,
		},
		{
			Name:      "delete",
			Usage:     "Send a DELETE request",
			ArgsUsage: "PATH",
			Action:    a.delete,
		},
	}
}

func (a *App) login(c *cli.Context) error {
	email, password, err := a.credentials(c)
	if err != nil {
		return err
	}

	if _, err = a.session.Login(c.Context, email, password); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "Logged in as %s\n", email)
	return err
}

func (a *App) signup(c *cli.Context) error {
	email, password, err := a.credentials(c)
	if err != nil {
		return err
	}

	if err = a.session.Signup(c.Context, email, password); err != nil {
		return fmt.Errorf("signup: %w", err)
	}

	_, err = fmt.Fprintf(a.out, "Signed up as %s\n", email)
	return err
}

func (a *App) logout(c *cli.Context) error {
	if err := a.session.Logout(c.Context); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	_, err := fmt.Fprintln(a.out, "Logged out")
	return err
}

func (a *App) status(c *cli.Context) error {
	if err := a.requireAuth(c); err != nil {
		return err
	}

	_, err := fmt.Fprintln(a.out, "Logged in")
	return err
}

func (a *App) components(c *cli.Context) error {
	if err := a.requireAuth(c); err != nil {
		return err
	}

	components, err := a.session.GetComponents(c.Context)
	if err != nil {
		return fmt.Errorf("components: %w", err)
	}

	data, err := json.Marshal(components)
	if err != nil {
		return err
	}

	return writeJSON(a.out, data)
}

func (a *App) get(c *cli.Context) error {
	path, err := a.authorizedPath(c)
	if err != nil {
		return err
	}

	resp, err := a.session.Get(c.Context, path)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}

	return writeJSON(a.out, resp.Data)
}

func (a *App) post(c *cli.Context) error {
	path, body, err := a.pathAndBody(c)
	if err != nil {
		return err
	}

	resp, err := a.session.Post(c.Context, path, body)
	if err != nil {
		return fmt.Errorf("POST %s: %w", path, err)
	}

	return writeJSON(a.out, resp.Data)
}

func (a *App) put(c *cli.Context) error {
	path, body, err := a.pathAndBody(c)
	if err != nil {
		return err
	}

	resp, err := a.session.Put(c.Context, path, body)
	if err != nil {
		return fmt.Errorf("PUT %s: %w", path, err)
	}

	return writeJSON(a.out, resp.Data)
}

func (a *App) delete(c *cli.Context) error {
	path, err := a.authorizedPath(c)
	if err != nil {
		return err
	}

	resp, err := a.session.Delete(c.Context, path)
	if err != nil {
		return fmt.Errorf("DELETE %s: %w", path, err)
	}

	return writeJSON(a.out, resp.Data)
}

// requireAuth restores the remembered login into the session.
func (a *App) requireAuth(c *cli.Context) error {
	ok, err := a.session.IsAuthorized(c.Context)
	if err != nil {
		return err
	}
	if !ok {
		return errNotLoggedIn
	}

	return nil
}

func (a *App) authorizedPath(c *cli.Context) (string, error) {
	path := c.Args().First()
	if path == "" {
		return "", errMissingPath
	}

	return path, a.requireAuth(c)
}

func (a *App) pathAndBody(c *cli.Context) (string, json.RawMessage, error) {
	data := c.String(flagData)
	if !gjson.Valid(data) {
		return "", nil, errInvalidBody
	}

	path, err := a.authorizedPath(c)
	if err != nil {
		return "", nil, err
	}

	return path, json.RawMessage(data), nil
}

// credentials returns the email and password flags, asking for the missing
// ones.
func (a *App) credentials(c *cli.Context) (string, string, error) {
	email := c.String(flagEmail)
	password := c.String(flagPassword)

	var err error
	if email == "" {
		if email, err = a.prompter.Ask(c.Context, emailQuestion); err != nil {
			return "", "", err
		}
	}
	if password == "" {
		if password, err = a.prompter.Ask(c.Context, passwordQuestion); err != nil {
			return "", "", err
		}
	}

	return email, password, nil
}
