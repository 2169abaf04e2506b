// Package auth holds the login, register, and logout runners.
package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/client"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/printers"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/session"
)

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

type Login struct {
	Email    string
	Password string

	Client  *client.Client
	Session *session.Store
}

func (n *Login) Do(ctx context.Context) error {
	if n.Email == "" || n.Password == "" {
		return errors.New("Login Error: Please check your input")
	}
	if !emailPattern.MatchString(n.Email) {
		return errors.New("Login Error: Please enter a valid email address")
	}

	token, err := n.Client.Login(ctx, n.Email, n.Password)
	if err != nil {
		return fmt.Errorf("Login Error: %w", err)
	}
	if err := n.Session.SignIn(n.Email, token); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Success("Login Success")
	return nil
}

type Register struct {
	Email           string
	Password        string
	ConfirmPassword string
	Name            string

	Client  *client.Client
	Session *session.Store
}

func (n *Register) Do(ctx context.Context) error {
	if n.Email == "" || n.Password == "" || n.Name == "" {
		return errors.New("Register Error: Please fill in all fields")
	}
	if !emailPattern.MatchString(n.Email) {
		return errors.New("Register Error: Please enter a valid email address")
	}
	if n.ConfirmPassword != n.Password {
		return errors.New("Register Error: Confirm password does not match password")
	}

	token, err := n.Client.Register(ctx, n.Email, n.Password, n.Name)
	if err != nil {
		return fmt.Errorf("Register Error: %w", err)
	}
	if err := n.Session.SignIn(n.Email, token); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Success("Register Success")
	return nil
}

type Logout struct {
	Client  *client.Client
	Session *session.Store
}

func (n *Logout) Do(ctx context.Context) error {
	if n.Client.Token == "" {
		return session.ErrNotLoggedIn
	}
	if err := n.Client.Logout(ctx); err != nil {
		return fmt.Errorf("Logout Error: %w", err)
	}
	if err := n.Session.SignOut(); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Success("Logout Success")
	return nil
}
