package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"messagely/internal/common"
	"messagely/internal/services"
)

// getSimpleText and getPassword are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped
// in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// register prompts for the candidate fields and creates the account.
// The plaintext password is wiped as soon as it has been handed off.
func (a *App) register(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		fmt.Println("input error:", err)
		return
	}
	firstName, err := getSimpleText(a.reader, "First name", os.Stdout)
	if err != nil {
		fmt.Println("input error:", err)
		return
	}
	lastName, err := getSimpleText(a.reader, "Last name", os.Stdout)
	if err != nil {
		fmt.Println("input error:", err)
		return
	}
	phone, err := getSimpleText(a.reader, "Phone", os.Stdout)
	if err != nil {
		fmt.Println("input error:", err)
		return
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		fmt.Println("input error:", err)
		return
	}
	defer common.WipeByteArray(password)

	user, err := a.userService.Register(ctx, services.RegisterParams{
		Username:  username,
		Password:  string(password),
		FirstName: firstName,
		LastName:  lastName,
		Phone:     phone,
	})
	if err != nil {
		var validation *common.ValidationError
		switch {
		case errors.As(err, &validation):
			fmt.Println("missing fields:", validation.Fields)
		case common.IsConflict(err):
			fmt.Println("username already taken")
		default:
			a.logger.Error(ctx, "register failed", "error", err.Error())
			fmt.Println("registration failed")
		}
		return
	}

	fmt.Printf("Registered %s (joined %s)\n", user.Username, user.JoinAt.Format("2006-01-02 15:04:05"))
}

// login verifies credentials and prints the issued token.
func (a *App) login(ctx context.Context) {
	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		fmt.Println("input error:", err)
		return
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		fmt.Println("input error:", err)
		return
	}
	defer common.WipeByteArray(password)

	token, err := a.userService.Login(ctx, username, string(password))
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			fmt.Println("invalid username/password")
		} else {
			a.logger.Error(ctx, "login failed", "username", username, "error", err.Error())
			fmt.Println("login failed")
		}
		return
	}

	fmt.Println("Token:", token)
}
