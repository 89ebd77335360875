package cli

import (
	"context"
	"fmt"

	"messagely/internal/common"
)

func (a *App) listUsers(ctx context.Context) {
	users, err := a.userService.All(ctx)
	if err != nil {
		a.logger.Error(ctx, "listing users failed", "error", err.Error())
		fmt.Println("listing users failed")
		return
	}
	if len(users) == 0 {
		fmt.Println("no users")
		return
	}
	for _, u := range users {
		fmt.Printf("%-16s %s %s  %s\n", u.Username, u.FirstName, u.LastName, u.Phone)
	}
}

func (a *App) showUser(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: user <username>")
		return
	}

	u, err := a.userService.Get(ctx, args[0])
	if err != nil {
		if common.IsNotFound(err) {
			fmt.Printf("no such user: %s\n", args[0])
		} else {
			a.logger.Error(ctx, "user lookup failed", "username", args[0], "error", err.Error())
			fmt.Println("user lookup failed")
		}
		return
	}

	fmt.Printf("%s: %s %s, phone %s, joined %s\n",
		u.Username, u.FirstName, u.LastName, u.Phone, u.JoinAt.Format("2006-01-02 15:04:05"))
	if u.LastLoginAt.Valid {
		fmt.Println("last login:", u.LastLoginAt.Time.Format("2006-01-02 15:04:05"))
	} else {
		fmt.Println("last login: never")
	}
}
