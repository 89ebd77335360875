package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// Run starts a simple read-eval-print loop over the admin commands.
// Unknown commands are reported back to the user; the loop exits on EOF
// or when the user types "exit" or "quit". Handlers print their own
// errors so a failed command never ends the session.
func (a *App) Run(ctx context.Context) {
	fmt.Println("messagely admin (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("msgly> ")
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			fmt.Println("Commands: register, login, users, user <name>, from <name>, to <name>, send, read <id>, exit")
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "users":
			a.listUsers(ctx)
		case "user":
			a.showUser(ctx, args)
		case "from":
			a.messagesFrom(ctx, args)
		case "to":
			a.messagesTo(ctx, args)
		case "send":
			a.send(ctx)
		case "read":
			a.markRead(ctx, args)
		case "exit", "quit":
			fmt.Println("Bye!")
			return
		default:
			fmt.Printf("Unknown command: %s\n", cmd)
		}
	}
}
