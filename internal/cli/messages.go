package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strconv"

	"messagely/internal/common"
)

func formatRead(readAt sql.NullTime) string {
	if readAt.Valid {
		return "read " + readAt.Time.Format("2006-01-02 15:04:05")
	}
	return "unread"
}

func (a *App) messagesFrom(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: from <username>")
		return
	}

	msgs, err := a.messageService.MessagesFrom(ctx, args[0])
	if err != nil {
		if common.IsNotFound(err) {
			fmt.Printf("no such user: %s\n", args[0])
		} else {
			a.logger.Error(ctx, "thread lookup failed", "username", args[0], "error", err.Error())
			fmt.Println("thread lookup failed")
		}
		return
	}
	if len(msgs) == 0 {
		fmt.Println("no messages")
		return
	}
	for _, m := range msgs {
		fmt.Printf("#%d to %s (%s %s) at %s [%s]: %s\n",
			m.ID, m.ToUser.Username, m.ToUser.FirstName, m.ToUser.LastName,
			m.SentAt.Format("2006-01-02 15:04:05"), formatRead(m.ReadAt), m.Body)
	}
}

func (a *App) messagesTo(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: to <username>")
		return
	}

	msgs, err := a.messageService.MessagesTo(ctx, args[0])
	if err != nil {
		if common.IsNotFound(err) {
			fmt.Printf("no such user: %s\n", args[0])
		} else {
			a.logger.Error(ctx, "thread lookup failed", "username", args[0], "error", err.Error())
			fmt.Println("thread lookup failed")
		}
		return
	}
	if len(msgs) == 0 {
		fmt.Println("no messages")
		return
	}
	for _, m := range msgs {
		fmt.Printf("#%d from %s (%s %s) at %s [%s]: %s\n",
			m.ID, m.FromUser.Username, m.FromUser.FirstName, m.FromUser.LastName,
			m.SentAt.Format("2006-01-02 15:04:05"), formatRead(m.ReadAt), m.Body)
	}
}

func (a *App) send(ctx context.Context) {
	from, err := getSimpleText(a.reader, "From username", os.Stdout)
	if err != nil {
		fmt.Println("input error:", err)
		return
	}
	to, err := getSimpleText(a.reader, "To username", os.Stdout)
	if err != nil {
		fmt.Println("input error:", err)
		return
	}
	body, err := GetMultiline(a.reader, "Message body", os.Stdout)
	if err != nil {
		fmt.Println("input error:", err)
		return
	}

	msg, err := a.messageService.Send(ctx, from, to, body)
	if err != nil {
		var validation *common.ValidationError
		switch {
		case errors.As(err, &validation):
			fmt.Println("missing fields:", validation.Fields)
		case common.IsNotFound(err):
			fmt.Println("unknown sender or recipient")
		default:
			a.logger.Error(ctx, "send failed", "error", err.Error())
			fmt.Println("send failed")
		}
		return
	}

	fmt.Printf("Sent #%d at %s\n", msg.ID, msg.SentAt.Format("2006-01-02 15:04:05"))
}

func (a *App) markRead(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: read <message-id>")
		return
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		fmt.Println("message id must be a number")
		return
	}

	msg, err := a.messageService.MarkRead(ctx, id)
	if err != nil {
		if common.IsNotFound(err) {
			fmt.Printf("no such message: %d\n", id)
		} else {
			a.logger.Error(ctx, "mark read failed", "id", id, "error", err.Error())
			fmt.Println("mark read failed")
		}
		return
	}

	fmt.Printf("Message #%d %s\n", msg.ID, formatRead(msg.ReadAt))
}
