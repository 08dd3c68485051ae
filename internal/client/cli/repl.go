package cli

import (
	"context"
	"fmt"
	"strings"
)

// command is a REPL handler. Commands with auth set need a signed-in user.
type command struct {
	auth bool
	run  func(a *App, ctx context.Context, args []string) error
}

var commands = map[string]command{
	"register": {run: (*App).Register},
	"login":    {run: (*App).Login},
	"logout":   {auth: true, run: (*App).Logout},
	"profile":  {auth: true, run: (*App).Profile},
	"edit":     {auth: true, run: (*App).EditProfile},

	"companies":      {run: (*App).Companies},
	"top":            {run: (*App).Top},
	"company":        {run: (*App).Company},
	"fav":            {auth: true, run: (*App).ToggleFavorite},
	"favorites":      {auth: true, run: (*App).Favorites},
	"clearfavorites": {auth: true, run: (*App).ClearFavorites},
	"history":        {auth: true, run: (*App).History},
	"unhistory":      {auth: true, run: (*App).RemoveFromHistory},
	"clearhistory":   {auth: true, run: (*App).ClearHistory},

	"calc":    {run: (*App).Calculate},
	"convert": {run: (*App).Convert},

	"track":           {run: (*App).Track},
	"shipments":       {auth: true, run: (*App).Shipments},
	"newshipment":     {auth: true, run: (*App).NewShipment},
	"review":          {auth: true, run: (*App).Review},
	"registercompany": {auth: true, run: (*App).RegisterCompany},

	"lang":       {run: (*App).Lang},
	"clearcache": {auth: true, run: (*App).ClearCache},
	"cleardata":  {auth: true, run: (*App).ClearData},
}

// runREPL is a simple read–eval–print loop for the Drop Logistics CLI.
//
// It reads a line, parses the first token as the command and dispatches it
// through the commands table. The loop exits on EOF or when the user types
// "exit" or "quit".
//
// Handlers print their own translated messages; an error returned by a
// handler is logged and reported with the generic error label. This keeps
// the loop resilient and focused on I/O.
func (a *App) runREPL(ctx context.Context) {
	a.println(a.t().Welcome)
	for {
		a.printf("drop %s> ", a.getStatus())
		line, err := a.reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) > 0 && !a.exec(ctx, parts[0], parts[1:]) {
			return
		}
		if err != nil {
			return
		}
	}
}

// exec runs one command and reports whether the REPL should continue.
func (a *App) exec(ctx context.Context, name string, args []string) bool {
	t := a.t()

	switch name {
	case "help":
		if a.isLoggedIn() {
			a.printf("%s", t.HelpLoggedIn)
		} else {
			a.printf("%s", t.HelpLoggedOut)
		}
		return true
	case "exit", "quit":
		a.println(t.Bye)
		return false
	}

	cmd, ok := commands[strings.ToLower(name)]
	if !ok {
		a.println(t.UnknownCommand)
		return true
	}
	if cmd.auth && !a.isLoggedIn() {
		a.println(t.NotLoggedIn)
		return true
	}

	if err := cmd.run(a, ctx, args); err != nil {
		a.log.Error(ctx, "command failed", "command", name, "error", err)
		a.println(fmt.Sprintf("%s: %s", a.t().Error, err))
	}
	return true
}

// usage prints the usage line of a command.
func (a *App) usage(line string) {
	a.println(fmt.Sprintf("%s: %s", a.t().Usage, line))
}
