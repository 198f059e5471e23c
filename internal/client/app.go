// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/MKhiriev/go-budget-tracker/internal/service"
	"github.com/MKhiriev/go-budget-tracker/models"
)

type command struct {
	usage   string
	minArgs int
	// maxArgs < 0 means any number of trailing arguments.
	maxArgs int
	run     func(ctx context.Context, args []string) (any, error)
}

type App struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	out       io.Writer
	logger    *logger.Logger

	commands map[string]command
}

func NewApp(services *service.ClientServices, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errNoServices
	}

	a := &App{
		services:  services,
		buildInfo: buildInfo,
		out:       out,
		logger:    logger,
	}

	a.commands = map[string]command{
		"register":       {usage: "register <username> <email> <password>", minArgs: 3, maxArgs: 3, run: a.register},
		"login":          {usage: "login <email> <password>", minArgs: 2, maxArgs: 2, run: a.login},
		"logout":         {usage: "logout", run: a.logout},
		"profile":        {usage: "profile", run: a.profile},
		"budget":         {usage: "budget <total>", minArgs: 1, maxArgs: 1, run: a.budget},
		"email":          {usage: "email <new-email>", minArgs: 1, maxArgs: 1, run: a.email},
		"add":            {usage: "add <income|expense> <amount> <subcategory> <YYYY-MM-DD> [description]", minArgs: 4, maxArgs: -1, run: a.add},
		"list":           {usage: "list [subcategory]", maxArgs: 1, run: a.list},
		"get":            {usage: "get <id>", minArgs: 1, maxArgs: 1, run: a.get},
		"delete":         {usage: "delete <id>", minArgs: 1, maxArgs: 1, run: a.delete},
		"summary":        {usage: "summary", run: a.summary},
		"reset":          {usage: "reset", run: a.reset},
		"delete-account": {usage: "delete-account", run: a.deleteAccount},
		"version":        {usage: "version", run: a.version},
	}

	return a, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrNoCommand, a.Usage())
	}

	name, args := args[0], args[1:]
	cmd, ok := a.commands[name]
	if !ok {
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, name, a.Usage())
	}
	if len(args) < cmd.minArgs || (cmd.maxArgs >= 0 && len(args) > cmd.maxArgs) {
		return fmt.Errorf("%w, usage: %s", ErrUsage, cmd.usage)
	}

	a.logger.Debug().Str("command", name).Msg("running command")

	result, err := cmd.run(ctx, args)
	if err != nil {
		a.logger.Err(err).Str("command", name).Msg("command failed")
		return err
	}

	return a.print(result)
}

// Usage lists every command, one per line.
func (a *App) Usage() string {
	lines := make([]string, 0, len(a.commands))
	for _, cmd := range a.commands {
		lines = append(lines, "  "+cmd.usage)
	}
	sort.Strings(lines)

	return "commands:\n" + strings.Join(lines, "\n")
}

func (a *App) print(result any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	return nil
}
