package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-task-keeper/internal/adapter"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

var errUnknownCommand = errors.New("unknown command")

func main() {
	printBuildInfo()

	log := logger.NewLogger("task-keeper-client")

	var (
		server      = flag.String("server", "http://localhost:8080", "task-keeper server address")
		token       = flag.String("token", "", "session token for authenticated commands")
		username    = flag.String("username", "", "account username")
		password    = flag.String("password", "", "account password")
		description = flag.String("description", "", "task description (add) or substring filter (list, count)")
		completed   = flag.String("completed", "", "completion filter for list and count: true or false")
		timeout     = flag.Duration("timeout", 10*time.Second, "request timeout")
	)
	flag.Parse()

	serverAdapter, err := adapter.NewHTTPServerAdapter(*server, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}
	serverAdapter.SetToken(*token)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	opts := commandOptions{
		username:    *username,
		password:    *password,
		description: *description,
		completed:   *completed,
	}

	if err := run(ctx, os.Stdout, serverAdapter, flag.Arg(0), flag.Arg(1), opts); err != nil {
		log.Fatal().Err(err).Str("command", flag.Arg(0)).Msg("command failed")
	}
}

type commandOptions struct {
	username    string
	password    string
	description string
	completed   string
}

// run выполняет одну команду против сервера и печатает результат в out.
func run(ctx context.Context, out io.Writer, a adapter.ServerAdapter, command, arg string, opts commandOptions) error {
	switch command {
	case "register":
		info, err := a.Register(ctx, opts.username, opts.password)
		if err != nil {
			return err
		}
		return printJSON(out, info)
	case "login":
		resp, err := a.Login(ctx, opts.username, opts.password)
		if err != nil {
			return err
		}
		return printJSON(out, resp)
	case "logout":
		return a.Logout(ctx)
	case "add":
		item, err := a.CreateTodo(ctx, opts.description)
		if err != nil {
			return err
		}
		return printJSON(out, item)
	case "get":
		id, err := parseID(arg)
		if err != nil {
			return err
		}
		item, err := a.GetTodo(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(out, item)
	case "complete":
		id, err := parseID(arg)
		if err != nil {
			return err
		}
		item, err := a.CompleteTodo(ctx, id)
		if err != nil {
			return err
		}
		return printJSON(out, item)
	case "delete":
		id, err := parseID(arg)
		if err != nil {
			return err
		}
		return a.DeleteTodo(ctx, id)
	case "list":
		filter, err := buildFilter(opts)
		if err != nil {
			return err
		}
		items, err := a.ListTodos(ctx, filter)
		if err != nil {
			return err
		}
		return printJSON(out, items)
	case "count":
		filter, err := buildFilter(opts)
		if err != nil {
			return err
		}
		count, err := a.CountTodos(ctx, filter)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, count)
		return err
	case "":
		return fmt.Errorf("%w: expected one of register, login, logout, add, get, complete, delete, list, count", errUnknownCommand)
	default:
		return fmt.Errorf("%w: %s", errUnknownCommand, command)
	}
}

func parseID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid task id %q: %w", arg, err)
	}

	return id, nil
}

func buildFilter(opts commandOptions) (models.TodoFilter, error) {
	var filter models.TodoFilter

	if opts.description != "" {
		filter.Description = &opts.description
	}

	if opts.completed != "" {
		done, err := strconv.ParseBool(opts.completed)
		if err != nil {
			return models.TodoFilter{}, fmt.Errorf("invalid completed filter %q: %w", opts.completed, err)
		}
		filter.Completed = &done
	}

	return filter, nil
}

func printJSON(out io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, string(data))

	return err
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
