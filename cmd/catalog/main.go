// Command catalog runs the catalog use cases against a configured storage backend.
//
// Usage:
//
//	catalog [-adapter pgx.pool|sql.db|sqlx.db|memory] [-trace] [-debug] <command> [flags]
//
// Commands:
//
//	create-author -first <name> -last <name>
//	rename-author -id <id> -first <name> -last <name>
//	create-book   -name <name> -pages <n> -authors <id,id,...>
//	update-book   -id <id> -name <name> -pages <n> -authors <id,id,...>
//	list-books
//
// The connection is configured by the CATALOG_* environment variables, optionally loaded from a .env file.
// The memory adapter keeps no state between invocations.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/AntonStoeckl/catalog-uow-go/catalog/core"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/features/command/createauthor"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/features/command/createbook"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/features/command/renameauthor"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/features/command/updatebook"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/features/projection/bookprojector"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell/config"
	"github.com/AntonStoeckl/catalog-uow-go/catalog/shell/observable"
	"github.com/AntonStoeckl/catalog-uow-go/eventstore"
)

var (
	errUnknownCommand = errors.New("unknown command")
	errMissingCommand = errors.New("missing command")
	errInvalidFlag    = errors.New("invalid flag value")
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "catalog:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg, err := config.LoadPostgresConfig()
	if err != nil {
		return err
	}

	global := flag.NewFlagSet("catalog", flag.ContinueOnError)
	adapter := global.String("adapter", cfg.AdapterType, "storage adapter: pgx.pool, sql.db, sqlx.db or memory")
	trace := global.Bool("trace", false, "write spans to stderr")
	debug := global.Bool("debug", false, "enable debug logging")
	if err = global.Parse(args); err != nil {
		return err
	}

	cfg.AdapterType = *adapter
	if err = cfg.Validate(); err != nil {
		return err
	}

	if global.NArg() == 0 {
		return errMissingCommand
	}

	var spanOut io.Writer
	if *trace {
		spanOut = os.Stderr
	}

	obs, err := initObservability(ctx, spanOut, *debug)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = obs.shutdown(shutdownCtx)
	}()

	store, closeStore, err := openCatalog(ctx, cfg, obs)
	if err != nil {
		return err
	}
	defer closeStore()

	return dispatch(ctx, store, obs, global.Arg(0), global.Args()[1:], stdout)
}

func dispatch(ctx context.Context, store catalog, obs *instruments, command string, args []string, stdout io.Writer) error {
	projector := bookprojector.NewProjector(obs.logger)

	switch command {
	case "create-author":
		flags := flag.NewFlagSet(command, flag.ContinueOnError)
		first := flags.String("first", "", "first name")
		last := flags.String("last", "", "last name")
		if err := flags.Parse(args); err != nil {
			return err
		}

		handler, err := createauthor.NewCommandHandler(store)
		if err != nil {
			return err
		}

		return execute(ctx, obs, handler, createauthor.BuildCommand(*first, *last), stdout)

	case "rename-author":
		flags := flag.NewFlagSet(command, flag.ContinueOnError)
		id := flags.Int64("id", 0, "author id")
		first := flags.String("first", "", "first name")
		last := flags.String("last", "", "last name")
		if err := flags.Parse(args); err != nil {
			return err
		}

		handler, err := renameauthor.NewCommandHandler(store)
		if err != nil {
			return err
		}

		return execute(ctx, obs, handler, renameauthor.BuildCommand(*id, *first, *last), stdout)

	case "create-book":
		flags := flag.NewFlagSet(command, flag.ContinueOnError)
		name := flags.String("name", "", "book name")
		pages := flags.Int("pages", 0, "pages count")
		authors := flags.String("authors", "", "comma separated author ids")
		if err := flags.Parse(args); err != nil {
			return err
		}

		authorIDs, err := parseAuthorIDs(*authors)
		if err != nil {
			return err
		}

		handler, err := createbook.NewCommandHandler(store, projector.Handle)
		if err != nil {
			return err
		}

		return execute(ctx, obs, handler, createbook.BuildCommand(*name, *pages, authorIDs), stdout)

	case "update-book":
		flags := flag.NewFlagSet(command, flag.ContinueOnError)
		id := flags.Int64("id", 0, "book id")
		name := flags.String("name", "", "book name")
		pages := flags.Int("pages", 0, "pages count")
		authors := flags.String("authors", "", "comma separated author ids")
		if err := flags.Parse(args); err != nil {
			return err
		}

		authorIDs, err := parseAuthorIDs(*authors)
		if err != nil {
			return err
		}

		handler, err := updatebook.NewCommandHandler(store, projector.Handle)
		if err != nil {
			return err
		}

		return execute(ctx, obs, handler, updatebook.BuildCommand(*id, *name, *pages, authorIDs), stdout)

	case "list-books":
		history, err := store.ReadMatching(ctx, eventstore.FilterByNames(core.BookCreatedEventName, core.BookRenamedEventName))
		if err != nil {
			return err
		}

		titles, err := bookprojector.Project(history)
		if err != nil {
			return err
		}

		ids := make([]core.BookID, 0, len(titles))
		for id := range titles {
			ids = append(ids, id)
		}
		slices.Sort(ids)

		for _, id := range ids {
			fmt.Fprintf(stdout, "%d\t%s\n", id, titles[id])
		}

		return nil

	default:
		return errors.Join(errUnknownCommand, errors.New(command))
	}
}

func execute[C shell.Command](
	ctx context.Context,
	obs *instruments,
	handler shell.CoreCommandHandler[C],
	command C,
	stdout io.Writer,
) error {
	wrapper, err := observable.NewCommandWrapper(
		handler,
		observable.WithCommandLogging[C](obs.logger),
		observable.WithCommandContextualLogging[C](obs.contextualLogger),
		observable.WithCommandMetrics[C](obs.metrics),
		observable.WithCommandTracing[C](obs.tracing),
	)
	if err != nil {
		return err
	}

	result, err := wrapper.Handle(ctx, command)
	if err != nil {
		return err
	}

	outcome := shell.StatusSuccess
	if result.Idempotent {
		outcome = shell.StatusIdempotent
	}

	fmt.Fprintf(stdout, "%s %s id=%d\n", command.CommandType(), outcome, result.AggregateID)

	return nil
}

func parseAuthorIDs(raw string) (core.AuthorIDs, error) {
	authorIDs := core.AuthorIDs{}
	if strings.TrimSpace(raw) == "" {
		return authorIDs, nil
	}

	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, errors.Join(errInvalidFlag, err)
		}
		authorIDs = append(authorIDs, id)
	}

	return authorIDs, nil
}
