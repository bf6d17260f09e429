package main

// This binary hosts the todo API. The store is selected with
// TODOLIST_STORE_TYPE and the runtime mode with TODOLIST_BUILD_MODE. The
// native lambda modes also need TODOLIST_TARGET_FUNCTION. Run with -h to
// list every setting.
//
// With the default http mode the REST resources can be called like:
//
//		curl --request POST --data '{"title": "buy milk"}' localhost:8080/v1/todo
//		curl localhost:8080/v2/todo/<id>
//
// and any function can be called through the Invoke API:
//
//		curl --request POST --data '{"pathParameters": {"id": "<id>"}}' \
//			'localhost:8080/2015-03-31/functions/todo-api-get-item-fn/invocations?Qualifier=get-item-v1'

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/asecurityteam/settings/v2"
	"github.com/asecurityteam/todolist"
	"github.com/asecurityteam/todolist/pkg/store"
)

func main() {
	ctx := context.Background()

	// Handle the -h flag and print settings.
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.Usage = func() {}
	err := fs.Parse(os.Args[1:])
	if err == flag.ErrHelp {
		fmt.Println(todolist.HelpStatic())
		return
	}

	source, err := settings.NewEnvSource(os.Environ())
	if err != nil {
		panic(err.Error())
	}
	table := new(store.Table)
	err = settings.NewComponent(
		ctx,
		&settings.PrefixSource{Source: source, Prefix: []string{"todolist"}},
		store.NewComponent(),
		table,
	)
	if err != nil {
		panic(err.Error())
	}

	if mode := os.Getenv("TODOLIST_BUILD_MODE"); mode != "" {
		todolist.BuildMode = mode
	}
	if target := os.Getenv("TODOLIST_TARGET_FUNCTION"); target != "" {
		todolist.TargetFunction = target
	}
	fetcher := &todolist.StaticFetcher{Functions: todolist.NewFunctions(table)}
	if err := todolist.Start(ctx, source, fetcher); err != nil {
		panic(err.Error())
	}
}
