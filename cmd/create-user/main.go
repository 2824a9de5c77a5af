// Command create-user bootstraps an account directly in the users
// collection, bypassing the API. It exists for first-run setup: the login
// endpoint refuses to authenticate until at least one user exists.
//
//	create-user -username martine -password <secret> -role admin
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/collectif-avenir/campaign-api/internal/core/service"
	"github.com/collectif-avenir/campaign-api/internal/infrastructure/config"
	"github.com/collectif-avenir/campaign-api/internal/infrastructure/storage/jsonfile"
	"github.com/collectif-avenir/campaign-api/pkg/logger"
)

func main() {
	username := flag.String("username", "", "login name (required)")
	password := flag.String("password", "", "password, 8 characters minimum (required)")
	role := flag.String("role", "editor", "account role: admin or editor")
	flag.Parse()

	if *username == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: create-user -username <login> -password <password> [-role admin|editor]")
		os.Exit(1)
	}

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Level: "warn", Pretty: true})

	store, err := jsonfile.NewStore(cfg.DataDir, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "storage error: %v\n", err)
		os.Exit(1)
	}

	users := service.NewUserService(jsonfile.NewUserRepository(store), log)
	user, err := users.Create(ctx, *username, *password, *role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create user failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("user created: %s (%s)\n", user.Username, user.Role)
}
