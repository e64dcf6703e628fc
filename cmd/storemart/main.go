package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/Taosaywong/storemart/internal/auth"
	"github.com/Taosaywong/storemart/internal/cache"
	"github.com/Taosaywong/storemart/internal/config"
	"github.com/Taosaywong/storemart/internal/domain"
	"github.com/Taosaywong/storemart/internal/rest"
)

// app carries the wired-up client stack shared by all commands.
type app struct {
	cfg     *config.Config
	client  *rest.Client
	session *auth.Session
	cache   cache.ProductCache
	user    *domain.User
}

// storedSession is what login persists between CLI invocations.
type storedSession struct {
	Access  string      `json:"access"`
	Refresh string      `json:"refresh"`
	User    domain.User `json:"user"`
}

var (
	configPath string
	branchID   int64
)

func sessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".storemart.json"
	}
	return filepath.Join(home, ".storemart.json")
}

func loadStoredSession() (*storedSession, error) {
	data, err := os.ReadFile(sessionPath())
	if err != nil {
		return nil, err
	}
	var s storedSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("corrupt session file: %w", err)
	}
	return &s, nil
}

func saveStoredSession(s *storedSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(sessionPath(), data, 0600)
}

func removeStoredSession() error {
	err := os.Remove(sessionPath())
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// newApp wires config, REST client, advisory cache and the saved session.
// The session doubles as the client's token source, so a refreshed access
// token is picked up by the next request automatically.
func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	client := rest.NewClient(cfg.BaseURL, rest.WithTimeout(cfg.RequestTimeout))
	session := auth.NewSession(client)
	client.SetTokenSource(session)

	a := &app{
		cfg:     cfg,
		client:  client,
		session: session,
	}
	if stored, err := loadStoredSession(); err == nil {
		session.Restore(stored.Access, stored.Refresh, &stored.User)
		a.user = &stored.User
	}
	if cfg.RedisAddr != "" {
		a.cache = cache.NewRedisCache(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}
	return a, nil
}

func (a *app) requireUser() (*domain.User, error) {
	if a.user == nil {
		return nil, fmt.Errorf("not logged in, run `storemart login` first")
	}
	return a.user, nil
}

// branchScope resolves the branch the command operates on: the flag wins,
// staff and managers fall back to their assigned branch.
func (a *app) branchScope() (int64, error) {
	if branchID != 0 {
		return branchID, nil
	}
	if a.user != nil && a.user.BranchID != 0 {
		return a.user.BranchID, nil
	}
	return 0, fmt.Errorf("no branch selected, pass --branch")
}

func main() {
	root := &cobra.Command{
		Use:           "storemart",
		Short:         "StoreMart storefront client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to .env config file")
	root.PersistentFlags().Int64Var(&branchID, "branch", 0, "branch to operate on")

	root.AddCommand(
		loginCmd(),
		logoutCmd(),
		registerCmd(),
		cartCmd(),
		checkoutCmd(),
		ordersCmd(),
		orderCmd(),
		productsCmd(),
		branchesCmd(),
		reviewCmd(),
		reportCmd(),
		revenueCmd(),
		customerCmd(),
		usersCmd(),
	)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
