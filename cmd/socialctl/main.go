package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"masterboxer.com/social-network/actions"
	"masterboxer.com/social-network/client"
	"masterboxer.com/social-network/config"
	"masterboxer.com/social-network/logging"
	"masterboxer.com/social-network/store"
)

var (
	configPath string
	serverURL  string
	jsonOutput bool
	debug      bool

	cfg *config.Client
	api *client.Client
	st  *store.Store
	act *actions.Actions
)

var rootCmd = &cobra.Command{
	Use:           "socialctl <command>",
	Short:         "Command-line client for the social network",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := logging.New(debug); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		var err error
		cfg, err = config.LoadClient(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("server") {
			cfg.ServerURL = serverURL
		}

		api = client.New(cfg.ServerURL, client.WithToken(cfg.Token))
		st, act = newSession(api, cfg.UserID)
		return nil
	},
}

// newSession builds a store and action creators backed by c, logged in as
// uid when it is set.
func newSession(c *client.Client, uid string) (*store.Store, *actions.Actions) {
	s := store.New()
	if uid != "" {
		s.Dispatch(actions.Login(uid))
	}
	return s, actions.New(s, actions.Services{
		Comments:      c,
		Notifications: c,
		Circles:       c,
		Posts:         c,
		Users:         c,
	})
}

// storeError reports the message an action surfaced, if any.
func storeError(s *store.Store) error {
	if g := s.GetState().Global; g.MessageOpen {
		return errors.New(g.Message)
	}
	return nil
}

func requireLogin() error {
	if cfg.UserID == "" || cfg.Token == "" {
		return errors.New("not logged in, run `socialctl login` first")
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultClientPath(), "config file path")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "backend URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug logging")

	rootCmd.AddGroup(
		&cobra.Group{ID: "account", Title: "Account:"},
		&cobra.Group{ID: "social", Title: "Social:"},
	)

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)

	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(commentCmd)
	rootCmd.AddCommand(followingCmd)
	rootCmd.AddCommand(followCmd)
	rootCmd.AddCommand(unfollowCmd)
	rootCmd.AddCommand(notificationsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
