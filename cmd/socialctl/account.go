package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"masterboxer.com/social-network/actions"
	"masterboxer.com/social-network/config"
	"masterboxer.com/social-network/models"
)

var registerCmd = &cobra.Command{
	Use:     "register <username> <full-name> <email>",
	Short:   "Create an account",
	GroupID: "account",
	Args:    cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, _ := cmd.Flags().GetString("password")
		avatar, _ := cmd.Flags().GetString("avatar")
		if password == "" {
			return fmt.Errorf("--password is required")
		}

		u, err := api.Register(context.Background(), models.User{
			Username: args[0],
			FullName: args[1],
			Email:    args[2],
			Avatar:   avatar,
			Password: password,
		})
		if err != nil {
			return fmt.Errorf("registering: %w", err)
		}
		if jsonOutput {
			return printJSON(u)
		}
		fmt.Printf("Registered %s (%s)\n", u.Username, u.ID)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:     "login <username>",
	Short:   "Log in and remember the session",
	GroupID: "account",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, _ := cmd.Flags().GetString("password")
		ctx := context.Background()

		token, uid, err := api.Login(ctx, args[0], password)
		if err != nil {
			return fmt.Errorf("logging in: %w", err)
		}
		cfg.Token = token
		cfg.UserID = uid
		if err := config.SaveClient(configPath, cfg); err != nil {
			return err
		}

		st.Dispatch(actions.Login(uid))
		act.DBGetUserInfo(ctx, uid)
		if err := storeError(st); err != nil {
			return err
		}
		info := st.GetState().User.Info[uid]
		fmt.Printf("Logged in as %s (%s)\n", info.FullName, uid)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:     "logout",
	Short:   "Forget the stored session",
	GroupID: "account",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg.Token = ""
		cfg.UserID = ""
		if err := config.SaveClient(configPath, cfg); err != nil {
			return err
		}
		fmt.Println("Logged out")
		return nil
	},
}

func init() {
	registerCmd.Flags().String("password", "", "account password")
	registerCmd.Flags().String("avatar", "", "avatar URL")
	loginCmd.Flags().String("password", "", "account password")
	_ = loginCmd.MarkFlagRequired("password")
}
