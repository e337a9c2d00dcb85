package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	authCmd := &cobra.Command{Use: "auth", Short: "Account operations"}

	// register
	var regEmail, regPassword, regName string
	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Register an account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if regEmail == "" || regPassword == "" {
				return fmt.Errorf("--email and --password required")
			}
			payload := map[string]interface{}{"email": regEmail, "password": regPassword}
			if regName != "" {
				payload["name"] = regName
			}
			data, err := doPostJSON("/api/auth/register", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	registerCmd.Flags().StringVarP(&regEmail, "email", "e", "", "Account email (required)")
	registerCmd.Flags().StringVarP(&regPassword, "password", "p", "", "Password (required)")
	registerCmd.Flags().StringVarP(&regName, "name", "n", "", "Display name")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")
	authCmd.AddCommand(registerCmd)

	// login
	var loginEmail, loginPassword string
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Verify credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			if loginEmail == "" || loginPassword == "" {
				return fmt.Errorf("--email and --password required")
			}
			payload := map[string]interface{}{"email": loginEmail, "password": loginPassword}
			data, err := doPostJSON("/api/auth/login", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email (required)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (required)")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
	authCmd.AddCommand(loginCmd)

	rootCmd.AddCommand(authCmd)

	// permissions
	var permEmail, permCookbook string
	permissionsCmd := &cobra.Command{
		Use:   "permissions",
		Short: "Evaluate permissions for a member email",
		RunE: func(cmd *cobra.Command, args []string) error {
			if permEmail == "" {
				return fmt.Errorf("--email required")
			}
			q := url.Values{}
			q.Set("email", permEmail)
			if permCookbook != "" {
				q.Set("cookbookId", permCookbook)
			}
			data, err := doGet("/api/permissions?" + q.Encode())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	permissionsCmd.Flags().StringVarP(&permEmail, "email", "e", "", "Member email (required)")
	permissionsCmd.Flags().StringVarP(&permCookbook, "cookbook", "c", "", "Cookbook ID for access checks")
	_ = permissionsCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(permissionsCmd)
}
