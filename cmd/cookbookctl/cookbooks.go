package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cookbooksCmd := &cobra.Command{Use: "cookbooks", Short: "Cookbook operations"}

	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all cookbooks",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet("/api/cookbooks")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	cookbooksCmd.AddCommand(listCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get COOKBOOK_ID",
		Short: "Get cookbook by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet("/api/cookbooks/" + args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	cookbooksCmd.AddCommand(getCmd)

	// create
	var name, subtitle, theme, coverImage string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a cookbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name required")
			}
			payload := map[string]interface{}{"name": name}
			if subtitle != "" {
				payload["subtitle"] = subtitle
			}
			if theme != "" {
				payload["theme"] = theme
			}
			if coverImage != "" {
				payload["coverImage"] = coverImage
			}
			data, err := doPostJSON("/api/cookbooks", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&name, "name", "n", "", "Cookbook name (required)")
	createCmd.Flags().StringVarP(&subtitle, "subtitle", "s", "", "Cookbook subtitle")
	createCmd.Flags().StringVarP(&theme, "theme", "t", "", "Theme (warm, cool, neutral)")
	createCmd.Flags().StringVarP(&coverImage, "cover", "c", "", "Cover image URL")
	_ = createCmd.MarkFlagRequired("name")
	cookbooksCmd.AddCommand(createCmd)

	// delete
	deleteCmd := &cobra.Command{
		Use:   "delete COOKBOOK_ID",
		Short: "Delete a cookbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doDelete("/api/cookbooks/" + args[0])
		},
	}
	cookbooksCmd.AddCommand(deleteCmd)

	// duplicate
	var dupName string
	duplicateCmd := &cobra.Command{
		Use:   "duplicate COOKBOOK_ID",
		Short: "Duplicate a cookbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dupName == "" {
				return fmt.Errorf("--name required")
			}
			data, err := doPostJSON("/api/cookbooks/"+args[0]+"/duplicate", map[string]interface{}{"name": dupName})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	duplicateCmd.Flags().StringVarP(&dupName, "name", "n", "", "Name for the copy (required)")
	_ = duplicateCmd.MarkFlagRequired("name")
	cookbooksCmd.AddCommand(duplicateCmd)

	// current
	currentCmd := &cobra.Command{
		Use:   "current",
		Short: "Show the currently selected cookbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet("/api/cookbooks/current")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	cookbooksCmd.AddCommand(currentCmd)

	// select
	selectCmd := &cobra.Command{
		Use:   "select COOKBOOK_ID",
		Short: "Make a cookbook the current selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := doPutJSON("/api/cookbooks/current", map[string]interface{}{"id": args[0]}); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, "current cookbook set to", args[0])
			return nil
		},
	}
	cookbooksCmd.AddCommand(selectCmd)

	rootCmd.AddCommand(cookbooksCmd)
}
