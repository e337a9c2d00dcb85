package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	recipesCmd := &cobra.Command{Use: "recipes", Short: "Recipe operations on the current cookbook"}

	// list
	var query string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes, optionally filtered by a search term",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/cookbooks/current/recipes"
			if query != "" {
				path += "?q=" + url.QueryEscape(query)
			}
			data, err := doGet(path)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	listCmd.Flags().StringVarP(&query, "query", "q", "", "Search term (title, description, ingredients)")
	recipesCmd.AddCommand(listCmd)

	// get
	getCmd := &cobra.Command{
		Use:   "get RECIPE_ID",
		Short: "Get recipe by ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet("/api/cookbooks/current/recipes/" + args[0])
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	recipesCmd.AddCommand(getCmd)

	// create
	var title, description string
	var prepTime, cookTime int
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a recipe",
		RunE: func(cmd *cobra.Command, args []string) error {
			if title == "" {
				return fmt.Errorf("--title required")
			}
			payload := map[string]interface{}{
				"title":    title,
				"prepTime": prepTime,
				"cookTime": cookTime,
			}
			if description != "" {
				payload["description"] = description
			}
			data, err := doPostJSON("/api/cookbooks/current/recipes", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&title, "title", "t", "", "Recipe title (required)")
	createCmd.Flags().StringVarP(&description, "description", "d", "", "Recipe description")
	createCmd.Flags().IntVarP(&prepTime, "prep", "p", 0, "Prep time in minutes")
	createCmd.Flags().IntVarP(&cookTime, "cook", "c", 0, "Cook time in minutes")
	_ = createCmd.MarkFlagRequired("title")
	recipesCmd.AddCommand(createCmd)

	// delete
	deleteCmd := &cobra.Command{
		Use:   "delete RECIPE_ID",
		Short: "Delete a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doDelete("/api/cookbooks/current/recipes/" + args[0])
		},
	}
	recipesCmd.AddCommand(deleteCmd)

	// reset
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Remove all recipes from the current cookbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			return doDelete("/api/cookbooks/current/recipes")
		},
	}
	recipesCmd.AddCommand(resetCmd)

	rootCmd.AddCommand(recipesCmd)
}
