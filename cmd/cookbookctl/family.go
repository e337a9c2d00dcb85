package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	familyCmd := &cobra.Command{Use: "family", Short: "Family, member and invite operations"}

	// list
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all families",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet("/api/families")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	familyCmd.AddCommand(listCmd)

	// current
	currentCmd := &cobra.Command{
		Use:   "current",
		Short: "Show the active family",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet("/api/families/current")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	familyCmd.AddCommand(currentCmd)

	// create
	var famName, creatorEmail string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a family",
		RunE: func(cmd *cobra.Command, args []string) error {
			if famName == "" || creatorEmail == "" {
				return fmt.Errorf("--name and --email required")
			}
			payload := map[string]interface{}{"name": famName, "creatorEmail": creatorEmail}
			data, err := doPostJSON("/api/families", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	createCmd.Flags().StringVarP(&famName, "name", "n", "", "Family name (required)")
	createCmd.Flags().StringVarP(&creatorEmail, "email", "e", "", "Creator email, becomes the head member (required)")
	_ = createCmd.MarkFlagRequired("name")
	_ = createCmd.MarkFlagRequired("email")
	familyCmd.AddCommand(createCmd)

	// invite
	var inviteEmail, inviteRole string
	inviteCmd := &cobra.Command{
		Use:   "invite FAMILY_ID",
		Short: "Invite someone to a family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if inviteEmail == "" {
				return fmt.Errorf("--email required")
			}
			payload := map[string]interface{}{"email": inviteEmail, "role": inviteRole}
			data, err := doPostJSON("/api/families/"+args[0]+"/invites", payload)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	inviteCmd.Flags().StringVarP(&inviteEmail, "email", "e", "", "Invitee email (required)")
	inviteCmd.Flags().StringVarP(&inviteRole, "role", "r", "contributor", "Role to grant (head or contributor)")
	_ = inviteCmd.MarkFlagRequired("email")
	familyCmd.AddCommand(inviteCmd)

	// invites
	invitesCmd := &cobra.Command{
		Use:   "invites",
		Short: "List pending invites",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet("/api/invites")
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	familyCmd.AddCommand(invitesCmd)

	// accept
	var acceptName string
	acceptCmd := &cobra.Command{
		Use:   "accept INVITE_ID",
		Short: "Accept an invite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if acceptName == "" {
				return fmt.Errorf("--name required")
			}
			data, err := doPostJSON("/api/invites/"+args[0]+"/accept", map[string]interface{}{"name": acceptName})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	acceptCmd.Flags().StringVarP(&acceptName, "name", "n", "", "Display name for the new member (required)")
	_ = acceptCmd.MarkFlagRequired("name")
	familyCmd.AddCommand(acceptCmd)

	// remove-member
	removeCmd := &cobra.Command{
		Use:   "remove-member FAMILY_ID MEMBER_ID",
		Short: "Remove a member from a family",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return doDelete("/api/families/" + args[0] + "/members/" + args[1])
		},
	}
	familyCmd.AddCommand(removeCmd)

	rootCmd.AddCommand(familyCmd)
}
