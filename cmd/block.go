///////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                              //
//                                                                           //
// Use of this source code is governed by a license that can be found in the //
// LICENSE file                                                              //
///////////////////////////////////////////////////////////////////////////////

// The block subcommand manages the local block list.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"gitlab.com/stride/client/storage/relationship"
)

var blockCmd = &cobra.Command{
	Use:   "block",
	Short: "Manage the list of blocked users",
	Args:  cobra.NoArgs,
}

var blockAddCmd = &cobra.Command{
	Use:   "add <uid>",
	Short: "Block a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uid, err := uidArg(args)
		if err != nil {
			return err
		}
		return withRelationships(func(store *relationship.Store) error {
			if err = store.Block(uid); err != nil {
				jww.ERROR.Printf("Failed to block %d: %+v", uid, err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Blocked %d\n", uid)
			return nil
		})
	},
}

var blockRemoveCmd = &cobra.Command{
	Use:   "remove <uid>",
	Short: "Unblock a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uid, err := uidArg(args)
		if err != nil {
			return err
		}
		return withRelationships(func(store *relationship.Store) error {
			if err = store.Unblock(uid); err != nil {
				jww.ERROR.Printf("Failed to unblock %d: %+v", uid, err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unblocked %d\n", uid)
			return nil
		})
	},
}

var blockListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the blocked users in the order they were blocked",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRelationships(func(store *relationship.Store) error {
			blocked := store.GetBlockedUsers()
			if len(blocked) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No blocked users")
				return nil
			}
			for _, uid := range blocked {
				fmt.Fprintln(cmd.OutOrStdout(), uid)
			}
			return nil
		})
	},
}

func init() {
	blockCmd.AddCommand(blockAddCmd)
	blockCmd.AddCommand(blockRemoveCmd)
	blockCmd.AddCommand(blockListCmd)
	rootCmd.AddCommand(blockCmd)
}
