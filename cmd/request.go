///////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                              //
//                                                                           //
// Use of this source code is governed by a license that can be found in the //
// LICENSE file                                                              //
///////////////////////////////////////////////////////////////////////////////

// The request subcommand reads and changes message request statuses.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"gitlab.com/stride/client/storage/relationship"
)

var requestCmd = &cobra.Command{
	Use:   "request",
	Short: "Read or change the message request status of a user",
	Args:  cobra.NoArgs,
}

var requestStatusCmd = &cobra.Command{
	Use:   "status <uid>",
	Short: "Print the message request status of a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uid, err := uidArg(args)
		if err != nil {
			return err
		}
		return withRelationships(func(store *relationship.Store) error {
			status, exists := store.GetRequestStatus(uid)
			if !exists {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: no request\n", uid)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", uid, status)
			return nil
		})
	},
}

// requestMutation builds a subcommand that applies op to the user ID given
// as its argument and confirms with msg.
func requestMutation(use, short, msg string,
	op func(store *relationship.Store, uid uint64) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <uid>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := uidArg(args)
			if err != nil {
				return err
			}
			return withRelationships(func(store *relationship.Store) error {
				if err = op(store, uid); err != nil {
					jww.ERROR.Printf("Failed to %s request for %d: %+v",
						use, uid, err)
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), msg+"\n", uid)
				return nil
			})
		},
	}
}

func init() {
	requestCmd.AddCommand(requestStatusCmd)
	requestCmd.AddCommand(requestMutation("accept",
		"Accept the message request of a user", "Accepted request from %d",
		(*relationship.Store).AcceptRequest))
	requestCmd.AddCommand(requestMutation("decline",
		"Decline the message request of a user", "Declined request from %d",
		(*relationship.Store).DeclineRequest))
	requestCmd.AddCommand(requestMutation("receive",
		"Record an incoming message request from a user",
		"Recorded request from %d", (*relationship.Store).ReceiveRequest))
	requestCmd.AddCommand(requestMutation("delete",
		"Forget the message request status of a user",
		"Deleted request status of %d", (*relationship.Store).DeleteRequest))

	rootCmd.AddCommand(requestCmd)
}
