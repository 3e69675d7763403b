///////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                              //
//                                                                           //
// Use of this source code is governed by a license that can be found in the //
// LICENSE file                                                              //
///////////////////////////////////////////////////////////////////////////////

// The conversation subcommand reads and changes per-conversation settings.

package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"
	"gitlab.com/stride/client/cmdUtils"
	"gitlab.com/stride/client/storage/relationship"
	"gitlab.com/xx_network/primitives/netTime"
)

const conversationTouchAtFlag = "at"

var conversationCmd = &cobra.Command{
	Use:   "conversation",
	Short: "Read or change the local settings of a conversation",
	Args:  cobra.NoArgs,
}

var conversationShowCmd = &cobra.Command{
	Use:   "show <uid>",
	Short: "Print the metadata of the conversation with a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uid, err := uidArg(args)
		if err != nil {
			return err
		}
		return withRelationships(func(store *relationship.Store) error {
			data, err := json.MarshalIndent(
				store.GetConversationMetadata(uid), "", "  ")
			if err != nil {
				return errors.Wrap(err, "failed to marshal metadata")
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		})
	},
}

var conversationTouchCmd = &cobra.Command{
	Use:   "touch <uid>",
	Short: "Record message activity in the conversation with a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		uid, err := uidArg(args)
		if err != nil {
			return err
		}

		at := netTime.Now()
		if atStr := viper.GetString(conversationTouchAtFlag); atStr != "" {
			at, err = time.Parse(time.RFC3339, atStr)
			if err != nil {
				return errors.Wrapf(err, "invalid --%s",
					conversationTouchAtFlag)
			}
		}

		return withRelationships(func(store *relationship.Store) error {
			if err = store.TouchConversation(uid, at); err != nil {
				jww.ERROR.Printf("Failed to touch conversation with %d: %+v",
					uid, err)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(),
				"Conversation with %d active at %s\n", uid,
				at.Format(time.RFC3339))
			return nil
		})
	},
}

// conversationMutation builds a subcommand that applies op to the
// conversation with the user ID given as its argument.
func conversationMutation(use, short, msg string,
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
					jww.ERROR.Printf("Failed to %s conversation with %d: %+v",
						use, uid, err)
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), msg+"\n", uid)
				return nil
			})
		},
	}
}

func setMuted(muted bool) func(*relationship.Store, uint64) error {
	return func(store *relationship.Store, uid uint64) error {
		return store.SetMuted(uid, muted)
	}
}

func setArchived(archived bool) func(*relationship.Store, uint64) error {
	return func(store *relationship.Store, uid uint64) error {
		return store.SetArchived(uid, archived)
	}
}

func init() {
	conversationTouchCmd.Flags().String(conversationTouchAtFlag, "",
		"Time of the activity in RFC 3339 format, defaults to now")
	cmdUtils.BindFlagHelper(conversationTouchAtFlag, conversationTouchCmd)

	conversationCmd.AddCommand(conversationShowCmd)
	conversationCmd.AddCommand(conversationTouchCmd)
	conversationCmd.AddCommand(conversationMutation("mute",
		"Mute the conversation with a user", "Muted conversation with %d",
		setMuted(true)))
	conversationCmd.AddCommand(conversationMutation("unmute",
		"Unmute the conversation with a user", "Unmuted conversation with %d",
		setMuted(false)))
	conversationCmd.AddCommand(conversationMutation("archive",
		"Archive the conversation with a user",
		"Archived conversation with %d", setArchived(true)))
	conversationCmd.AddCommand(conversationMutation("unarchive",
		"Move the conversation with a user out of the archive",
		"Unarchived conversation with %d", setArchived(false)))
	conversationCmd.AddCommand(conversationMutation("delete",
		"Delete the conversation metadata and request status of a user",
		"Deleted conversation with %d",
		(*relationship.Store).DeleteConversation))

	rootCmd.AddCommand(conversationCmd)
}
