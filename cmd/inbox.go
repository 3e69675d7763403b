///////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                              //
//                                                                           //
// Use of this source code is governed by a license that can be found in the //
// LICENSE file                                                              //
///////////////////////////////////////////////////////////////////////////////

// The inbox subcommand prints the messaging lists.

package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/stride/client/cmdUtils"
	"gitlab.com/stride/client/inbox"
	"gitlab.com/stride/client/mock"
	"gitlab.com/stride/client/storage/relationship"
	"gitlab.com/xx_network/primitives/netTime"
)

const (
	inboxArchivedFlag = "archived"
	inboxRequestsFlag = "requests"
)

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "Print the chats, requests or archived conversations",
	Long: "Prints one list of the messaging screen, built from the sample " +
		"conversations and the local relationship store. Sample " +
		"conversations are recorded as friends or pending requests the " +
		"first time they are seen.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withRelationships(func(store *relationship.Store) error {
			conversations := mock.Conversations(netTime.Now())
			if err := mock.Seed(store, conversations); err != nil {
				return err
			}

			buckets := inbox.Sort(mock.Summaries(conversations), store)

			list, name := buckets.Chats, inbox.Chats
			if viper.GetBool(inboxArchivedFlag) {
				list, name = buckets.Archived, inbox.Archived
			} else if viper.GetBool(inboxRequestsFlag) {
				list, name = buckets.Requests, inbox.Requests
			}

			printSummaries(cmd.OutOrStdout(), name, list, store)
			return nil
		})
	},
}

func printSummaries(w io.Writer, name inbox.Bucket, list []inbox.Summary,
	rel inbox.Relationships) {
	fmt.Fprintf(w, "%s (%d)\n", name, len(list))
	for _, s := range list {
		flags := ""
		if s.UnreadCount > 0 {
			flags += fmt.Sprintf(" [%d unread]", s.UnreadCount)
		}
		if !inbox.ShouldNotify(s.UserID, rel) {
			flags += " [muted]"
		}
		fmt.Fprintf(w, "%4d  %-16s %s  %s%s\n", s.UserID, s.UserName,
			time.UnixMilli(s.Timestamp).Format("Jan 02 15:04"),
			s.LastMessage, flags)
	}
}

func init() {
	inboxCmd.Flags().Bool(inboxArchivedFlag, false,
		"Print archived conversations")
	cmdUtils.BindFlagHelper(inboxArchivedFlag, inboxCmd)

	inboxCmd.Flags().Bool(inboxRequestsFlag, false,
		"Print message requests")
	cmdUtils.BindFlagHelper(inboxRequestsFlag, inboxCmd)

	rootCmd.AddCommand(inboxCmd)
}
