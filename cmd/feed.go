///////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                              //
//                                                                           //
// Use of this source code is governed by a license that can be found in the //
// LICENSE file                                                              //
///////////////////////////////////////////////////////////////////////////////

// The feed subcommand prints the composed activity feed.

package cmd

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"
	"gitlab.com/stride/client/cmdUtils"
	"gitlab.com/stride/client/feed"
	"gitlab.com/stride/client/mock"
	"gitlab.com/xx_network/primitives/netTime"
)

const (
	feedWorkoutsFlag = "workouts"
	feedSeedFlag     = "seed"
	feedPlainFlag    = "plain"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "Print the activity feed",
	Long: "Prints the sample community posts merged with the local user's " +
		"workouts, newest first.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var workouts []feed.Workout
		if path := viper.GetString(feedWorkoutsFlag); path != "" {
			var err error
			workouts, err = cmdUtils.ReadWorkouts(path)
			if err != nil {
				return err
			}
		}

		now := netTime.Now()
		seed := viper.GetInt64(feedSeedFlag)
		if seed == 0 {
			seed = now.UnixNano()
		}
		jww.DEBUG.Printf("Generating sample posts with seed %d", seed)
		curated := mock.CuratedPosts(now, rand.New(rand.NewSource(seed)))

		posts, err := feed.ComposeFeed(curated, workouts,
			viper.GetUint64(cmdUtils.UserIdFlag))
		if err != nil {
			return err
		}

		printPosts(cmd.OutOrStdout(), posts, viper.GetBool(feedPlainFlag))
		return nil
	},
}

func printPosts(w io.Writer, posts []feed.Post, plain bool) {
	for _, p := range posts {
		author := "You"
		if p.Kind != feed.KindWorkout {
			if u, ok := mock.UserByID(p.UserID); ok {
				author = u.Username
			} else {
				author = fmt.Sprintf("user %d", p.UserID)
			}
		}

		caption := p.Caption
		if plain {
			caption = feed.StripEmoji(caption)
		}

		wo := p.Workout
		fmt.Fprintf(w, "%s  %-10s %-16s %-8s %6.2f km %4d min %5.1f km/h "+
			"%4d kcal  %d kudos", p.Timestamp.Format("Jan 02 15:04"), p.Kind,
			author, wo.Activity, wo.Distance, wo.Duration/60, wo.AvgSpeed,
			wo.Calories, len(p.Kudos))
		if caption != "" {
			fmt.Fprintf(w, "  %q", caption)
		}
		fmt.Fprintln(w)
	}
}

func init() {
	feedCmd.Flags().String(feedWorkoutsFlag, "",
		"JSON file with a list of the local user's workouts")
	cmdUtils.BindFlagHelper(feedWorkoutsFlag, feedCmd)

	feedCmd.Flags().Int64(feedSeedFlag, 0,
		"Seed for the sample posts, 0 picks one from the clock")
	cmdUtils.BindFlagHelper(feedSeedFlag, feedCmd)

	feedCmd.Flags().Bool(feedPlainFlag, false,
		"Strip emoji from captions")
	cmdUtils.BindFlagHelper(feedPlainFlag, feedCmd)

	rootCmd.AddCommand(feedCmd)
}
