///////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                              //
//                                                                           //
// Use of this source code is governed by a license that can be found in the //
// LICENSE file                                                              //
///////////////////////////////////////////////////////////////////////////////

// Package cmd initializes the CLI and config parsers as well as the logger.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"
	"gitlab.com/stride/client/cmdUtils"
	"gitlab.com/stride/client/storage/relationship"
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to
// happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "stride",
	Short: "Manages the local relationship store and feed of a Stride client",
	Long: "Reads and changes the message requests, blocked users and " +
		"conversation settings kept on this device, and prints the inbox " +
		"and activity feed built from them.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return cmdUtils.InitLog(viper.GetUint(cmdUtils.LogLevelFlag),
			viper.GetString(cmdUtils.LogFlag))
	},
}

// initConfig reads in the config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix(cmdUtils.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	configFile := viper.GetString(cmdUtils.ConfigFlag)
	if configFile == "" {
		return
	}
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		jww.ERROR.Printf("Failed to read config file %s: %+v",
			configFile, err)
		return
	}
	jww.INFO.Printf("Using config file: %s", viper.ConfigFileUsed())
}

// init is the initialization function for Cobra which defines commands
// and flags.
func init() {
	// NOTE: The point of init() is to be declarative.
	// There is one init in each sub command. Do not put variable declarations
	// here, and ensure all the Flags are of the *P variety, unless there's a
	// very good reason not to have them as local params to sub command.
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().UintP(cmdUtils.LogLevelFlag, "v", 0,
		"Verbose mode for debugging (0 info, 1 debug, 2+ trace)")
	cmdUtils.BindPersistentFlagHelper(cmdUtils.LogLevelFlag, rootCmd)

	rootCmd.PersistentFlags().StringP(cmdUtils.LogFlag, "l", "-",
		"Path to the log output path (- is stdout)")
	cmdUtils.BindPersistentFlagHelper(cmdUtils.LogFlag, rootCmd)

	rootCmd.PersistentFlags().StringP(cmdUtils.SessionFlag, "s", "",
		"Sets the storage directory for local data. When empty, a "+
			"temporary in-memory store is used")
	cmdUtils.BindPersistentFlagHelper(cmdUtils.SessionFlag, rootCmd)

	rootCmd.PersistentFlags().StringP(cmdUtils.PasswordFlag, "p", "",
		"Password for the session file store (plain, 0x hex or b64:)")
	cmdUtils.BindPersistentFlagHelper(cmdUtils.PasswordFlag, rootCmd)

	rootCmd.PersistentFlags().String(cmdUtils.BackendFlag,
		cmdUtils.BackendEkv, "Storage backend: \""+cmdUtils.BackendEkv+
			"\" or \""+cmdUtils.BackendSqlite+"\"")
	cmdUtils.BindPersistentFlagHelper(cmdUtils.BackendFlag, rootCmd)

	rootCmd.PersistentFlags().StringP(cmdUtils.ConfigFlag, "c", "",
		"Optional config file with values for any of the flags")
	cmdUtils.BindPersistentFlagHelper(cmdUtils.ConfigFlag, rootCmd)

	rootCmd.PersistentFlags().Uint64P(cmdUtils.UserIdFlag, "u", 0,
		"User ID of the local user, used as the author of own workouts")
	cmdUtils.BindPersistentFlagHelper(cmdUtils.UserIdFlag, rootCmd)
}

// withRelationships opens the relationship store for the duration of f.
func withRelationships(f func(store *relationship.Store) error) error {
	store, closer, err := cmdUtils.InitRelationships()
	if err != nil {
		return err
	}
	defer closer()
	return f(store)
}

// uidArg parses the single user ID argument of a subcommand.
func uidArg(args []string) (uint64, error) {
	return cmdUtils.ParseUID(args[0])
}
