///////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                              //
//                                                                           //
// Use of this source code is governed by a license that can be found in the //
// LICENSE file                                                              //
///////////////////////////////////////////////////////////////////////////////

package cmdUtils

import (
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"
)

// This is a list of CLI flag name constants shared between root and
// subcommands. Flags for a single subcommand live next to that subcommand.
// Pulling flags using Viper should use the constants defined here.
const (
	// Log flags

	LogLevelFlag = "logLevel"
	LogFlag      = "log"

	// Loading the local store

	SessionFlag  = "session"
	PasswordFlag = "password"
	BackendFlag  = "backend"
	ConfigFlag   = "config"

	// Local user

	UserIdFlag = "user-id"
)

// Storage backends selectable with BackendFlag.
const (
	BackendEkv    = "ekv"
	BackendSqlite = "sqlite"
)

// EnvPrefix is prepended to environment variables that override flags and
// config, e.g. STRIDE_SESSION.
const EnvPrefix = "stride"

// BindFlagHelper binds the key to a pflag.Flag used by Cobra and prints an
// error if one occurs.
func BindFlagHelper(key string, command *cobra.Command) {
	err := viper.BindPFlag(key, command.Flags().Lookup(key))
	if err != nil {
		jww.ERROR.Printf("viper.BindPFlag failed for %q: %+v", key, err)
	}
}

// BindPersistentFlagHelper binds the key to a Persistent pflag.Flag used by
// Cobra and prints an error if one occurs.
func BindPersistentFlagHelper(key string, command *cobra.Command) {
	err := viper.BindPFlag(key, command.PersistentFlags().Lookup(key))
	if err != nil {
		jww.ERROR.Printf("viper.BindPFlag failed for %q: %+v", key, err)
	}
}
