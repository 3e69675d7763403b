///////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                              //
//                                                                           //
// Use of this source code is governed by a license that can be found in the //
// LICENSE file                                                              //
///////////////////////////////////////////////////////////////////////////////

package cmdUtils

import (
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
	"gitlab.com/stride/client/feed"
)

// ParseUID parses a user ID given on the command line.
func ParseUID(arg string) (uint64, error) {
	uid, err := strconv.ParseUint(strings.TrimSpace(arg), 10, 64)
	if err != nil {
		return 0, errors.Errorf("invalid user ID %q", arg)
	}
	return uid, nil
}

// ParsePassword decodes a password given as plain text, as hex with a "0x"
// prefix or as base64 with a "b64:" prefix.
func ParsePassword(pwStr string) ([]byte, error) {
	if strings.HasPrefix(pwStr, "0x") {
		pw, err := hex.DecodeString(pwStr[2:])
		return pw, errors.Wrap(err, "invalid hex password")
	} else if strings.HasPrefix(pwStr, "b64:") {
		pw, err := base64.StdEncoding.DecodeString(pwStr[4:])
		return pw, errors.Wrap(err, "invalid base64 password")
	}
	return []byte(pwStr), nil
}

// ReadWorkouts loads a JSON list of workouts from path. Speed and calories
// are derived again from the recorded values.
func ReadWorkouts(path string) ([]feed.Workout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read workouts file")
	}
	jww.INFO.Printf("Read in workouts file of size %d bytes", len(data))

	var workouts []feed.Workout
	if err = json.Unmarshal(data, &workouts); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal workouts")
	}

	for i, w := range workouts {
		if _, err = feed.ParseActivity(string(w.Activity)); err != nil {
			return nil, errors.WithMessagef(err, "workout %d", i)
		}
		workouts[i] = feed.NewWorkout(
			w.ID, w.Activity, w.Date, w.Duration, w.Distance, w.Location)
	}
	return workouts, nil
}
