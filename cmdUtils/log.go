///////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                              //
//                                                                           //
// Use of this source code is governed by a license that can be found in the //
// LICENSE file                                                              //
///////////////////////////////////////////////////////////////////////////////

package cmdUtils

import (
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"
)

// InitLog sets the log threshold (0 info, 1 debug, 2+ trace) and, unless
// logPath is empty or "-", sends the log to that file instead of stdout.
func InitLog(threshold uint, logPath string) error {
	if logPath != "-" && logPath != "" {
		logOutput, err := os.OpenFile(logPath,
			os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return errors.Wrapf(err, "failed to open log file %s", logPath)
		}
		jww.SetStdoutOutput(io.Discard)
		jww.SetLogOutput(logOutput)
	}

	switch {
	case threshold > 1:
		setThreshold(jww.LevelTrace, true)
	case threshold == 1:
		setThreshold(jww.LevelDebug, true)
	default:
		setThreshold(jww.LevelInfo, false)
	}
	return nil
}

// setThreshold applies level to both outputs. Verbose levels also get
// microsecond timestamps.
func setThreshold(level jww.Threshold, micro bool) {
	jww.SetStdoutThreshold(level)
	jww.SetLogThreshold(level)
	if micro {
		jww.SetFlags(log.LstdFlags | log.Lmicroseconds)
	} else {
		jww.SetFlags(log.LstdFlags)
	}
	jww.INFO.Printf("log level set to: %s", levelNames[level])
}

var levelNames = map[jww.Threshold]string{
	jww.LevelTrace: "TRACE",
	jww.LevelDebug: "DEBUG",
	jww.LevelInfo:  "INFO",
}
