////////////////////////////////////////////////////////////////////////////////
// Copyright © 2024 Stride Labs                                               //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file.                                                              //
////////////////////////////////////////////////////////////////////////////////

package feed

import (
	"strings"

	"github.com/forPelevin/gomoji"
)

// StripEmoji removes every emoji from the text and trims the spaces left
// behind, for displays that cannot render them.
func StripEmoji(text string) string {
	for _, e := range gomoji.CollectAll(text) {
		text = strings.ReplaceAll(text, e.Character, "")
	}
	return strings.Join(strings.Fields(text), " ")
}
