/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package validator

import "strings"

// ParsePlanText parses a plan file: one action name per line, blank lines
// ignored, `;`-to-end-of-line comments stripped exactly as the PDDL
// tokenizer strips them. This is the CLI's plan-text input format.
func ParsePlanText(text string) []string {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		if idx := strings.Index(line, ";"); idx >= 0 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		names = append(names, line)
	}
	return names
}
