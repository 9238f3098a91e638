/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package service

import (
	"fmt"

	"github.com/google/uuid"
	short "github.com/lithammer/shortuuid/v4"
)

// generateRequestID is attached to every /plan and /benchmarks response so
// a caller can correlate it with server logs. /validate responses carry no
// request id.
func generateRequestID() string {
	return uuid.New().String()
}

// generateTaskID names a grounded task for the progress websocket channel.
func generateTaskID() string {
	return fmt.Sprintf("task_%s", short.New())
}
