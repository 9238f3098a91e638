/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package service

import (
	"errors"
	"net/http"

	"github.com/gilcrest/diygoapi/errs"
	"github.com/rs/zerolog"

	"github.com/stripslab/planner/internal/pddl"
)

const ParseErrCode = "Planner:ParseError"

// writeError classifies err against the core error taxonomy. Grounding never
// returns an error (a schema binding that fails to ground is dropped, not
// surfaced — see grounder.groundSchema), and plan validation failures are a
// Result field, not an error, so ParseError is the only distinguished kind.
// Search "failures" (timeout, exhausted) are not errors at all — they are
// first-class Result fields and never reach this function.
func writeError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	var parseErr *pddl.ParseError
	if errors.As(err, &parseErr) {
		errs.HTTPErrorResponse(w, logger, errs.E(errs.InvalidRequest, errs.Code(ParseErrCode), err))
		return
	}

	errs.HTTPErrorResponse(w, logger, errs.E(errs.Unanticipated, err))
}
