/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package pddl

import "github.com/stripslab/planner/internal/model"

// ParseProblem parses PDDL problem text of the form
// (define (problem NAME) :domain NAME :objects ... :init ... :goal FORM)
// into a model.Problem.
func ParseProblem(text string) (*model.Problem, error) {
	tokens := Tokenize(text)
	ast, _, err := readSExpr(tokens, 0)
	if err != nil {
		return nil, err
	}

	top, ok := asList(ast)
	if !ok || len(top) < 2 {
		return nil, newParseError("", "invalid problem: expected (define ...)")
	}
	if sym, _ := asSymbol(top[0]); sym != "define" {
		return nil, newParseError(sym, "invalid problem: expected (define ...)")
	}

	nameClause, ok := asList(top[1])
	if !ok || len(nameClause) < 2 {
		return nil, newParseError("", "invalid problem: missing (problem NAME)")
	}
	if kw, _ := asSymbol(nameClause[0]); kw != "problem" {
		return nil, newParseError(kw, "invalid problem: expected (problem NAME)")
	}
	problemName, _ := asSymbol(nameClause[1])

	problem := model.NewProblem(problemName)

	for _, item := range top[2:] {
		section, ok := asList(item)
		if !ok || len(section) == 0 {
			continue
		}
		keyword, _ := asSymbol(section[0])
		switch keyword {
		case ":domain":
			if len(section) > 1 {
				problem.DomainName, _ = asSymbol(section[1])
			}
		case ":objects":
			typed, err := parseTypedList(section[1:])
			if err != nil {
				return nil, err
			}
			for _, p := range typed {
				problem.Objects[p.Name] = p.Type
			}
		case ":init":
			for _, atomDef := range section[1:] {
				atomList, ok := asList(atomDef)
				if !ok || len(atomList) == 0 {
					continue
				}
				lit := literalFromList(atomList)
				problem.Init[model.FormatAtom(lit.Pred, lit.Args)] = struct{}{}
			}
		case ":goal":
			if len(section) < 2 {
				continue
			}
			for _, lit := range parseFormula(section[1]) {
				problem.Goal[model.FormatAtom(lit.Pred, lit.Args)] = struct{}{}
			}
		default:
			// Unknown sections are tolerated.
		}
	}

	return problem, nil
}
