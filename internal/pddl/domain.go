/*
 * This Source Code Form is subject to the terms of the Mozilla Public
 *  License, v. 2.0. If a copy of the MPL was not distributed with this
 *  file, You can obtain one at https://mozilla.org/MPL/2.0/.
 */

package pddl

import "github.com/stripslab/planner/internal/model"

// ParseDomain parses PDDL domain text of the form
// (define (domain NAME) :requirements ... :types ... :predicates ... :action ...)
// into a model.Domain. Unrecognized top-level sections are ignored.
func ParseDomain(text string) (*model.Domain, error) {
	tokens := Tokenize(text)
	ast, _, err := readSExpr(tokens, 0)
	if err != nil {
		return nil, err
	}

	top, ok := asList(ast)
	if !ok || len(top) < 2 {
		return nil, newParseError("", "invalid domain: expected (define ...)")
	}
	if sym, _ := asSymbol(top[0]); sym != "define" {
		return nil, newParseError(sym, "invalid domain: expected (define ...)")
	}

	nameClause, ok := asList(top[1])
	if !ok || len(nameClause) < 2 {
		return nil, newParseError("", "invalid domain: missing (domain NAME)")
	}
	if kw, _ := asSymbol(nameClause[0]); kw != "domain" {
		return nil, newParseError(kw, "invalid domain: expected (domain NAME)")
	}
	domainName, _ := asSymbol(nameClause[1])

	domain := model.NewDomain(domainName)

	for _, item := range top[2:] {
		section, ok := asList(item)
		if !ok || len(section) == 0 {
			continue
		}
		keyword, _ := asSymbol(section[0])
		switch keyword {
		case ":requirements":
			for _, r := range section[1:] {
				if s, ok := asSymbol(r); ok {
					domain.Requirements = append(domain.Requirements, s)
				}
			}
		case ":types":
			typed, err := parseTypedList(section[1:])
			if err != nil {
				return nil, err
			}
			for _, p := range typed {
				domain.Types[p.Name] = p.Type
			}
		case ":constants":
			typed, err := parseTypedList(section[1:])
			if err != nil {
				return nil, err
			}
			for _, p := range typed {
				domain.Constants[p.Name] = p.Type
			}
		case ":predicates":
			for _, predDef := range section[1:] {
				predList, ok := asList(predDef)
				if !ok || len(predList) == 0 {
					continue
				}
				predName, _ := asSymbol(predList[0])
				typed, err := parseTypedList(predList[1:])
				if err != nil {
					return nil, err
				}
				types := make([]string, len(typed))
				for i, p := range typed {
					types[i] = p.Type
				}
				domain.Predicates[predName] = types
			}
		case ":action":
			schema, err := parseAction(section)
			if err != nil {
				return nil, err
			}
			if _, exists := domain.Schemas[schema.Name]; !exists {
				domain.SchemaOrder = append(domain.SchemaOrder, schema.Name)
			}
			domain.Schemas[schema.Name] = schema
		default:
			// Unknown sections are tolerated.
		}
	}

	return domain, nil
}

// parseAction parses (:action NAME :parameters (...) :precondition FORM :effect FORM).
func parseAction(section []sexpr) (model.ActionSchema, error) {
	if len(section) < 2 {
		return model.ActionSchema{}, newParseError("", "malformed :action: missing name")
	}
	name, ok := asSymbol(section[1])
	if !ok {
		return model.ActionSchema{}, newParseError("", "malformed :action: name must be a symbol")
	}

	schema := model.ActionSchema{Name: name}

	i := 2
	for i < len(section) {
		kw, ok := asSymbol(section[i])
		if !ok {
			i++
			continue
		}
		switch kw {
		case ":parameters":
			i++
			if i >= len(section) {
				break
			}
			params, ok := asList(section[i])
			if !ok {
				return model.ActionSchema{}, newParseError(name, "malformed :parameters in action %s", name)
			}
			typed, err := parseTypedList(params)
			if err != nil {
				return model.ActionSchema{}, err
			}
			schema.Parameters = typed
		case ":precondition":
			i++
			if i >= len(section) {
				break
			}
			schema.Preconditions = parseFormula(section[i])
		case ":effect":
			i++
			if i >= len(section) {
				break
			}
			add, del := parseEffect(section[i])
			schema.AddEffects = add
			schema.DelEffects = del
		}
		i++
	}

	return schema, nil
}
