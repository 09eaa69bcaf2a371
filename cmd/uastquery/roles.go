package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/uastcore/uastquery"
	"github.com/uastcore/uastquery/uastxml"
)

// loadRoleTable reads a JSON object mapping role name to numeric id from
// path, and returns both directions of lookup the engine needs: a
// RoleLookup for projecting host nodes into XML, and a RoleResolver for
// uastxml.Load to recognize role attributes when re-importing.
func loadRoleTable(path string) (uast.RoleLookup, uastxml.RoleResolver, error) {
	if path == "" {
		return uast.NoRoles, uastxml.NoRoleResolver, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read role table: %w", err)
	}

	var byName map[string]uint16
	if err := json.Unmarshal(data, &byName); err != nil {
		return nil, nil, fmt.Errorf("parse role table: %w", err)
	}

	byID := make(map[uast.RoleID]string, len(byName))
	for name, id := range byName {
		byID[uast.RoleID(id)] = name
	}

	lookup := func(id uast.RoleID) (string, bool) {
		name, ok := byID[id]
		return name, ok
	}

	resolve := func(name string) (uast.RoleID, bool) {
		id, ok := byName[name]
		return uast.RoleID(id), ok
	}

	return lookup, resolve, nil
}
