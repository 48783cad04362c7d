package main

import (
	"fmt"
	"strconv"
	"strings"

	"gcodegen/pkg/gcode"
)

// parseHead splits "G38.2" into letter, code and optional sub-code.
func parseHead(head string) (gcode.Command, error) {
	if len(head) < 2 {
		return gcode.Command{}, fmt.Errorf("invalid command %q: want e.g. G1 or G38.2", head)
	}
	letter, ok := gcode.ParseLetter(head[:1])
	if !ok {
		return gcode.Command{}, fmt.Errorf("invalid command %q: letter must be G, M or T", head)
	}
	codeStr, subStr, hasSub := strings.Cut(head[1:], ".")
	code, err := strconv.Atoi(codeStr)
	if err != nil || code < 0 {
		return gcode.Command{}, fmt.Errorf("invalid command %q: bad code %q", head, codeStr)
	}
	cmd := gcode.NewCommand(letter, code)
	if hasSub {
		sub, err := strconv.Atoi(subStr)
		if err != nil {
			return gcode.Command{}, fmt.Errorf("invalid command %q: bad sub-code %q", head, subStr)
		}
		cmd = cmd.WithSubCode(sub)
	}
	return cmd, nil
}

// parsePair turns NAME=VALUE into a parameter.
func parsePair(pair string) (gcode.Param, error) {
	name, value, ok := strings.Cut(pair, "=")
	if !ok || name == "" {
		return gcode.Param{}, fmt.Errorf("invalid parameter %q: want NAME=VALUE", pair)
	}
	switch strings.ToLower(value) {
	case "true":
		return gcode.Bool(name, gcode.Some(true)), nil
	case "false":
		return gcode.Bool(name, gcode.Some(false)), nil
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return gcode.Number(name, gcode.Some(f)), nil
	}
	return gcode.Text(name, gcode.Some(value)), nil
}

func buildCommand(head string, pairs, flags []string, hasText bool, text string) (gcode.Command, error) {
	cmd, err := parseHead(head)
	if err != nil {
		return cmd, err
	}
	for _, pair := range pairs {
		p, err := parsePair(pair)
		if err != nil {
			return cmd, err
		}
		cmd.Params = append(cmd.Params, p)
	}
	for _, f := range flags {
		cmd.Params = append(cmd.Params, gcode.Flag(f, gcode.Some(true)))
	}
	if hasText {
		cmd.Params = append(cmd.Params, gcode.Text("", gcode.Some(text)))
	}
	return cmd, nil
}
