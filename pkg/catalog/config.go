package catalog

import (
	"fmt"
	"strings"

	"gcodegen/pkg/config"
	gerrors "gcodegen/pkg/errors"
	"gcodegen/pkg/gcode"
)

// sectionPrefix introduces a user-defined operation, as in "[command purge_line]".
const sectionPrefix = "command "

// LoadConfig registers every "[command <name>]" section of cfg.
//
//	[command purge_line]
//	letter: G
//	code: 1
//	summary: Purge line
//	params: X:number, E:number!, F:number:feed
//
// Each params entry is Name:kind[:key] with a trailing '!' for required
// parameters. An empty Name declares bare text, e.g. ":text:message".
func (c *Catalog) LoadConfig(cfg *config.Config) error {
	for _, sec := range cfg.GetPrefixSections(sectionPrefix) {
		d, err := definitionFromSection(sec)
		if err != nil {
			return gerrors.ConfigError(fmt.Sprintf("[%s]", sec.GetName()), err)
		}
		if err := c.Register(d); err != nil {
			return err
		}
	}
	return nil
}

func definitionFromSection(sec *config.Section) (Definition, error) {
	d := Definition{Name: sec.Arg()}
	if d.Name == "" {
		return d, config.NewConfigError(sec.GetName(), "", "operation name missing from section header")
	}

	letter, err := sec.GetChoice("letter", []string{"G", "M", "T"})
	if err != nil {
		return d, err
	}
	d.Letter = gcode.Letter(letter)
	if d.Code, err = sec.GetInt("code"); err != nil {
		return d, err
	}
	if sec.HasOption("subcode") {
		sub, err := sec.GetInt("subcode")
		if err != nil {
			return d, err
		}
		d.SubCode = gcode.Some(sub)
	}
	if d.Summary, err = sec.Get("summary", ""); err != nil {
		return d, err
	}
	if d.Inline, err = sec.GetBool("inline", false); err != nil {
		return d, err
	}

	entries, err := sec.GetList("params", ",", nil)
	if err != nil {
		return d, err
	}
	for _, e := range entries {
		p, err := parseParamSpec(e)
		if err != nil {
			return d, config.NewConfigError(sec.GetName(), "params", err.Error())
		}
		d.Params = append(d.Params, p)
	}
	return d, nil
}

// parseParamSpec parses "Name:kind[:key][!]".
func parseParamSpec(s string) (ParamSpec, error) {
	var p ParamSpec
	s = strings.TrimSpace(s)
	if strings.HasSuffix(s, "!") {
		p.Required = true
		s = strings.TrimSuffix(s, "!")
	}
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return p, fmt.Errorf("parameter %q: expected Name:kind[:key]", s)
	}
	p.Name = strings.TrimSpace(parts[0])
	kind, ok := gcode.ParseKind(parts[1])
	if !ok {
		return p, fmt.Errorf("parameter %q: unknown kind %q", s, parts[1])
	}
	p.Kind = kind
	p.Key = strings.ToLower(p.Name)
	if len(parts) == 3 {
		p.Key = strings.TrimSpace(parts[2])
	}
	if p.Key == "" {
		return p, fmt.Errorf("parameter %q: bare text needs a key", s)
	}
	return p, nil
}
