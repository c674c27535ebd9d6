package rulefile

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/arthur-debert/relines/pkg/errors"
	"github.com/arthur-debert/relines/pkg/rules"
	"github.com/beevik/etree"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// fileRule is a rule as written on disk. Pointers tell an explicit empty
// value apart from an omitted key.
type fileRule struct {
	ID          string  `koanf:"id"`
	Mode        string  `koanf:"mode"`
	Scope       string  `koanf:"scope"`
	Target      string  `koanf:"target"`
	Token       *string `koanf:"token"`
	FromStart   string  `koanf:"from_start"`
	FromEnd     string  `koanf:"from_end"`
	Occurrence  string  `koanf:"occurrence"`
	Replacement *string `koanf:"replacement"`
	With        *string `koanf:"with"`
}

type document struct {
	Rules []fileRule `koanf:"rules"`
}

func decodeKoanf(data []byte, format Format) ([]fileRule, error) {
	var parser koanf.Parser
	switch format {
	case FormatTOML:
		parser = toml.Parser()
	case FormatYAML:
		parser = yaml.Parser()
	default:
		return nil, fmt.Errorf("no koanf parser for %s", format)
	}

	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return nil, err
	}

	var doc document
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &doc,
			TagName:          "koanf",
			WeaklyTypedInput: true,
		},
	}
	if err := k.UnmarshalWithConf("", &doc, unmarshalConf); err != nil {
		return nil, err
	}
	return doc.Rules, nil
}

func decodeXML(data []byte) ([]fileRule, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, err
	}

	root := doc.SelectElement("rules")
	if root == nil {
		return nil, stderrors.New("missing <rules> root element")
	}

	elems := root.SelectElements("rule")
	out := make([]fileRule, 0, len(elems))
	for _, el := range elems {
		fr := fileRule{
			ID:         el.SelectAttrValue("id", ""),
			Mode:       el.SelectAttrValue("mode", ""),
			Scope:      el.SelectAttrValue("scope", ""),
			Target:     el.SelectAttrValue("target", ""),
			Occurrence: el.SelectAttrValue("occurrence", ""),
			Token:      childText(el, "token"),
			// An element <replacement/> is an explicit empty replacement
			Replacement: childText(el, "replacement"),
			With:        childText(el, "with"),
		}
		if s := childText(el, "from_start"); s != nil {
			fr.FromStart = *s
		}
		if s := childText(el, "from_end"); s != nil {
			fr.FromEnd = *s
		}
		out = append(out, fr)
	}
	return out, nil
}

func childText(el *etree.Element, tag string) *string {
	child := el.SelectElement(tag)
	if child == nil {
		return nil
	}
	text := child.Text()
	return &text
}

// toRule resolves a file rule into an engine rule
func (fr fileRule) toRule() (rules.Rule, error) {
	var r rules.Rule
	var err error

	replacement, hasReplacement := fr.replacement()

	if fr.Mode == "" {
		if hasReplacement {
			r.Mode = rules.ModeReplace
		}
	} else if r.Mode, err = rules.ParseMode(fr.Mode); err != nil {
		return rules.Rule{}, err
	}

	if strings.TrimSpace(fr.Scope) == "" {
		return rules.Rule{}, stderrors.New("missing scope")
	}
	if r.Scope, err = rules.ParseScope(fr.Scope); err != nil {
		return rules.Rule{}, err
	}

	token := fr.token(r.Scope)
	if fr.Target == "" {
		if token != "" || fr.Token != nil {
			r.Target = rules.TargetLiteral
		}
	} else if r.Target, err = rules.ParseTarget(fr.Target); err != nil {
		return rules.Rule{}, err
	}

	if r.Occurrence, err = rules.ParseOccurrence(fr.Occurrence); err != nil {
		return rules.Rule{}, err
	}

	r.ID = strings.TrimSpace(fr.ID)
	r.Token = token
	r.Replacement = replacement

	return r.Normalize(), nil
}

func (fr fileRule) token(scope rules.Scope) string {
	if fr.Token != nil {
		return *fr.Token
	}
	if scope == rules.ScopeEnd {
		return fr.FromEnd
	}
	return fr.FromStart
}

func (fr fileRule) replacement() (string, bool) {
	if fr.Replacement != nil {
		return *fr.Replacement, true
	}
	if fr.With != nil {
		return *fr.With, true
	}
	return "", false
}

func resolve(frs []fileRule) ([]rules.Rule, error) {
	out := make([]rules.Rule, 0, len(frs))
	for i, fr := range frs {
		r, err := fr.toRule()
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidRule, "rule %d", i+1).
				WithDetail("index", i+1)
		}
		out = append(out, r)
	}
	return out, nil
}
