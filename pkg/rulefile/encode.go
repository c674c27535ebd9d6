package rulefile

import (
	"bytes"
	"strings"

	"github.com/arthur-debert/relines/pkg/errors"
	"github.com/arthur-debert/relines/pkg/rules"
	"github.com/beevik/etree"
	gotoml "github.com/pelletier/go-toml/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// encodedRule is the canonical on-disk form written by Encode. Fields that
// do not apply to the rule are left out.
type encodedRule struct {
	ID          string `toml:"id,omitempty" yaml:"id,omitempty"`
	Mode        string `toml:"mode" yaml:"mode"`
	Scope       string `toml:"scope" yaml:"scope"`
	Target      string `toml:"target" yaml:"target"`
	Token       text   `toml:"token,omitempty" yaml:"token,omitempty"`
	Occurrence  string `toml:"occurrence,omitempty" yaml:"occurrence,omitempty"`
	Replacement text   `toml:"replacement,omitempty" yaml:"replacement,omitempty"`
}

// text is a token or replacement value. yaml.v3 writes strings made of
// line breaks as block scalars that read back empty, so those are forced
// into double quotes.
type text string

func (t text) MarshalYAML() (interface{}, error) {
	node := &yamlv3.Node{Kind: yamlv3.ScalarNode, Tag: "!!str", Value: string(t)}
	if strings.ContainsAny(string(t), "\r\n\t") {
		node.Style = yamlv3.DoubleQuotedStyle
	}
	return node, nil
}

type encodedDocument struct {
	Rules []encodedRule `toml:"rules" yaml:"rules"`
}

func encodeRule(r rules.Rule) encodedRule {
	er := encodedRule{
		ID:     r.ID,
		Mode:   r.Mode.String(),
		Scope:  r.Scope.String(),
		Target: r.Target.String(),
	}
	if r.Target == rules.TargetLiteral {
		er.Token = text(r.Token)
	}
	if r.Scope == rules.ScopeCenter {
		er.Occurrence = r.Occurrence.String()
	}
	if r.Mode == rules.ModeReplace {
		er.Replacement = text(r.Replacement)
	}
	return er
}

// Encode writes rules in the given format. Decoding the output yields the
// same rules.
func Encode(rs []rules.Rule, format Format) ([]byte, error) {
	doc := encodedDocument{Rules: make([]encodedRule, len(rs))}
	for i, r := range rs {
		doc.Rules[i] = encodeRule(r)
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case FormatTOML:
		data, err = gotoml.Marshal(doc)
	case FormatYAML:
		data, err = encodeYAML(doc)
	case FormatXML:
		data, err = encodeXML(doc.Rules)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported rule file format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRuleFileWrite, "failed to encode rules as %s", format)
	}
	return data, nil
}

func encodeYAML(doc encodedDocument) ([]byte, error) {
	var buf bytes.Buffer
	enc := yamlv3.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// encodeXML indents by hand: etree's Indent drops whitespace-only text,
// which would erase whitespace tokens.
func encodeXML(ers []encodedRule) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateText("\n")

	root := doc.CreateElement("rules")
	for _, er := range ers {
		root.CreateText("\n  ")
		el := root.CreateElement("rule")
		if er.ID != "" {
			el.CreateAttr("id", er.ID)
		}
		el.CreateAttr("mode", er.Mode)
		el.CreateAttr("scope", er.Scope)
		el.CreateAttr("target", er.Target)
		if er.Occurrence != "" {
			el.CreateAttr("occurrence", er.Occurrence)
		}

		hasChildren := false
		if er.Target == rules.TargetLiteral.String() {
			el.CreateText("\n    ")
			el.CreateElement("token").SetText(string(er.Token))
			hasChildren = true
		}
		if er.Mode == rules.ModeReplace.String() {
			el.CreateText("\n    ")
			el.CreateElement("replacement").SetText(string(er.Replacement))
			hasChildren = true
		}
		if hasChildren {
			el.CreateText("\n  ")
		}
	}
	if len(ers) > 0 {
		root.CreateText("\n")
	}
	doc.CreateText("\n")

	return doc.WriteToBytes()
}
