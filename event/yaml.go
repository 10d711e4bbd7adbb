// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package event

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bufbuild/syntree/report"
	"github.com/bufbuild/syntree/source"
	"github.com/bufbuild/syntree/syntax"
	"github.com/bufbuild/syntree/token"
)

// Document is an event log together with the source text it was produced
// from.
//
// Documents are usually written by hand, in YAML, to exercise the tree
// builder without a parser. See [DecodeYAML].
type Document struct {
	Path string
	Text string
	Log  Log
}

// File returns a [source.File] for this document's text.
func (d *Document) File() *source.File {
	return source.NewFile(d.Path, d.Text)
}

// DecodeYAML decodes a [Document] from YAML. name is used for error messages
// and as the provenance file of error events.
//
// The format looks like this:
//
//	path: a.script
//	text: "let x = 1"
//	events:
//	  - start: Source
//	  - token: KwLet
//	  - token: Whitespace
//	    len: 1
//	  - token: Ident
//	    text: x
//	  - remap: Ident -> KwAsync
//	  - error: expected a semicolon
//	  - start: BinaryExpr
//	    parent: 12
//	  - finish
//
// Token ranges are implicit: each token starts where the previous one ended.
// A token's length comes from len, from text (which must match the document
// text at that position), or from the kind's fixed spelling, in that order.
// parent is the absolute index of a later start event in the list.
func DecodeYAML(name string, data []byte) (*Document, error) {
	var raw struct {
		Path   string      `yaml:"path"`
		Text   string      `yaml:"text"`
		Events []yaml.Node `yaml:"events"`
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	d := &yamlDecoder{
		name: name,
		doc:  &Document{Path: raw.Path, Text: raw.Text},
	}
	if d.doc.Path == "" {
		d.doc.Path = strings.TrimSuffix(name, ".yaml")
	}
	for i := range raw.Events {
		if err := d.event(&raw.Events[i]); err != nil {
			return nil, err
		}
	}
	if err := d.checkParents(raw.Events); err != nil {
		return nil, err
	}
	return d.doc, nil
}

type yamlEvent struct {
	Start  *string `yaml:"start"`
	Parent *int    `yaml:"parent"`

	Token *string `yaml:"token"`
	Len   *int    `yaml:"len"`
	Text  *string `yaml:"text"`

	Remap *string `yaml:"remap"`
	Error *string `yaml:"error"`
}

type yamlDecoder struct {
	name   string
	doc    *Document
	cursor int
}

func (d *yamlDecoder) errorf(node *yaml.Node, format string, args ...any) error {
	return fmt.Errorf("%s:%d:%d: %s", d.name, node.Line, node.Column, fmt.Sprintf(format, args...))
}

func (d *yamlDecoder) event(node *yaml.Node) error {
	log := &d.doc.Log
	if node.Kind == yaml.ScalarNode {
		if node.Value != "finish" {
			return d.errorf(node, "unknown event %q", node.Value)
		}
		log.Finish()
		return nil
	}

	var ev yamlEvent
	if err := node.Decode(&ev); err != nil {
		return d.errorf(node, "%v", err)
	}

	var set int
	for _, p := range []*string{ev.Start, ev.Token, ev.Remap, ev.Error} {
		if p != nil {
			set++
		}
	}
	if set != 1 {
		return d.errorf(node, "expected exactly one of start, token, remap, or error")
	}
	if ev.Parent != nil && ev.Start == nil {
		return d.errorf(node, "parent is only valid on start events")
	}
	if (ev.Len != nil || ev.Text != nil) && ev.Token == nil {
		return d.errorf(node, "len and text are only valid on token events")
	}

	switch {
	case ev.Start != nil:
		kind, ok := syntax.Lookup(*ev.Start)
		if !ok {
			return d.errorf(node, "unknown node kind %q", *ev.Start)
		}
		parent := NoParent
		if ev.Parent != nil {
			parent = *ev.Parent
		}
		log.Push(Event{Kind: Start, Node: kind, Parent: parent})

	case ev.Token != nil:
		kind, ok := token.Lookup(*ev.Token)
		if !ok {
			return d.errorf(node, "unknown token kind %q", *ev.Token)
		}
		n, err := d.tokenLen(node, kind, &ev)
		if err != nil {
			return err
		}
		log.Token(kind, d.cursor, d.cursor+n)
		d.cursor += n

	case ev.Remap != nil:
		from, to, ok := strings.Cut(*ev.Remap, "->")
		if !ok {
			return d.errorf(node, "remap must look like `From -> To`, got %q", *ev.Remap)
		}
		fromKind, ok1 := token.Lookup(strings.TrimSpace(from))
		toKind, ok2 := token.Lookup(strings.TrimSpace(to))
		if !ok1 || !ok2 {
			return d.errorf(node, "unknown token kind in remap %q", *ev.Remap)
		}
		log.Remap(fromKind, toKind)

	case ev.Error != nil:
		log.Push(Event{
			Kind:       Error,
			Message:    *ev.Error,
			Provenance: report.Provenance{File: d.name, Line: node.Line},
		})
	}
	return nil
}

func (d *yamlDecoder) tokenLen(node *yaml.Node, kind token.Kind, ev *yamlEvent) (int, error) {
	var n int
	switch {
	case ev.Len != nil:
		n = *ev.Len
		if n < 0 {
			return 0, d.errorf(node, "negative token length %d", n)
		}
	case ev.Text != nil:
		n = len(*ev.Text)
	case kind.Text() != "":
		n = len(kind.Text())
	default:
		return 0, d.errorf(node, "token %v needs a len or text", kind)
	}

	if d.cursor+n > len(d.doc.Text) {
		return 0, d.errorf(node, "token %v runs past the end of the text", kind)
	}
	got := d.doc.Text[d.cursor : d.cursor+n]
	if ev.Text != nil && got != *ev.Text {
		return 0, d.errorf(node, "token text %q does not match %q in the text", *ev.Text, got)
	}
	if ev.Len == nil && ev.Text == nil && got != kind.Text() {
		return 0, d.errorf(node, "expected %q for %v, found %q", kind.Text(), kind, got)
	}
	return n, nil
}

func (d *yamlDecoder) checkParents(nodes []yaml.Node) error {
	events := d.doc.Log.events
	for i, ev := range events {
		if ev.Kind != Start || ev.Parent == NoParent {
			continue
		}
		if ev.Parent <= i || ev.Parent >= len(events) || events[ev.Parent].Kind != Start {
			return d.errorf(&nodes[i], "parent must be the index of a later start event, got %d", ev.Parent)
		}
	}
	return nil
}
