// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package session

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// operation names
const (
	OpAdd    = "add"
	OpRemove = "remove"
	OpFind   = "find"
	OpCount  = "count"
	OpHeight = "height"
	OpCheck  = "check"
	OpPrint  = "print"
)

// Result - outcome of one operation on one key
//
// Found is: add → key was added; find/remove → key was present
type Result struct {
	Op    string `json:"op"`
	Key   string `json:"key,omitempty"`
	Found bool   `json:"found"`
	Value string `json:"value,omitempty"`
}

// Session - applies operations to a container
type Session struct {
	log       *logger.L
	container Container
}

// New - create a session on a container
func New(container Container, log *logger.L) *Session {
	return &Session{
		log:       log,
		container: container,
	}
}

// Load - add a list of keys, duplicates are ignored
//
// returns the number of keys actually added
func (s *Session) Load(keys []string) (int, error) {
	n := 0
	for _, key := range keys {
		added, err := s.container.Add(key)
		if nil != err {
			s.log.Errorf("load: key: %q  error: %s", key, err)
			return n, err
		}
		if added {
			n += 1
		}
	}
	s.log.Infof("loaded: %d of %d keys", n, len(keys))
	return n, nil
}

// Execute - split a line into operation and keys and apply it
func (s *Session) Execute(line string) ([]Result, error) {
	fields := strings.Fields(line)
	if 0 == len(fields) {
		return nil, nil
	}
	return s.Apply(strings.ToLower(fields[0]), fields[1:])
}

// Apply - run a single operation
func (s *Session) Apply(op string, keys []string) ([]Result, error) {
	switch op {
	case OpAdd, OpRemove, OpFind:
		if 0 == len(keys) {
			return nil, fault.ErrMissingKey
		}
		return s.keyed(op, keys)

	case OpCount, OpHeight, OpCheck, OpPrint:
		if 0 != len(keys) {
			return nil, fault.ErrUnexpectedArguments
		}
		result, err := s.whole(op)
		if nil != err {
			return nil, err
		}
		return []Result{result}, nil

	default:
		s.log.Warnf("unknown operation: %q", op)
		return nil, fault.ErrNotFoundOperation
	}
}

// operations applied to each key in turn
func (s *Session) keyed(op string, keys []string) ([]Result, error) {
	results := make([]Result, 0, len(keys))
	for _, key := range keys {
		r := Result{
			Op:  op,
			Key: key,
		}
		var err error
		switch op {
		case OpAdd:
			r.Found, err = s.container.Add(key)
		case OpRemove:
			r.Value, r.Found, err = s.container.Remove(key)
		case OpFind:
			r.Value, r.Found, err = s.container.Find(key)
		}
		if nil != err {
			s.log.Errorf("%s: key: %q  error: %s", op, key, err)
			return results, err
		}
		s.log.Debugf("%s: key: %q  found: %v  value: %q", op, key, r.Found, r.Value)
		results = append(results, r)
	}
	return results, nil
}

// operations on the whole tree
func (s *Session) whole(op string) (Result, error) {
	r := Result{
		Op:    op,
		Found: true,
	}
	switch op {
	case OpCount:
		r.Value = strconv.Itoa(s.container.Count())
	case OpHeight:
		r.Value = strconv.Itoa(s.container.Height())
	case OpCheck:
		if err := s.container.Check(); nil != err {
			s.log.Criticalf("check failed: %s", err)
			return r, err
		}
		r.Value = "ok"
	case OpPrint:
		var b strings.Builder
		s.container.Print(&b)
		r.Value = b.String()
	}
	s.log.Debugf("%s: %q", op, r.Value)
	return r, nil
}

// Run - execute each line of a script, stopping at the first error
func (s *Session) Run(script io.Reader) ([]Result, error) {
	results := []Result{}
	scanner := bufio.NewScanner(script)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber += 1
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		r, err := s.Execute(line)
		results = append(results, r...)
		if nil != err {
			return results, fmt.Errorf("line %d: %q: %w", lineNumber, line, err)
		}
	}
	if err := scanner.Err(); nil != err {
		return results, err
	}
	s.log.Infof("script: %d lines  %d results", lineNumber, len(results))
	return results, nil
}
