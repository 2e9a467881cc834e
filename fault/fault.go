// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrConfigNotTable       = InvalidError("configuration did not return a table")
	ErrInvalidCount         = InvalidError("count is invalid")
	ErrInvalidKey           = InvalidError("key cannot be parsed")
	ErrInvalidKeyType       = InvalidError("key type is invalid")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrMissingKey           = InvalidError("operation requires at least one key")
	ErrNotFoundConfigFile   = NotFoundError("config file is not found")
	ErrNotFoundOperation    = NotFoundError("operation is not found")
	ErrTreeCountMismatch    = InvalidError("tree node count mismatch")
	ErrTreeHeightMismatch   = InvalidError("tree cached height mismatch")
	ErrTreeNotOrdered       = InvalidError("tree keys are not ordered")
	ErrTreeUnbalanced       = InvalidError("tree is not balanced")
	ErrUnexpectedArguments  = InvalidError("operation does not take keys")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
