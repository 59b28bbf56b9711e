// Package guard provides a construction marker for value objects,
// commands, and queries. Embedding a ConstructorGuard lets a type detect
// whether it was created through its designated constructor or left as a
// zero value, keeping domain invariants enforceable.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// fails validation, so direct struct literals are detectable.
//
// Example:
//
//	var ErrNoteNotConstructed = errors.New("Note must be created via NewNote")
//
//	type Note struct {
//	    text  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewNote(text string) Note {
//	    return Note{text: text, guard: guard.NewConstructorGuard()}
//	}
//
//	func (n Note) Validate() error {
//	    return n.guard.Validate(ErrNoteNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks its holder as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the holder was constructed through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
