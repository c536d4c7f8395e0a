package gen

import (
	"go/token"
	"unicode"
)

// The generated API is named deterministically from the declaration, so the
// compiler becomes the second validator: a declared edge or route whose
// methods are missing on the user's state type fails to build.

// TagType returns the name of the generated state tag enum.
func TagType(machine string) string {
	return machine + "State"
}

// TagConst returns the tag constant for one state.
func TagConst(machine, state string) string {
	return machine + "State" + state
}

// FieldName returns the machine's holder field for one state.
func FieldName(state string) string {
	return "st" + state
}

// GuardMethod returns the guard method the From state must implement for an
// edge targeting to.
func GuardMethod(to string) string {
	return "Guard" + to
}

// IntoMethod returns the consuming transform method for an edge targeting
// to.
func IntoMethod(to string) string {
	return "Into" + to
}

// ReceiveMethod returns the state method a receive route delegates to.
func ReceiveMethod(payload string) string {
	return "Receive" + payload
}

// ReturnMethod returns the state method a poll route delegates to.
func ReturnMethod(payload string) string {
	return "Return" + payload
}

// PushMethod returns the machine method generated for a receive route.
func PushMethod(payload string) string {
	return "Push" + payload
}

// PollMethod returns the machine method generated for a poll route.
func PollMethod(payload string) string {
	return "Poll" + payload
}

// isIdentifier reports whether s is a plain Go identifier. Keywords are
// rejected here so the caller can name the offending declaration instead of
// surfacing a parse failure of the rendered file.
func isIdentifier(s string) bool {
	if s == "" || token.IsKeyword(s) {
		return false
	}

	for i, r := range s {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}

		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return true
}
