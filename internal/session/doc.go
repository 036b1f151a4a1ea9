// Package session holds what the user is currently working on: the selected
// file, the active ciphertext with its media type, and the last decrypted
// payload.
//
// [State] is a value. Every transition returns a new State and leaves the
// receiver untouched, so a failed action can simply drop the result.
// [Controller] owns the only mutable copy and runs the user actions against
// the codec, the cipher engine and the vault service, committing a new State
// only when an action succeeds as a whole.
package session
