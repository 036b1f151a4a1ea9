// Package tui is the terminal front end of the vault client.
//
// A single bubbletea screen lets the user pick a file, encrypt it, save the
// ciphertext to the vault, load entries back and decrypt them. Every action
// runs as a command against a [Vault]; while one is running the other
// triggers are disabled and hidden from the help line.
package tui
