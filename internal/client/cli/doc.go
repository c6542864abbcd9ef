// Package cli implements the interactive shell of the raclient CLI: a small
// read–eval–print loop whose command surface depends on the session state.
// Anonymous sessions can log in (by password or magic link) or sign up;
// authenticated sessions can query the assistant; the user administration
// commands are offered only when the confirmed identity carries the admin
// capability.
package cli
