/*
Package session implements the save-slot session service.

A Service owns at most one active defense process. It starts new sessions
from a seeded generator, restores them from a slot, and persists the process
to its slot after every performed action, so a session can be resumed at any
point.
*/
package session
