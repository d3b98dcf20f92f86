/*
Package ports defines the driven ports (interfaces) of the diploma simulator.

These interfaces decouple the session service from storage implementations,
so the same game can be persisted to a directory of JSON files or kept in
memory for tests and throwaway runs.

# Key Interfaces

  - SaveStore: persists and loads the save file of a numbered slot.
*/
package ports
