// Package core wires the components of a run together.
//
// A sync run goes through these steps in order, stopping at the first
// error:
//
//  1. system bootstrap (Homebrew, packages, shells, Vim)
//  2. mode detection from the marker directory under HOME
//  3. directive building from the rule table for that mode
//  4. the sync engine, one directive at a time
//  5. the shell-profile stub for the mode
//  6. editor extension installs, whose failures never stop the run
//
// Every step prints its progress through a ui.Printer. The returned
// RunReport holds everything that happened, including the partial results
// of a failed run.
package core
