// Package testutil provides test environments for dotsync packages: a home
// directory and a source repository on either an in-memory or a temporary
// real filesystem.
package testutil
