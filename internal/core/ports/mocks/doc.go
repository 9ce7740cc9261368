// Package mocks holds testify mocks for the core ports.
package mocks
