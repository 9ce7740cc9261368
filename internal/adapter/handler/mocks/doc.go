// Package mocks holds testify mocks for the services the HTTP handlers depend on.
package mocks
