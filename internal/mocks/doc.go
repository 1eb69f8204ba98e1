// Package mocks holds testify/mock implementations of the repository and
// service interfaces, shared by service and handler tests.
package mocks
