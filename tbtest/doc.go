/*
Package tbtest provides mocks and helpers shared by tests across the
repository. Nothing in this package should be imported by production
code.
*/
package tbtest
