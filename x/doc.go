/*
Package x contains the extensions that build on the core abstractions
of the root package and orm. The package itself holds only interfaces
and helpers shared by the extensions, such as authentication.
*/
package x
