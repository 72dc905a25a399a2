// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

/*
Package pointer provides utilities for working with pointers in Go.

It uses generics to simplify the creation of pointers to values,
avoiding boilerplate code in the application logic.
*/
package pointer

// To returns a pointer to the provided value.
func To[T any](v T) *T {
	return &v
}
