// Copyright 2022, Pulumi Corporation.  All rights reserved.

package util

// Map f over arr.
func MapOver[T any, U any, F func(T) U](arr []T, f F) []U {
	l := make([]U, len(arr))
	for i, t := range arr {
		l[i] = f(t)
	}
	return l
}
