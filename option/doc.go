// Package option provides Option, a value that is either present (Some) or
// absent (None).
//
// Option is a plain value type. Its zero value is None, it can be copied
// freely and, when T is comparable, it can be compared with == and used as a
// map key.
//
// # Extraction
//
// Unwrap and Expect panic with an *errors.AppError when called on None. Use
// Get, UnwrapOr or UnwrapOrElse when absence is expected.
//
// # Transformation
//
// Operations that change the element type (Map, AndThen, Zip, ...) are free
// functions, because Go methods cannot declare their own type parameters.
//
//	name := option.Map(user, func(u User) string { return u.Name })
//	fmt.Println(name.UnwrapOr("anonymous"))
package option
