package calc

const greeting = "Hello, "

// Greet returns a greeting for name.
func Greet(name string) string {
	return greeting + name
}

// Join concatenates a and b with no separator.
func Join(a, b string) string {
	return a + b
}
