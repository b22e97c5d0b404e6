// Package textrandom fills "{a|b|c}" placeholders in template strings with
// one randomly chosen alternative.
//
// Every non-overlapping, non-greedy match of `\{(.+?)\}` is replaced on its
// own, so "{Good|Bad} morning, {Alice|Bob}!" picks a greeting and a name
// independently. Text outside braces is copied unchanged. Empty braces do not
// match and are kept as written; an empty alternative such as "{a|}" is a
// valid choice that expands to nothing. Matches do not span newlines.
//
//	msg, err := textrandom.Randomize("Hello, {Alice|Bob|Charlie}!")
//	// "Hello, Bob!"
package textrandom
