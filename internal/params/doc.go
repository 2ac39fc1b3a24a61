// Package params resolves runtime defaults from the process environment,
// including values sourced from an optional .env file. Precedence is
// flags > environment > apolo.yaml > built-in defaults; this package covers
// the environment layer only.
package params
