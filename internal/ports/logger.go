package ports

import "github.com/bft-labs/recipebox/pkg/log"

// Logger is the logging port. It is the same interface as pkg/log so that
// library users can pass their own implementation straight through.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field
