package database

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Schema is the canonical DDL for the generated dataset, shipped with the
// binary so push works without a checkout.
//
//go:embed schema.sql
var Schema string

// Push creates every table from the embedded schema. Statements run one at a
// time; IF NOT EXISTS makes the push idempotent.
func (c *Connection) Push(ctx context.Context) error {
	statements := splitStatements(Schema)
	color.Cyan("📋 Pushing schema (%d statements)...", len(statements))

	for _, stmt := range statements {
		if _, err := c.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w\n%s", err, stmt)
		}
	}

	color.Green("✅ Schema pushed successfully!")
	return nil
}

// splitStatements breaks a DDL script on statement-terminating semicolons.
// The schema contains no string literals with semicolons, so a line-based
// split is enough.
func splitStatements(script string) []string {
	var statements []string
	var current strings.Builder

	for _, line := range strings.Split(script, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		current.WriteString(line)
		current.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			statements = append(statements, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}
	if rest := strings.TrimSpace(current.String()); rest != "" {
		statements = append(statements, rest)
	}
	return statements
}
